package get_availability

import "fmt"

// maxRangeDays максимальная длина запрашиваемой сетки
const maxRangeDays = 92

// validateRequest проверяет корректность запроса сетки
func validateRequest(req *Request) error {
	if req.SupplierID <= 0 {
		return fmt.Errorf("%w: supplierId must be positive", ErrInvalidInput)
	}
	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}
	if req.To.Before(req.From) {
		return fmt.Errorf("%w: to is before from", ErrInvalidRange)
	}

	days := int(req.To.Sub(req.From).Hours()/24) + 1
	if days > maxRangeDays {
		return fmt.Errorf("%w: range exceeds %d days", ErrInvalidRange, maxRangeDays)
	}

	return nil
}
