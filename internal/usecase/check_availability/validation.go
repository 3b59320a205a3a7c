package check_availability

import (
	"fmt"

	"github.com/m04kA/PSM-BookingService/internal/domain"
)

// validateRequest проверяет корректность запроса.
// Длительность проверяется только на разумность: слот бронируется
// целиком, и на доступность она не влияет.
func validateRequest(req *Request) error {
	if req.SupplierID <= 0 {
		return fmt.Errorf("%w: supplierId must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if _, err := domain.ParseSlotID(req.Slot); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSlot, err)
	}
	if req.DurationHours != nil {
		if *req.DurationHours < domain.MinDurationHours || *req.DurationHours > domain.MaxDurationHours {
			return fmt.Errorf("%w: durationHours must be within [%d, %d]",
				ErrInvalidInput, domain.MinDurationHours, domain.MaxDurationHours)
		}
	}
	return nil
}
