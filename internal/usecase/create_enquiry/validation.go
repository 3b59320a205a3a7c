package create_enquiry

import (
	"fmt"

	"github.com/m04kA/PSM-BookingService/internal/domain"
)

// validateRequest проверяет корректность запроса на создание заявки.
// Доступность слота здесь не проверяется: она перепроверяется внутри
// транзакции по свежему расписанию.
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerId must be positive", ErrInvalidInput)
	}
	if req.CustomerName == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if req.CustomerEmail == "" {
		return fmt.Errorf("%w: customerEmail is required", ErrInvalidInput)
	}
	if req.SupplierID <= 0 {
		return fmt.Errorf("%w: supplierId must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if _, err := domain.ParseSlotID(req.Slot); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if req.DurationHours < domain.MinDurationHours || req.DurationHours > domain.MaxDurationHours {
		return fmt.Errorf("%w: durationHours must be within [%d, %d]",
			ErrInvalidInput, domain.MinDurationHours, domain.MaxDurationHours)
	}
	if req.GuestCount < domain.MinGuestCount || req.GuestCount > domain.MaxGuestCount {
		return fmt.Errorf("%w: guestCount must be within [%d, %d]",
			ErrInvalidInput, domain.MinGuestCount, domain.MaxGuestCount)
	}
	if req.Budget < 0 {
		return fmt.Errorf("%w: budget must not be negative", ErrInvalidInput)
	}
	if req.Message != nil && len(*req.Message) > domain.MaxMessageLength {
		return fmt.Errorf("%w: message exceeds %d characters", ErrInvalidInput, domain.MaxMessageLength)
	}
	return nil
}
