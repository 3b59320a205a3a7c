package create_enquiry

import (
	"fmt"
	"time"

	"github.com/m04kA/PSM-BookingService/internal/domain"
	uc "github.com/m04kA/PSM-BookingService/internal/usecase/create_enquiry"
)

// CreateEnquiryRequest тело запроса на создание заявки
type CreateEnquiryRequest struct {
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	SupplierID    int64   `json:"supplierId"`
	PartyDate     string  `json:"partyDate"`
	Slot          string  `json:"slot"`
	DurationHours int     `json:"durationHours"`
	GuestCount    int     `json:"guestCount"`
	Budget        float64 `json:"budget"`
	Theme         *string `json:"theme,omitempty"`
	Message       *string `json:"message,omitempty"`
}

// ToUseCaseRequest конвертирует тело запроса в модель usecase.
// CustomerID берётся из заголовка аутентификации, а не из тела.
func (r *CreateEnquiryRequest) ToUseCaseRequest(customerID int64) (*uc.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.PartyDate)
	if err != nil {
		return nil, fmt.Errorf("partyDate must be in YYYY-MM-DD format")
	}

	return &uc.Request{
		CustomerID:    customerID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		SupplierID:    r.SupplierID,
		Date:          date,
		Slot:          r.Slot,
		DurationHours: r.DurationHours,
		GuestCount:    r.GuestCount,
		Budget:        r.Budget,
		Theme:         r.Theme,
		Message:       r.Message,
	}, nil
}
