package create_enquiry

import (
	"time"

	"github.com/m04kA/PSM-BookingService/internal/domain"
)

// Request модель запроса на создание заявки
type Request struct {
	CustomerID    int64     // ID покупателя (из X-User-ID)
	CustomerName  string    // Имя покупателя
	CustomerEmail string    // Email покупателя
	SupplierID    int64     // ID поставщика
	Date          time.Time // Дата праздника
	Slot          string    // Идентификатор слота
	DurationHours int       // Желаемая длительность в часах
	GuestCount    int       // Количество гостей
	Budget        float64   // Бюджет
	Theme         *string   // Тема праздника (опционально)
	Message       *string   // Сообщение поставщику (опционально)
}

// Response созданная заявка
type Response struct {
	Reference        string    `json:"reference"`
	CustomerID       int64     `json:"customerId"`
	SupplierID       int64     `json:"supplierId"`
	SupplierName     string    `json:"supplierName"`
	SupplierCategory string    `json:"supplierCategory"`
	PartyDate        string    `json:"partyDate"`
	Slot             string    `json:"slot"`
	DurationHours    int       `json:"durationHours"`
	GuestCount       int       `json:"guestCount"`
	Budget           float64   `json:"budget"`
	Theme            *string   `json:"theme,omitempty"`
	Message          *string   `json:"message,omitempty"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}

func fromDomainEnquiry(e *domain.Enquiry) *Response {
	return &Response{
		Reference:        e.Reference,
		CustomerID:       e.CustomerID,
		SupplierID:       e.SupplierID,
		SupplierName:     e.SupplierName,
		SupplierCategory: string(e.SupplierCategory),
		PartyDate:        e.PartyDate.String(),
		Slot:             string(e.Slot),
		DurationHours:    e.DurationHours,
		GuestCount:       e.GuestCount,
		Budget:           e.Budget,
		Theme:            e.Theme,
		Message:          e.Message,
		Status:           string(e.Status),
		CreatedAt:        e.CreatedAt,
	}
}
