package domain

import (
	"time"

	"github.com/m04kA/PSM-BookingService/pkg/types"
)

// EnquiryStatus represents the status of a booking enquiry
type EnquiryStatus string

const (
	StatusPending             EnquiryStatus = "pending"
	StatusAccepted            EnquiryStatus = "accepted"
	StatusDeclined            EnquiryStatus = "declined"
	StatusCancelledByCustomer EnquiryStatus = "cancelled_by_customer"
	StatusCancelledBySupplier EnquiryStatus = "cancelled_by_supplier"
	StatusExpired             EnquiryStatus = "expired"
)

// Enquiry represents a customer's booking enquiry for a party supplier.
// An enquiry is a request, not a hold: it never consumes availability by
// itself; suppliers block dates manually or via their synced calendar.
type Enquiry struct {
	ID         int64
	Reference  string // public UUID shared with the customer
	CustomerID int64
	SupplierID int64

	PartyDate     types.DateString
	Slot          SlotID
	DurationHours int

	GuestCount int
	Budget     float64
	Theme      *string
	Message    *string

	Status EnquiryStatus

	// Denormalized data for history
	SupplierName     string
	SupplierCategory SupplierCategory
	CustomerName     string
	CustomerEmail    string

	DeclineReason      *string
	CancellationReason *string
	CancelledAt        *time.Time
	RespondedAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the enquiry is in an active state
func (e *Enquiry) IsActive() bool {
	return e.Status == StatusPending || e.Status == StatusAccepted
}

// CanBeCancelled returns true if the enquiry can still be cancelled
func (e *Enquiry) CanBeCancelled() bool {
	return e.Status == StatusPending || e.Status == StatusAccepted
}

// CanBeResponded returns true if the supplier can accept or decline
func (e *Enquiry) CanBeResponded() bool {
	return e.Status == StatusPending
}

// IsCancelled returns true if the enquiry has been cancelled
func (e *Enquiry) IsCancelled() bool {
	return e.Status == StatusCancelledByCustomer || e.Status == StatusCancelledBySupplier
}

// SupplierEnquiriesFilter фильтр для получения заявок поставщика
type SupplierEnquiriesFilter struct {
	SupplierID      int64          // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *EnquiryStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли неактивные заявки
}
