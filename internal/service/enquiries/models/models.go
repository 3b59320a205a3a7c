package models

import (
	"errors"
	"time"

	"github.com/m04kA/PSM-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid enquiry status")
)

// Request модели

// CancelEnquiryRequest запрос на отмену заявки покупателем
type CancelEnquiryRequest struct {
	CustomerID         int64  `json:"customerId"`
	CancellationReason string `json:"cancellationReason"`
}

// RespondEnquiryRequest ответ поставщика на заявку
type RespondEnquiryRequest struct {
	SupplierID    int64   `json:"supplierId"`
	Action        string  `json:"action"` // accept | decline
	DeclineReason *string `json:"declineReason,omitempty"`
}

// GetCustomerEnquiriesRequest запрос заявок покупателя
type GetCustomerEnquiriesRequest struct {
	CustomerID int64   `json:"customerId"`
	Status     *string `json:"status,omitempty"`
}

// GetSupplierEnquiriesRequest запрос заявок поставщика с фильтрацией
type GetSupplierEnquiriesRequest struct {
	SupplierID      int64      `json:"supplierId"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	Status          *string    `json:"status,omitempty"`
	IncludeInactive bool       `json:"includeInactive,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetSupplierEnquiriesRequest) ToDomainFilter() (domain.SupplierEnquiriesFilter, error) {
	filter := domain.SupplierEnquiriesFilter{
		SupplierID:      r.SupplierID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainEnquiryStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// ToDomainEnquiryStatus валидирует и конвертирует статус из строки
func ToDomainEnquiryStatus(s string) (domain.EnquiryStatus, error) {
	status := domain.EnquiryStatus(s)
	switch status {
	case domain.StatusPending,
		domain.StatusAccepted,
		domain.StatusDeclined,
		domain.StatusCancelledByCustomer,
		domain.StatusCancelledBySupplier,
		domain.StatusExpired:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Response модели

// EnquiryResponse заявка в API формате
type EnquiryResponse struct {
	Reference        string  `json:"reference"`
	CustomerID       int64   `json:"customerId"`
	SupplierID       int64   `json:"supplierId"`
	SupplierName     string  `json:"supplierName"`
	SupplierCategory string  `json:"supplierCategory"`
	CustomerName     string  `json:"customerName"`
	PartyDate        string  `json:"partyDate"`
	Slot             string  `json:"slot"`
	DurationHours    int     `json:"durationHours"`
	GuestCount       int     `json:"guestCount"`
	Budget           float64 `json:"budget"`
	Theme            *string `json:"theme,omitempty"`
	Message          *string `json:"message,omitempty"`
	Status           string  `json:"status"`

	DeclineReason      *string    `json:"declineReason,omitempty"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	RespondedAt        *time.Time `json:"respondedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EnquiryListResponse список заявок
type EnquiryListResponse struct {
	Enquiries []*EnquiryResponse `json:"enquiries"`
	Total     int                `json:"total"`
}

// FromDomainEnquiry конвертирует доменную заявку в API формат
func FromDomainEnquiry(e *domain.Enquiry) *EnquiryResponse {
	return &EnquiryResponse{
		Reference:          e.Reference,
		CustomerID:         e.CustomerID,
		SupplierID:         e.SupplierID,
		SupplierName:       e.SupplierName,
		SupplierCategory:   string(e.SupplierCategory),
		CustomerName:       e.CustomerName,
		PartyDate:          e.PartyDate.String(),
		Slot:               string(e.Slot),
		DurationHours:      e.DurationHours,
		GuestCount:         e.GuestCount,
		Budget:             e.Budget,
		Theme:              e.Theme,
		Message:            e.Message,
		Status:             string(e.Status),
		DeclineReason:      e.DeclineReason,
		CancellationReason: e.CancellationReason,
		CancelledAt:        e.CancelledAt,
		RespondedAt:        e.RespondedAt,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

// FromDomainEnquiryList конвертирует список доменных заявок
func FromDomainEnquiryList(enquiries []*domain.Enquiry) *EnquiryListResponse {
	result := &EnquiryListResponse{
		Enquiries: make([]*EnquiryResponse, 0, len(enquiries)),
		Total:     len(enquiries),
	}
	for _, e := range enquiries {
		result.Enquiries = append(result.Enquiries, FromDomainEnquiry(e))
	}
	return result
}
