package enquiries

import (
	"context"

	"github.com/m04kA/PSM-BookingService/internal/domain"
)

// EnquiryRepository интерфейс репозитория заявок
type EnquiryRepository interface {
	GetByReference(ctx context.Context, reference string) (*domain.Enquiry, error)
	GetByCustomerID(ctx context.Context, customerID int64, status *domain.EnquiryStatus) ([]*domain.Enquiry, error)
	GetBySupplierWithFilter(ctx context.Context, filter domain.SupplierEnquiriesFilter) ([]*domain.Enquiry, error)
	UpdateStatus(ctx context.Context, id int64, status domain.EnquiryStatus, declineReason *string) error
	Cancel(ctx context.Context, id int64, status domain.EnquiryStatus, reason string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
