package create_enquiry

import (
	"context"
	"time"

	"github.com/m04kA/PSM-BookingService/internal/domain"
)

// EnquiryRepository интерфейс репозитория заявок
type EnquiryRepository interface {
	Create(ctx context.Context, enquiry *domain.Enquiry) (*domain.Enquiry, error)
}

// SupplierRepository интерфейс репозитория поставщиков
type SupplierRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Supplier, error)
}

// Notifier интерфейс отправки уведомления поставщику
type Notifier interface {
	NotifyNewEnquiry(enquiry *domain.Enquiry, supplierEmail string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
