package schedule

import (
	"context"

	"github.com/m04kA/PSM-BookingService/internal/domain"
)

// SupplierRepository интерфейс репозитория поставщиков
type SupplierRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Supplier, error)
	UpdateSchedule(ctx context.Context, id int64, update domain.ScheduleUpdate) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
