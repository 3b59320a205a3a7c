package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/PSM-BookingService/internal/domain"
	"github.com/m04kA/PSM-BookingService/internal/infra/cache/availabilitygrid"
)

// SupplierRepository интерфейс репозитория поставщиков
type SupplierRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Supplier, error)
}

// GridCache интерфейс кеша посчитанных сеток. Кеш опционален: nil
// означает, что сетка всегда считается заново.
type GridCache interface {
	Get(ctx context.Context, key availabilitygrid.Key) ([]byte, bool, error)
	Set(ctx context.Context, key availabilitygrid.Key, payload []byte) error
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
