package calendarsync

import (
	"context"
	"time"

	"github.com/m04kA/PSM-BookingService/internal/domain"
	"github.com/m04kA/PSM-BookingService/internal/integrations/calendarapi"
)

// SupplierRepository интерфейс репозитория поставщиков
type SupplierRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Supplier, error)
	UpdateBusyDates(ctx context.Context, id int64, blocks []domain.DateBlock) error
}

// ConnectionRepository интерфейс репозитория календарных подключений
type ConnectionRepository interface {
	Upsert(ctx context.Context, conn *domain.CalendarConnection) error
	GetBySupplierID(ctx context.Context, supplierID int64) (*domain.CalendarConnection, error)
	ListSupplierIDs(ctx context.Context) ([]int64, error)
	UpdateTokens(ctx context.Context, conn *domain.CalendarConnection) error
	MarkSynced(ctx context.Context, supplierID int64) error
	Delete(ctx context.Context, supplierID int64) error
}

// CalendarClient интерфейс клиента календарного провайдера
type CalendarClient interface {
	ExchangeCode(ctx context.Context, code string) (*calendarapi.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*calendarapi.TokenResponse, error)
	FetchBusyBlocks(ctx context.Context, accessToken string, from, to time.Time) ([]domain.BusyBlock, error)
}

// TimeProvider интерфейс для получения текущего времени
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
