package auth

import (
	"context"

	"github.com/m04kA/PSM-BookingService/internal/domain"
)

// SupplierRepository интерфейс репозитория поставщиков
type SupplierRepository interface {
	GetCredentialsByEmail(ctx context.Context, email string) (*domain.SupplierCredentials, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
