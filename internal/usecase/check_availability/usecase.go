package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PSM-BookingService/internal/domain"
	supplierRepo "github.com/m04kA/PSM-BookingService/internal/infra/storage/supplier"
	"github.com/m04kA/PSM-BookingService/pkg/types"
)

// UseCase use case проверки доступности одного слота
type UseCase struct {
	supplierRepo SupplierRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(supplierRepo SupplierRepository, logger Logger) *UseCase {
	return &UseCase{
		supplierRepo: supplierRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case проверки слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: supplier=%d, date=%s, slot=%s",
		req.SupplierID, req.Date.Format(domain.DateFormat), req.Slot)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}
	slot, _ := domain.ParseSlotID(req.Slot)

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем поставщика
	supplier, err := uc.supplierRepo.GetByID(ctx, req.SupplierID)
	if err != nil {
		if errors.Is(err, supplierRepo.ErrSupplierNotFound) {
			uc.logger.Warn("CheckAvailability: supplier=%d not found", req.SupplierID)
			return nil, ErrSupplierNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get supplier=%d: %v", req.SupplierID, err)
		return nil, fmt.Errorf("%w: failed to get supplier: %v", ErrInternal, err)
	}

	// 4. Проверяем слот
	result := domain.CheckSlot(supplier, req.Date, slot, now)

	return &Response{
		SupplierID:    supplier.ID,
		Date:          types.NewDateString(req.Date).String(),
		Slot:          string(slot),
		Available:     result.Available,
		Reason:        string(result.Reason),
		DurationHours: req.DurationHours,
	}, nil
}
