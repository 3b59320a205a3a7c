package get_availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/m04kA/PSM-BookingService/internal/domain"
	"github.com/m04kA/PSM-BookingService/internal/infra/cache/availabilitygrid"
	supplierRepo "github.com/m04kA/PSM-BookingService/internal/infra/storage/supplier"
	"github.com/m04kA/PSM-BookingService/pkg/types"
)

// UseCase use case получения сетки доступности поставщика за период
type UseCase struct {
	supplierRepo SupplierRepository
	cache        GridCache
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case. cache может быть nil.
func NewUseCase(
	supplierRepo SupplierRepository,
	cache GridCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		supplierRepo: supplierRepo,
		cache:        cache,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения сетки доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: supplier=%d, from=%s, to=%s",
		req.SupplierID, req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем поставщика с расписанием и блокировками
	supplier, err := uc.supplierRepo.GetByID(ctx, req.SupplierID)
	if err != nil {
		if errors.Is(err, supplierRepo.ErrSupplierNotFound) {
			uc.logger.Warn("GetAvailability: supplier=%d not found", req.SupplierID)
			return nil, ErrSupplierNotFound
		}
		uc.logger.Error("GetAvailability: failed to get supplier=%d: %v", req.SupplierID, err)
		return nil, fmt.Errorf("%w: failed to get supplier: %v", ErrInternal, err)
	}

	// 4. Пробуем кеш. Версия расписания входит в ключ, поэтому после
	// любого изменения расписания промах гарантирован.
	key := availabilitygrid.Key{
		SupplierID:      supplier.ID,
		ScheduleVersion: supplier.ScheduleVersion,
		From:            types.NewDateString(req.From),
		To:              types.NewDateString(req.To),
	}

	if uc.cache != nil {
		if payload, hit, err := uc.cache.Get(ctx, key); err != nil {
			uc.logger.Warn("GetAvailability: cache get failed: %v", err)
		} else if hit {
			var cached Response
			if err := json.Unmarshal(payload, &cached); err == nil {
				uc.logger.Info("GetAvailability: cache hit for supplier=%d", supplier.ID)
				return &cached, nil
			}
			uc.logger.Warn("GetAvailability: dropping malformed cache entry %s", key)
		}
	}

	// 5. Считаем сетку день за днём
	response := &Response{
		SupplierID: supplier.ID,
		From:       key.From.String(),
		To:         key.To.String(),
		Days:       make([]Day, 0),
	}

	for day := req.From; !day.After(req.To); day = day.AddDate(0, 0, 1) {
		response.Days = append(response.Days, fromDomainDay(domain.EvaluateDay(supplier, day, now)))
	}

	// 6. Сохраняем в кеш (best effort)
	if uc.cache != nil {
		if payload, err := json.Marshal(response); err == nil {
			if err := uc.cache.Set(ctx, key, payload); err != nil {
				uc.logger.Warn("GetAvailability: cache set failed: %v", err)
			}
		}
	}

	uc.logger.Info("GetAvailability: computed %d days for supplier=%d", len(response.Days), supplier.ID)
	return response, nil
}
