package create_enquiry

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/PSM-BookingService/internal/domain"
	supplierRepo "github.com/m04kA/PSM-BookingService/internal/infra/storage/supplier"
	"github.com/m04kA/PSM-BookingService/pkg/types"
)

// UseCase use case создания заявки на бронирование.
// Заявка не резервирует слот, но на момент создания слот обязан быть
// доступен: проверка выполняется по свежему расписанию внутри
// сериализуемой транзакции, чтобы не потерять параллельное изменение
// расписания поставщика.
type UseCase struct {
	enquiryRepo  EnquiryRepository
	supplierRepo SupplierRepository
	notifier     Notifier
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	enquiryRepo EnquiryRepository,
	supplierRepo SupplierRepository,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		enquiryRepo:  enquiryRepo,
		supplierRepo: supplierRepo,
		notifier:     notifier,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания заявки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateEnquiry: customer=%d, supplier=%d, date=%s, slot=%s",
		req.CustomerID, req.SupplierID, req.Date.Format(domain.DateFormat), req.Slot)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateEnquiry: validation failed: %v", err)
		return nil, err
	}
	slot, _ := domain.ParseSlotID(req.Slot)

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	var (
		result        *domain.Enquiry
		supplierEmail string
	)

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Перечитываем поставщика под блокировкой строки
		supplier, err := uc.supplierRepo.GetByID(txCtx, req.SupplierID)
		if err != nil {
			if errors.Is(err, supplierRepo.ErrSupplierNotFound) {
				uc.logger.Warn("CreateEnquiry: supplier=%d not found", req.SupplierID)
				return ErrSupplierNotFound
			}
			uc.logger.Error("CreateEnquiry: failed to get supplier=%d: %v", req.SupplierID, err)
			return fmt.Errorf("%w: failed to get supplier: %v", ErrInternal, err)
		}
		supplierEmail = supplier.Email

		// 3.2. Проверяем доступность слота по свежему расписанию
		check := domain.CheckSlot(supplier, req.Date, slot, now)
		if !check.Available {
			uc.logger.Warn("CreateEnquiry: slot %s on %s not available for supplier=%d (reason=%s)",
				slot, req.Date.Format(domain.DateFormat), supplier.ID, check.Reason)
			return fmt.Errorf("%w: %s", ErrSlotNotAvailable, check.Reason)
		}

		// 3.3. Создаём заявку с денормализованными данными поставщика
		enquiry := &domain.Enquiry{
			Reference:        uuid.NewString(),
			CustomerID:       req.CustomerID,
			SupplierID:       supplier.ID,
			PartyDate:        types.NewDateString(req.Date),
			Slot:             slot,
			DurationHours:    req.DurationHours,
			GuestCount:       req.GuestCount,
			Budget:           req.Budget,
			Theme:            req.Theme,
			Message:          req.Message,
			Status:           domain.StatusPending,
			SupplierName:     supplier.Name,
			SupplierCategory: supplier.Category,
			CustomerName:     req.CustomerName,
			CustomerEmail:    req.CustomerEmail,
		}

		result, err = uc.enquiryRepo.Create(txCtx, enquiry)
		if err != nil {
			uc.logger.Error("CreateEnquiry: failed to create enquiry: %v", err)
			return fmt.Errorf("%w: failed to create enquiry: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	// 4. Уведомляем поставщика (best effort, вне транзакции)
	go uc.notifier.NotifyNewEnquiry(result, supplierEmail)

	uc.logger.Info("CreateEnquiry: enquiry reference=%s created for supplier=%d", result.Reference, result.SupplierID)
	return fromDomainEnquiry(result), nil
}
