package schedule

import (
	"context"
	"errors"
	"fmt"

	supplierRepo "github.com/m04kA/PSM-BookingService/internal/infra/storage/supplier"
	"github.com/m04kA/PSM-BookingService/internal/service/schedule/models"
)

// Service сервис управления расписанием поставщика
type Service struct {
	supplierRepo SupplierRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(supplierRepo SupplierRepository, logger Logger) *Service {
	return &Service{
		supplierRepo: supplierRepo,
		logger:       logger,
	}
}

// GetSchedule возвращает расписание поставщика в каноническом виде.
// Устаревшие форматы хранения уже приведены к каноническому на уровне
// репозитория.
func (s *Service) GetSchedule(ctx context.Context, supplierID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: fetching schedule for supplier=%d", supplierID)

	supplier, err := s.supplierRepo.GetByID(ctx, supplierID)
	if err != nil {
		if errors.Is(err, supplierRepo.ErrSupplierNotFound) {
			s.logger.Warn("GetSchedule: supplier=%d not found", supplierID)
			return nil, ErrSupplierNotFound
		}
		s.logger.Error("GetSchedule: repository error for supplier=%d: %v", supplierID, err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSupplier(supplier), nil
}

// UpdateSchedule применяет частичное обновление расписания.
// Любое успешное обновление инкрементирует версию расписания, что
// инвалидирует закешированные сетки доступности.
func (s *Service) UpdateSchedule(ctx context.Context, supplierID int64, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("UpdateSchedule: updating schedule for supplier=%d", supplierID)

	update, err := req.ToDomainUpdate()
	if err != nil {
		s.logger.Warn("UpdateSchedule: invalid update for supplier=%d: %v", supplierID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if update.IsEmpty() {
		s.logger.Warn("UpdateSchedule: empty update for supplier=%d", supplierID)
		return nil, ErrEmptyUpdate
	}

	if err := s.supplierRepo.UpdateSchedule(ctx, supplierID, update); err != nil {
		if errors.Is(err, supplierRepo.ErrSupplierNotFound) {
			s.logger.Warn("UpdateSchedule: supplier=%d not found", supplierID)
			return nil, ErrSupplierNotFound
		}
		s.logger.Error("UpdateSchedule: repository error for supplier=%d: %v", supplierID, err)
		return nil, fmt.Errorf("%w: UpdateSchedule - repository error: %v", ErrInternal, err)
	}

	// Перечитываем, чтобы вернуть применённое расписание и новую версию
	supplier, err := s.supplierRepo.GetByID(ctx, supplierID)
	if err != nil {
		s.logger.Error("UpdateSchedule: failed to reload supplier=%d: %v", supplierID, err)
		return nil, fmt.Errorf("%w: UpdateSchedule - reload error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSchedule: supplier=%d updated, schedule_version=%d", supplierID, supplier.ScheduleVersion)
	return models.FromDomainSupplier(supplier), nil
}
