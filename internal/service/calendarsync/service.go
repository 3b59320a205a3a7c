package calendarsync

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PSM-BookingService/internal/domain"
	"github.com/m04kA/PSM-BookingService/internal/infra/storage/calendarconn"
	supplierRepo "github.com/m04kA/PSM-BookingService/internal/infra/storage/supplier"
	"github.com/m04kA/PSM-BookingService/internal/integrations/calendarapi"
)

// syncHorizonDays горизонт выгрузки занятых интервалов для поставщиков
// без верхней границы окна бронирования
const syncHorizonDays = 365

// Service синхронизация блокировок из внешних календарей.
// Занятые интервалы провайдера перезаписывают busy_dates поставщика;
// ручные блокировки (unavailable_dates) синхронизация не трогает.
type Service struct {
	supplierRepo SupplierRepository
	connRepo     ConnectionRepository
	client       CalendarClient
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса синхронизации
func NewService(
	supplierRepo SupplierRepository,
	connRepo ConnectionRepository,
	client CalendarClient,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		supplierRepo: supplierRepo,
		connRepo:     connRepo,
		client:       client,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Connect обменивает authorization code, сохраняет подключение и
// выполняет первичную синхронизацию
func (s *Service) Connect(ctx context.Context, supplierID int64, code, provider string) error {
	s.logger.Info("Connect: connecting calendar for supplier=%d", supplierID)

	// Поставщик должен существовать до обмена кода
	if _, err := s.supplierRepo.GetByID(ctx, supplierID); err != nil {
		if errors.Is(err, supplierRepo.ErrSupplierNotFound) {
			return ErrSupplierNotFound
		}
		return fmt.Errorf("%w: Connect - repository error: %v", ErrInternal, err)
	}

	token, err := s.client.ExchangeCode(ctx, code)
	if err != nil {
		if errors.Is(err, calendarapi.ErrCodeRejected) {
			s.logger.Warn("Connect: code rejected for supplier=%d: %v", supplierID, err)
			return ErrCodeRejected
		}
		s.logger.Error("Connect: exchange failed for supplier=%d: %v", supplierID, err)
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	conn := &domain.CalendarConnection{
		SupplierID:     supplierID,
		Provider:       provider,
		AccessToken:    token.AccessToken,
		RefreshToken:   token.RefreshToken,
		TokenExpiresAt: token.ExpiresAt(s.timeProvider.Now()),
	}

	if err := s.connRepo.Upsert(ctx, conn); err != nil {
		s.logger.Error("Connect: failed to store connection for supplier=%d: %v", supplierID, err)
		return fmt.Errorf("%w: Connect - store connection: %v", ErrInternal, err)
	}

	// Первичная синхронизация сразу наполняет busy_dates
	if err := s.SyncSupplier(ctx, supplierID); err != nil {
		s.logger.Warn("Connect: initial sync failed for supplier=%d: %v", supplierID, err)
	}

	s.logger.Info("Connect: calendar connected for supplier=%d", supplierID)
	return nil
}

// Disconnect удаляет подключение и очищает синхронизированные блокировки
func (s *Service) Disconnect(ctx context.Context, supplierID int64) error {
	s.logger.Info("Disconnect: disconnecting calendar for supplier=%d", supplierID)

	if err := s.connRepo.Delete(ctx, supplierID); err != nil {
		if errors.Is(err, calendarconn.ErrConnectionNotFound) {
			return ErrNotConnected
		}
		return fmt.Errorf("%w: Disconnect - delete connection: %v", ErrInternal, err)
	}

	// Синхронизированные блокировки без подключения не имеют источника
	if err := s.supplierRepo.UpdateBusyDates(ctx, supplierID, nil); err != nil {
		s.logger.Error("Disconnect: failed to clear busy dates for supplier=%d: %v", supplierID, err)
		return fmt.Errorf("%w: Disconnect - clear busy dates: %v", ErrInternal, err)
	}

	s.logger.Info("Disconnect: calendar disconnected for supplier=%d", supplierID)
	return nil
}

// SyncSupplier выгружает занятые интервалы поставщика и перезаписывает
// busy_dates. Окно выгрузки: [сегодня, сегодня+maxBookingDays]
func (s *Service) SyncSupplier(ctx context.Context, supplierID int64) error {
	conn, err := s.connRepo.GetBySupplierID(ctx, supplierID)
	if err != nil {
		if errors.Is(err, calendarconn.ErrConnectionNotFound) {
			return ErrNotConnected
		}
		return fmt.Errorf("%w: SyncSupplier - get connection: %v", ErrInternal, err)
	}

	supplier, err := s.supplierRepo.GetByID(ctx, supplierID)
	if err != nil {
		if errors.Is(err, supplierRepo.ErrSupplierNotFound) {
			return ErrSupplierNotFound
		}
		return fmt.Errorf("%w: SyncSupplier - get supplier: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()

	if conn.TokenExpired(now) {
		token, err := s.client.RefreshToken(ctx, conn.RefreshToken)
		if err != nil {
			s.logger.Error("SyncSupplier: token refresh failed for supplier=%d: %v", supplierID, err)
			return fmt.Errorf("%w: token refresh: %v", ErrProviderUnavailable, err)
		}

		conn.AccessToken = token.AccessToken
		if token.RefreshToken != "" {
			conn.RefreshToken = token.RefreshToken
		}
		conn.TokenExpiresAt = token.ExpiresAt(now)

		if err := s.connRepo.UpdateTokens(ctx, conn); err != nil {
			return fmt.Errorf("%w: SyncSupplier - store refreshed tokens: %v", ErrInternal, err)
		}
		s.logger.Info("SyncSupplier: refreshed token for supplier=%d", supplierID)
	}

	horizonDays := supplier.MaxBookingDays
	if horizonDays <= 0 {
		horizonDays = syncHorizonDays
	}
	from := now
	to := now.AddDate(0, 0, horizonDays)

	busy, err := s.client.FetchBusyBlocks(ctx, conn.AccessToken, from, to)
	if err != nil {
		s.logger.Error("SyncSupplier: fetch failed for supplier=%d: %v", supplierID, err)
		return fmt.Errorf("%w: fetch busy blocks: %v", ErrProviderUnavailable, err)
	}

	blocks := MapBusyBlocks(busy)

	if err := s.supplierRepo.UpdateBusyDates(ctx, supplierID, blocks); err != nil {
		return fmt.Errorf("%w: SyncSupplier - store busy dates: %v", ErrInternal, err)
	}

	if err := s.connRepo.MarkSynced(ctx, supplierID); err != nil {
		s.logger.Warn("SyncSupplier: failed to mark synced for supplier=%d: %v", supplierID, err)
	}

	s.logger.Info("SyncSupplier: supplier=%d synced, %d busy intervals -> %d date blocks",
		supplierID, len(busy), len(blocks))
	return nil
}

// SyncAll синхронизирует всех подключённых поставщиков.
// Ошибка одного поставщика не прерывает остальных.
func (s *Service) SyncAll(ctx context.Context) {
	ids, err := s.connRepo.ListSupplierIDs(ctx)
	if err != nil {
		s.logger.Error("SyncAll: failed to list connected suppliers: %v", err)
		return
	}

	s.logger.Info("SyncAll: syncing %d connected suppliers", len(ids))

	var failed int
	for _, id := range ids {
		if err := s.SyncSupplier(ctx, id); err != nil {
			s.logger.Error("SyncAll: supplier=%d sync failed: %v", id, err)
			failed++
		}
	}

	s.logger.Info("SyncAll: done, %d synced, %d failed", len(ids)-failed, failed)
}
