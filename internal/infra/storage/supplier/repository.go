package supplier

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/PSM-BookingService/internal/domain"
	"github.com/m04kA/PSM-BookingService/pkg/dbmetrics"
	"github.com/m04kA/PSM-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с поставщиками и их расписаниями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория поставщиков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает поставщика вместе с расписанием и блокировками.
// JSONB колонки могут содержать как новый формат (по слотам), так и
// устаревший (один диапазон open/close или голые даты) - нормализация
// выполняется здесь, при чтении.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Supplier, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"name",
		"category",
		"email",
		"working_hours",
		"unavailable_dates",
		"busy_dates",
		"advance_booking_days",
		"max_booking_days",
		"schedule_version",
		"created_at",
		"updated_at",
	).
		From("suppliers").
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции блокируем строку: создание заявки перечитывает
	// расписание перед вставкой
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR SHARE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		s              domain.Supplier
		rawHours       []byte
		rawUnavailable []byte
		rawBusy        []byte
		createdAt      sql.NullTime
		updatedAt      sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.Name,
		&s.Category,
		&s.Email,
		&rawHours,
		&rawUnavailable,
		&rawBusy,
		&s.AdvanceBookingDays,
		&s.MaxBookingDays,
		&s.ScheduleVersion,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSupplierNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan supplier: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	if err := decodeSchedule(&s, rawHours, rawUnavailable, rawBusy); err != nil {
		return nil, err
	}

	return &s, nil
}

// decodeSchedule разбирает JSONB колонки и приводит их к каноническому виду
func decodeSchedule(s *domain.Supplier, rawHours, rawUnavailable, rawBusy []byte) error {
	var hours domain.RawWorkingHours
	if len(rawHours) > 0 {
		if err := json.Unmarshal(rawHours, &hours); err != nil {
			return fmt.Errorf("%w: decode working_hours for supplier %d: %v", ErrScanRow, s.ID, err)
		}
	}
	s.WorkingHours = domain.NormalizeWorkingHours(hours)

	var unavailable []domain.RawDateBlock
	if len(rawUnavailable) > 0 {
		if err := json.Unmarshal(rawUnavailable, &unavailable); err != nil {
			return fmt.Errorf("%w: decode unavailable_dates for supplier %d: %v", ErrScanRow, s.ID, err)
		}
	}
	s.UnavailableDates = domain.NormalizeBlocks(unavailable, domain.BlockSourceManual)

	var busy []domain.RawDateBlock
	if len(rawBusy) > 0 {
		if err := json.Unmarshal(rawBusy, &busy); err != nil {
			return fmt.Errorf("%w: decode busy_dates for supplier %d: %v", ErrScanRow, s.ID, err)
		}
	}
	s.BusyDates = domain.NormalizeBlocks(busy, domain.BlockSourceCalendar)

	return nil
}

// UpdateSchedule применяет частичное обновление расписания и инкрементирует
// schedule_version. Пишем всегда в новом формате (по слотам).
func (r *Repository) UpdateSchedule(ctx context.Context, id int64, update domain.ScheduleUpdate) error {
	if update.IsEmpty() {
		return ErrEmptyUpdate
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("suppliers").
		Set("schedule_version", squirrel.Expr("schedule_version + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if update.WorkingHours != nil {
		payload, err := json.Marshal(domain.RawFromWorkingHours(*update.WorkingHours))
		if err != nil {
			return fmt.Errorf("%w: UpdateSchedule - marshal working_hours: %v", ErrMarshalSchedule, err)
		}
		updateBuilder = updateBuilder.Set("working_hours", payload)
	}

	if update.UnavailableDates != nil {
		payload, err := json.Marshal(domain.RawFromBlocks(*update.UnavailableDates))
		if err != nil {
			return fmt.Errorf("%w: UpdateSchedule - marshal unavailable_dates: %v", ErrMarshalSchedule, err)
		}
		updateBuilder = updateBuilder.Set("unavailable_dates", payload)
	}

	if update.AdvanceBookingDays != nil {
		updateBuilder = updateBuilder.Set("advance_booking_days", *update.AdvanceBookingDays)
	}
	if update.MaxBookingDays != nil {
		updateBuilder = updateBuilder.Set("max_booking_days", *update.MaxBookingDays)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSupplierNotFound
	}

	return nil
}

// UpdateBusyDates перезаписывает блокировки из внешнего календаря и
// инкрементирует schedule_version. Вызывается только синхронизацией.
func (r *Repository) UpdateBusyDates(ctx context.Context, id int64, blocks []domain.DateBlock) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	payload, err := json.Marshal(domain.RawFromBlocks(blocks))
	if err != nil {
		return fmt.Errorf("%w: UpdateBusyDates - marshal busy_dates: %v", ErrMarshalSchedule, err)
	}

	query, args, err := psqlbuilder.Update("suppliers").
		Set("busy_dates", payload).
		Set("schedule_version", squirrel.Expr("schedule_version + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateBusyDates - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateBusyDates - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateBusyDates - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSupplierNotFound
	}

	return nil
}

// GetCredentialsByEmail получает учётную запись поставщика для входа
func (r *Repository) GetCredentialsByEmail(ctx context.Context, email string) (*domain.SupplierCredentials, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"supplier_id",
		"email",
		"password_hash",
		"created_at",
		"updated_at",
	).
		From("supplier_credentials").
		Where(squirrel.Eq{"email": email}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCredentialsByEmail - build select query: %v", ErrBuildQuery, err)
	}

	var creds domain.SupplierCredentials
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&creds.SupplierID,
		&creds.Email,
		&creds.PasswordHash,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCredentialsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCredentialsByEmail - scan credentials: %v", ErrScanRow, err)
	}

	creds.CreatedAt = createdAt.Time
	creds.UpdatedAt = updatedAt.Time

	return &creds, nil
}
