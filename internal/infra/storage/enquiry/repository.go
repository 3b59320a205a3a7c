package enquiry

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/PSM-BookingService/internal/domain"
	"github.com/m04kA/PSM-BookingService/pkg/dbmetrics"
	"github.com/m04kA/PSM-BookingService/pkg/psqlbuilder"
)

var enquiryColumns = []string{
	"id",
	"reference",
	"customer_id",
	"supplier_id",
	"party_date",
	"slot",
	"duration_hours",
	"guest_count",
	"budget",
	"theme",
	"message",
	"status",
	"supplier_name",
	"supplier_category",
	"customer_name",
	"customer_email",
	"decline_reason",
	"cancellation_reason",
	"cancelled_at",
	"responded_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с заявками на бронирование
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую заявку
// Если в контексте передана активная транзакция, использует её.
// Создание заявки выполняется в serializable транзакции вместе с
// перечитыванием расписания поставщика.
func (r *Repository) Create(ctx context.Context, enq *domain.Enquiry) (*domain.Enquiry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("enquiries").
		Columns(
			"reference",
			"customer_id",
			"supplier_id",
			"party_date",
			"slot",
			"duration_hours",
			"guest_count",
			"budget",
			"theme",
			"message",
			"status",
			"supplier_name",
			"supplier_category",
			"customer_name",
			"customer_email",
		).
		Values(
			enq.Reference,
			enq.CustomerID,
			enq.SupplierID,
			enq.PartyDate,
			enq.Slot,
			enq.DurationHours,
			enq.GuestCount,
			enq.Budget,
			enq.Theme,
			enq.Message,
			enq.Status,
			enq.SupplierName,
			enq.SupplierCategory,
			enq.CustomerName,
			enq.CustomerEmail,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&enq.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	enq.CreatedAt = createdAt.Time
	enq.UpdatedAt = updatedAt.Time

	return enq, nil
}

// GetByID получает заявку по внутреннему ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Enquiry, error) {
	return r.getByColumn(ctx, "id", id)
}

// GetByReference получает заявку по публичному UUID
func (r *Repository) GetByReference(ctx context.Context, reference string) (*domain.Enquiry, error) {
	return r.getByColumn(ctx, "reference", reference)
}

func (r *Repository) getByColumn(ctx context.Context, column string, value interface{}) (*domain.Enquiry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(enquiryColumns...).
		From("enquiries").
		Where(squirrel.Eq{column: value}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getByColumn(%s) - build select query: %v", ErrBuildQuery, column, err)
	}

	enq, err := r.scanEnquiry(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrEnquiryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getByColumn(%s) - scan enquiry: %v", ErrScanRow, column, err)
	}

	return enq, nil
}

// GetByCustomerID получает заявки покупателя, опционально по статусу
func (r *Repository) GetByCustomerID(ctx context.Context, customerID int64, status *domain.EnquiryStatus) ([]*domain.Enquiry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(enquiryColumns...).
		From("enquiries").
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("party_date DESC, created_at DESC")

	// Фильтрация по статусу, если указан
	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanEnquiries(rows)
}

// GetBySupplierWithFilter получает заявки поставщика с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению неактивных заявок
func (r *Repository) GetBySupplierWithFilter(ctx context.Context, filter domain.SupplierEnquiriesFilter) ([]*domain.Enquiry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(enquiryColumns...).
		From("enquiries").
		Where(squirrel.Eq{"supplier_id": filter.SupplierID})

	// Фильтрация по периоду
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"party_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"party_date": *filter.EndDate})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		// Без явного статуса скрываем отменённые и истёкшие заявки
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	selectBuilder = selectBuilder.OrderBy("party_date ASC, created_at ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySupplierWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySupplierWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanEnquiries(rows)
}

// UpdateStatus обновляет статус заявки, фиксируя момент ответа поставщика
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.EnquiryStatus, declineReason *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("enquiries").
		Set("status", status).
		Set("responded_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if declineReason != nil {
		updateBuilder = updateBuilder.Set("decline_reason", *declineReason)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrEnquiryNotFound
	}

	return nil
}

// Cancel отменяет заявку с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, status domain.EnquiryStatus, reason string) error {
	if status != domain.StatusCancelledByCustomer && status != domain.StatusCancelledBySupplier {
		return fmt.Errorf("%w: Cancel - status %s is not a cancellation", ErrInvalidStatus, status)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("enquiries").
		Set("status", status).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrEnquiryNotFound
	}

	return nil
}

// ExpirePending помечает истёкшими все pending заявки с датой праздника
// раньше указанной. Возвращает количество затронутых строк.
func (r *Repository) ExpirePending(ctx context.Context, before string) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("enquiries").
		Set("status", domain.StatusExpired).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": domain.StatusPending}).
		Where(squirrel.Lt{"party_date": before}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: ExpirePending - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: ExpirePending - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: ExpirePending - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanEnquiry(row rowScanner) (*domain.Enquiry, error) {
	var enq domain.Enquiry
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&enq.ID,
		&enq.Reference,
		&enq.CustomerID,
		&enq.SupplierID,
		&enq.PartyDate,
		&enq.Slot,
		&enq.DurationHours,
		&enq.GuestCount,
		&enq.Budget,
		&enq.Theme,
		&enq.Message,
		&enq.Status,
		&enq.SupplierName,
		&enq.SupplierCategory,
		&enq.CustomerName,
		&enq.CustomerEmail,
		&enq.DeclineReason,
		&enq.CancellationReason,
		&enq.CancelledAt,
		&enq.RespondedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	enq.CreatedAt = createdAt.Time
	enq.UpdatedAt = updatedAt.Time

	return &enq, nil
}

func (r *Repository) scanEnquiries(rows *sql.Rows) ([]*domain.Enquiry, error) {
	enquiries := make([]*domain.Enquiry, 0)

	for rows.Next() {
		enq, err := r.scanEnquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanEnquiries - scan enquiry: %v", ErrScanRow, err)
		}
		enquiries = append(enquiries, enq)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanEnquiries - rows error: %v", ErrScanRow, err)
	}

	return enquiries, nil
}
