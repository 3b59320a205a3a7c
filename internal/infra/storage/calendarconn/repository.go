package calendarconn

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/PSM-BookingService/internal/domain"
	"github.com/m04kA/PSM-BookingService/pkg/dbmetrics"
	"github.com/m04kA/PSM-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий подключений к внешним календарям
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория подключений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert сохраняет подключение поставщика. Повторное подключение
// перезаписывает токены существующей строки.
func (r *Repository) Upsert(ctx context.Context, conn *domain.CalendarConnection) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("calendar_connections").
		Columns(
			"supplier_id",
			"provider",
			"access_token",
			"refresh_token",
			"token_expires_at",
		).
		Values(
			conn.SupplierID,
			conn.Provider,
			conn.AccessToken,
			conn.RefreshToken,
			conn.TokenExpiresAt,
		).
		Suffix(`ON CONFLICT (supplier_id) DO UPDATE SET
			provider = EXCLUDED.provider,
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			token_expires_at = EXCLUDED.token_expires_at,
			updated_at = NOW()`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetBySupplierID получает подключение поставщика
func (r *Repository) GetBySupplierID(ctx context.Context, supplierID int64) (*domain.CalendarConnection, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"supplier_id",
		"provider",
		"access_token",
		"refresh_token",
		"token_expires_at",
		"last_synced_at",
		"created_at",
		"updated_at",
	).
		From("calendar_connections").
		Where(squirrel.Eq{"supplier_id": supplierID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBySupplierID - build select query: %v", ErrBuildQuery, err)
	}

	var conn domain.CalendarConnection
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&conn.SupplierID,
		&conn.Provider,
		&conn.AccessToken,
		&conn.RefreshToken,
		&conn.TokenExpiresAt,
		&conn.LastSyncedAt,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConnectionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySupplierID - scan connection: %v", ErrScanRow, err)
	}

	conn.CreatedAt = createdAt.Time
	conn.UpdatedAt = updatedAt.Time

	return &conn, nil
}

// ListSupplierIDs возвращает ID всех подключённых поставщиков.
// Используется фоновой синхронизацией.
func (r *Repository) ListSupplierIDs(ctx context.Context) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("supplier_id").
		From("calendar_connections").
		OrderBy("supplier_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListSupplierIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListSupplierIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: ListSupplierIDs - scan supplier_id: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListSupplierIDs - rows error: %v", ErrScanRow, err)
	}

	return ids, nil
}

// UpdateTokens обновляет токены после рефреша
func (r *Repository) UpdateTokens(ctx context.Context, conn *domain.CalendarConnection) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("calendar_connections").
		Set("access_token", conn.AccessToken).
		Set("refresh_token", conn.RefreshToken).
		Set("token_expires_at", conn.TokenExpiresAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"supplier_id": conn.SupplierID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateTokens - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateTokens - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateTokens - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrConnectionNotFound
	}

	return nil
}

// MarkSynced фиксирует момент успешной синхронизации
func (r *Repository) MarkSynced(ctx context.Context, supplierID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("calendar_connections").
		Set("last_synced_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"supplier_id": supplierID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkSynced - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: MarkSynced - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// Delete удаляет подключение поставщика
func (r *Repository) Delete(ctx context.Context, supplierID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("calendar_connections").
		Where(squirrel.Eq{"supplier_id": supplierID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrConnectionNotFound
	}

	return nil
}
