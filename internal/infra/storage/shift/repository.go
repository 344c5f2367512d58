package shift

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonScheduler/pkg/psqlbuilder"
)

// Repository репозиторий графиков работы сотрудников (shift_windows)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория смен
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByStaffRange получает смены сотрудников за период [from, to) по календарным датам
func (r *Repository) ListByStaffRange(ctx context.Context, staffIDs []int64, from, to time.Time) ([]domain.ShiftWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildRangeQuery(staffIDs, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStaffRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStaffRange - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	windows := make([]domain.ShiftWindow, 0)
	for rows.Next() {
		var w domain.ShiftWindow
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(
			&w.ID,
			&w.StaffID,
			&w.Date,
			&w.IsWorkingDay,
			&w.Start,
			&w.End,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListByStaffRange - scan row: %w", ErrScanRow, err)
		}
		w.CreatedAt = createdAt.Time
		w.UpdatedAt = updatedAt.Time
		windows = append(windows, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByStaffRange - rows error: %w", ErrScanRow, err)
	}

	return windows, nil
}

// ListManagedStaffIDs возвращает тех сотрудников из staffIDs, у которых есть хотя бы одна смена
// (за любую дату). Пустой staffIDs означает всех сотрудников.
func (r *Repository) ListManagedStaffIDs(ctx context.Context, staffIDs []int64) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("DISTINCT staff_id").
		From("shift_windows").
		OrderBy("staff_id ASC")
	if len(staffIDs) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"staff_id": staffIDs})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListManagedStaffIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListManagedStaffIDs - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: ListManagedStaffIDs - scan staff_id: %w", ErrScanRow, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListManagedStaffIDs - rows error: %w", ErrScanRow, err)
	}

	return ids, nil
}

// Upsert создает или заменяет смену сотрудника на дату
func (r *Repository) Upsert(ctx context.Context, window *domain.ShiftWindow) (*domain.ShiftWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildUpsertQuery(window)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&window.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %w", ErrExecQuery, err)
	}

	window.CreatedAt = createdAt.Time
	window.UpdatedAt = updatedAt.Time

	return window, nil
}

// Delete удаляет смену сотрудника на дату
func (r *Repository) Delete(ctx context.Context, staffID int64, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("shift_windows").
		Where(squirrel.Eq{"staff_id": staffID, "work_date": date.Format(domain.DateFormat)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrShiftNotFound
	}

	return nil
}

func buildRangeQuery(staffIDs []int64, from, to time.Time) (string, []interface{}, error) {
	selectBuilder := psqlbuilder.Select(
		"id",
		"staff_id",
		"work_date",
		"is_working_day",
		"start_time",
		"end_time",
		"created_at",
		"updated_at",
	).
		From("shift_windows").
		Where(squirrel.GtOrEq{"work_date": from.Format(domain.DateFormat)}).
		Where(squirrel.Lt{"work_date": to.Format(domain.DateFormat)}).
		OrderBy("work_date ASC", "staff_id ASC")

	if len(staffIDs) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"staff_id": staffIDs})
	}

	return selectBuilder.ToSql()
}

func buildUpsertQuery(window *domain.ShiftWindow) (string, []interface{}, error) {
	return psqlbuilder.Insert("shift_windows").
		Columns("staff_id", "work_date", "is_working_day", "start_time", "end_time").
		Values(
			window.StaffID,
			window.Date.Format(domain.DateFormat),
			window.IsWorkingDay,
			window.Start,
			window.End,
		).
		Suffix("ON CONFLICT (staff_id, work_date) DO UPDATE SET " +
			"is_working_day = EXCLUDED.is_working_day, " +
			"start_time = EXCLUDED.start_time, " +
			"end_time = EXCLUDED.end_time, " +
			"updated_at = NOW() " +
			"RETURNING id, created_at, updated_at").
		ToSql()
}
