package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonScheduler/pkg/psqlbuilder"
)

// Repository справочники салона: сотрудники, кабинеты, услуги
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListStaff получает активных сотрудников
func (r *Repository) ListStaff(ctx context.Context) ([]domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildActiveListQuery("staff", "name ASC", "id ASC")
	if err != nil {
		return nil, fmt.Errorf("%w: ListStaff - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListStaff - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	staff := make([]domain.Staff, 0)
	for rows.Next() {
		var s domain.Staff
		if err := rows.Scan(&s.ID, &s.Name, &s.Active); err != nil {
			return nil, fmt.Errorf("%w: ListStaff - scan row: %w", ErrScanRow, err)
		}
		staff = append(staff, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListStaff - rows error: %w", ErrScanRow, err)
	}

	return staff, nil
}

// GetStaff получает сотрудника по ID
func (r *Repository) GetStaff(ctx context.Context, id int64) (*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "active").
		From("staff").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetStaff - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Staff
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.Name, &s.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetStaff - scan staff: %w", ErrScanRow, err)
	}

	return &s, nil
}

// ListCabins получает активные кабинеты
func (r *Repository) ListCabins(ctx context.Context) ([]domain.Cabin, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildActiveListQuery("cabins", "id ASC")
	if err != nil {
		return nil, fmt.Errorf("%w: ListCabins - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCabins - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	cabins := make([]domain.Cabin, 0)
	for rows.Next() {
		var c domain.Cabin
		if err := rows.Scan(&c.ID, &c.Name, &c.Active); err != nil {
			return nil, fmt.Errorf("%w: ListCabins - scan row: %w", ErrScanRow, err)
		}
		cabins = append(cabins, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCabins - rows error: %w", ErrScanRow, err)
	}

	return cabins, nil
}

// GetCabin получает кабинет по ID
func (r *Repository) GetCabin(ctx context.Context, id int64) (*domain.Cabin, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "active").
		From("cabins").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCabin - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Cabin
	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.Name, &c.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCabinNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCabin - scan cabin: %w", ErrScanRow, err)
	}

	return &c, nil
}

// GetService получает услугу по ID
func (r *Repository) GetService(ctx context.Context, id int64) (*domain.ServiceSpec, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "duration_minutes", "price").
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.ServiceSpec
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.Name, &s.DurationMinutes, &s.Price)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - scan service: %w", ErrScanRow, err)
	}

	return &s, nil
}

// buildActiveListQuery строит выборку только активных строк справочника
func buildActiveListQuery(table string, orderBy ...string) (string, []interface{}, error) {
	return psqlbuilder.Select("id", "name", "active").
		From(table).
		Where(squirrel.Eq{"active": true}).
		OrderBy(orderBy...).
		ToSql()
}
