package shift

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/pkg/types"
)

func TestBuildRangeQuery(t *testing.T) {
	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	query, args, err := buildRangeQuery([]int64{4}, from, from.AddDate(0, 0, 7))
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, staff_id, work_date, is_working_day, start_time, end_time, created_at, updated_at "+
			"FROM shift_windows WHERE work_date >= $1 AND work_date < $2 AND staff_id IN ($3) "+
			"ORDER BY work_date ASC, staff_id ASC",
		query)
	assert.Equal(t, []interface{}{"2025-03-10", "2025-03-17", int64(4)}, args)
}

func TestBuildUpsertQuery(t *testing.T) {
	window := &domain.ShiftWindow{
		StaffID:      4,
		Date:         time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		IsWorkingDay: true,
		Start:        types.MustTimeString("10:00"),
		End:          types.MustTimeString("18:00"),
	}

	query, args, err := buildUpsertQuery(window)
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO shift_windows (staff_id,work_date,is_working_day,start_time,end_time) VALUES ($1,$2,$3,$4,$5)")
	assert.Contains(t, query, "ON CONFLICT (staff_id, work_date) DO UPDATE")
	require.Len(t, args, 5)
	assert.Equal(t, "2025-03-10", args[1])
}

type failingExecutor struct {
	err error
}

func (f failingExecutor) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, f.err
}

func (f failingExecutor) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, f.err
}

func (f failingExecutor) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func TestListByStaffRange_KeepsDriverError(t *testing.T) {
	repo := NewRepository(failingExecutor{err: &pq.Error{Code: "40001"}})
	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	_, err := repo.ListByStaffRange(context.Background(), []int64{4}, from, from.AddDate(0, 0, 1))
	require.ErrorIs(t, err, ErrExecQuery)

	var pqErr *pq.Error
	require.True(t, errors.As(err, &pqErr))
	assert.Equal(t, pq.ErrorCode("40001"), pqErr.Code)
}
