package catalog

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

func TestBuildActiveListQuery(t *testing.T) {
	tests := []struct {
		name    string
		table   string
		orderBy []string
		want    string
	}{
		{
			name:    "staff",
			table:   "staff",
			orderBy: []string{"name ASC", "id ASC"},
			want:    "SELECT id, name, active FROM staff WHERE active = $1 ORDER BY name ASC, id ASC",
		},
		{
			name:    "cabins",
			table:   "cabins",
			orderBy: []string{"id ASC"},
			want:    "SELECT id, name, active FROM cabins WHERE active = $1 ORDER BY id ASC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildActiveListQuery(tt.table, tt.orderBy...)
			require.NoError(t, err)

			assert.Equal(t, tt.want, query)
			assert.Equal(t, []interface{}{true}, args)
		})
	}
}

func TestListStaff_KeepsDriverError(t *testing.T) {
	repo := NewRepository(failingExecutor{err: &pq.Error{Code: "40001"}})

	_, err := repo.ListStaff(context.Background())
	require.ErrorIs(t, err, ErrExecQuery)

	var pqErr *pq.Error
	require.True(t, errors.As(err, &pqErr))
	assert.Equal(t, pq.ErrorCode("40001"), pqErr.Code)
}

func TestListCabins_KeepsDriverError(t *testing.T) {
	driverErr := errors.New("connection reset")
	repo := NewRepository(failingExecutor{err: driverErr})

	_, err := repo.ListCabins(context.Background())
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.ErrorIs(t, err, driverErr)
}
