package simpletxmanager

import (
	"context"
	"database/sql"

	"github.com/m04kA/SMC-SalonScheduler/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonScheduler/pkg/txmanager"
)

// sqlDB адаптирует *sql.DB к txmanager.TxBeginner (без метрик)
type sqlDB struct {
	db *sql.DB
}

func (d sqlDB) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// NewTransactionManager создает менеджер транзакций поверх обычного *sql.DB.
// Используется, когда метрики выключены.
func NewTransactionManager(db *sql.DB) *txmanager.TransactionManager {
	return txmanager.NewTransactionManager(sqlDB{db: db})
}
