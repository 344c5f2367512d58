package shift

import (
	"github.com/m04kA/SMC-SalonScheduler/pkg/dbmetrics"
)

// DBExecutor интерфейс для выполнения запросов (БД или транзакция)
type DBExecutor = dbmetrics.DBExecutor
