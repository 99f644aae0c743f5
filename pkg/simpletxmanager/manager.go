package simpletxmanager

import (
	"context"
	"database/sql"

	"github.com/m04kA/CarRental-BookingService/pkg/dbmetrics"
	"github.com/m04kA/CarRental-BookingService/pkg/txmanager"
)

// beginner адаптер *sql.DB под txmanager.TxBeginner
// *sql.Tx сам по себе реализует dbmetrics.TxExecutor
type beginner struct {
	db *sql.DB
}

func (b beginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	return b.db.BeginTx(ctx, opts)
}

// NewTransactionManager создает transaction manager поверх чистого *sql.DB
// (вариант без сбора метрик, когда метрики выключены в конфиге)
func NewTransactionManager(db *sql.DB) *txmanager.TransactionManager {
	return txmanager.NewTransactionManager(beginner{db: db})
}
