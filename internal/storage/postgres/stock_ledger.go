package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/salesops/internal/domain"
)

type stockLedger struct {
	db *sql.DB
}

// NewStockLedger создаёт PostgreSQL-реализацию StockLedger.
func NewStockLedger(store *Store) domain.StockLedger {
	return &stockLedger{db: store.DB()}
}

// ApplyDeltas применяет пакет дельт одной транзакцией. Каждая дельта —
// условный UPDATE: остаток меняется только если результат неотрицателен.
// Ноль затронутых строк означает либо нехватку остатка, либо отсутствие
// товара; любой такой случай откатывает весь пакет.
func (l *stockLedger) ApplyDeltas(ctx context.Context, deltas []domain.StockDelta) error {
	if len(deltas) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin stock tx: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, delta := range deltas {
		var res sql.Result
		res, err = tx.ExecContext(ctx, `
			UPDATE products
			SET stock = stock + $1
			WHERE id = $2
			  AND stock + $1 >= 0
		`, delta.Delta, delta.ProductID)
		if err != nil {
			return fmt.Errorf("apply stock delta: %w", err)
		}

		var affected int64
		affected, err = res.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected: %w", err)
		}
		if affected == 0 {
			err = l.deltaFailure(ctx, tx, delta)
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit stock tx: %w", err)
	}
	return nil
}

// deltaFailure различает отсутствующий товар и нехватку остатка, чтобы
// вернуть вызывающему точную причину отказа.
func (l *stockLedger) deltaFailure(ctx context.Context, tx *sql.Tx, delta domain.StockDelta) error {
	var available int32
	err := tx.QueryRowContext(ctx, `SELECT stock FROM products WHERE id = $1`, delta.ProductID).Scan(&available)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrProductNotFound
	}
	if err != nil {
		return fmt.Errorf("inspect stock failure: %w", err)
	}
	return &domain.InsufficientStockError{
		ProductID: delta.ProductID,
		Requested: -delta.Delta,
		Available: available,
	}
}

var _ domain.StockLedger = (*stockLedger)(nil)
