package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Comercio-api/internal/application/posting"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// Ensure TxRunner implements posting.PostingTxRunner.
var _ posting.PostingTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunPosting inicia una transacción, ejecuta fn con los repos de
// contabilización atados a la tx y hace Commit o Rollback. Es la garantía de
// atomicidad de la factura: cabecera, líneas, stock, precios y asiento del
// libro se confirman juntos o no queda nada.
func (r *TxRunner) RunPosting(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	invoiceRepo repository.InvoiceRepository,
	transactionRepo repository.TransactionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewProductRepository(tx)
	invoiceRepo := NewInvoiceRepository(tx)
	transactionRepo := NewTransactionRepository(tx)

	if err := fn(productRepo, invoiceRepo, transactionRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
