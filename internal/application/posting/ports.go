package posting

import (
	"context"

	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// PostingTxRunner ejecuta una función dentro de una transacción que incluye
// los repos que toca la contabilización de una factura. Si fn retorna error
// se hace rollback: factura, stock, precios y asiento se confirman o se
// descartan juntos (todo o nada).
type PostingTxRunner interface {
	RunPosting(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		invoiceRepo repository.InvoiceRepository,
		transactionRepo repository.TransactionRepository,
	) error) error
}
