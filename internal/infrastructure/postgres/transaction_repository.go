package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del libro de socios (usable con pool o tx).
// Solo inserta y lista: los asientos no se editan ni se borran.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create agrega un asiento al libro.
func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (id, partner_id, date, amount, type, note, invoice_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.PartnerID, tx.Date, tx.Amount, tx.Type, tx.Note,
		nullIfEmpty(tx.InvoiceID), tx.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrPartnerNotFound
		}
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// ListByPartner devuelve los asientos del socio por fecha ascendente; los
// asientos del mismo día salen en orden de registro.
func (r *TransactionRepo) ListByPartner(partnerID string) ([]*entity.Transaction, error) {
	query := `
		SELECT id, partner_id, date, COALESCE(amount, 0), type, COALESCE(note, ''), COALESCE(invoice_id::text, ''), created_at
		FROM transactions WHERE partner_id = $1 ORDER BY date, created_at`
	rows, err := r.q.Query(context.Background(), query, partnerID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(&t.ID, &t.PartnerID, &t.Date, &t.Amount, &t.Type, &t.Note, &t.InvoiceID, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
