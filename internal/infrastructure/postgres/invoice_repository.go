package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la cabecera de la factura. La FK de partner_id hace la
// única validación de existencia del socio: si no existe, el insert corta
// y la transacción entera se revierte.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, type, partner_id, date, total, paid, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.Type, invoice.PartnerID, invoice.Date,
		invoice.Total, invoice.Paid, invoice.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrPartnerNotFound
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de factura.
func (r *InvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	query := `
		INSERT INTO invoice_items (id, invoice_id, product_id, name, quantity, price, total, update_sell_price, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.InvoiceID, item.ProductID, item.Name, item.Quantity,
		item.Price, item.Total, item.UpdateSellPrice, item.Position,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProductNotFound
		}
		return fmt.Errorf("insert invoice item: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una factura por ID.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `
		SELECT id, type, partner_id, date, COALESCE(total, 0), COALESCE(paid, 0), created_at
		FROM invoices WHERE id = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&inv.ID, &inv.Type, &inv.PartnerID, &inv.Date, &inv.Total, &inv.Paid, &inv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// List devuelve todas las cabeceras por fecha descendente. COALESCE garantiza
// montos numéricos aunque el documento se haya guardado sin el campo.
func (r *InvoiceRepo) List() ([]*entity.Invoice, error) {
	query := `
		SELECT id, type, partner_id, date, COALESCE(total, 0), COALESCE(paid, 0), created_at
		FROM invoices ORDER BY date DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.Type, &inv.PartnerID, &inv.Date, &inv.Total, &inv.Paid, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// GetItemsByInvoiceID devuelve las líneas en el orden original de carga.
func (r *InvoiceRepo) GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error) {
	query := `
		SELECT id, invoice_id, product_id, name, quantity, COALESCE(price, 0), COALESCE(total, 0), update_sell_price, position
		FROM invoice_items WHERE invoice_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()
	var list []*entity.InvoiceItem
	for rows.Next() {
		var item entity.InvoiceItem
		var updateSell *decimal.Decimal
		if err := rows.Scan(&item.ID, &item.InvoiceID, &item.ProductID, &item.Name, &item.Quantity,
			&item.Price, &item.Total, &updateSell, &item.Position); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		item.UpdateSellPrice = updateSell
		list = append(list, &item)
	}
	return list, rows.Err()
}
