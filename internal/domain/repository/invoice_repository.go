package repository

import "github.com/jhoicas/Comercio-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice y sus líneas.
// Las facturas son inmutables: no hay Update ni Delete.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	CreateItem(item *entity.InvoiceItem) error
	GetByID(id string) (*entity.Invoice, error)
	// List devuelve todas las cabeceras ordenadas por fecha descendente.
	List() ([]*entity.Invoice, error)
	// GetItemsByInvoiceID devuelve las líneas en el orden original (position).
	GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error)
}
