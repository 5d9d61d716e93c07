package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de factura.
const (
	InvoiceTypeSale     = "sale"     // venta a cliente
	InvoiceTypePurchase = "purchase" // compra a proveedor
)

// Invoice representa la cabecera de una factura. Se crea una vez y nunca se
// modifica; los efectos colaterales (stock, precios, asiento en el libro)
// se aplican en el mismo commit que la cabecera.
type Invoice struct {
	ID        string
	Type      string // sale | purchase
	PartnerID string
	Date      time.Time
	Total     decimal.Decimal // suma de los totales de línea
	Paid      decimal.Decimal // monto pagado al emitir
	CreatedAt time.Time
}

// InvoiceItem representa una línea de factura. Position preserva el orden en
// que el usuario cargó las líneas.
type InvoiceItem struct {
	ID        string
	InvoiceID string
	ProductID string
	Name      string // nombre del producto al momento de facturar
	Quantity  int64  // siempre > 0; el signo lo decide el tipo de factura
	Price     decimal.Decimal
	Total     decimal.Decimal // Quantity × Price
	// UpdateSellPrice: en compras, nuevo precio de venta a aplicar al producto.
	// Solo se aplica si es > 0; nil deja el precio de venta como está.
	UpdateSellPrice *decimal.Decimal
	Position        int
}

// ValidInvoiceType indica si el tipo recibido es uno de los soportados.
func ValidInvoiceType(t string) bool {
	return t == InvoiceTypeSale || t == InvoiceTypePurchase
}
