package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del almacén.
// PurchasePrice se sobreescribe con el precio de la última compra (política
// de último costo, sin promedios). Stock puede quedar negativo: el sistema
// no impone piso y las ventas se registran aunque el inventario no alcance.
type Product struct {
	ID            string
	Name          string
	PurchasePrice decimal.Decimal // precio de compra (último costo)
	SalePrice     decimal.Decimal // precio de venta vigente
	Stock         int64           // unidades; se ajusta solo vía incremento atómico
	CreatedAt     time.Time
}
