package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comercio-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// List devuelve todos los productos (negocio pequeño, sin paginación).
	List() ([]*entity.Product, error)
	// AdjustStock aplica un incremento atómico al stock (stock = stock + delta).
	// No es read-then-write: es seguro ante facturaciones concurrentes.
	// Devuelve domain.ErrProductNotFound si el producto no existe.
	AdjustStock(productID string, delta int64) error
	// UpdatePrices sobreescribe el precio de compra y, si salePrice no es nil,
	// también el de venta. Última escritura gana; sin detección de conflictos.
	UpdatePrices(productID string, purchasePrice decimal.Decimal, salePrice *decimal.Decimal) error
}
