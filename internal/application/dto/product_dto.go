package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name          string          `json:"name"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	Stock         int64           `json:"stock"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	Stock         int64           `json:"stock"`
	CreatedAt     time.Time       `json:"created_at"`
}
