package dto

import "github.com/shopspring/decimal"

// CreateInvoiceRequest body para POST /api/invoices.
// Total, si viene distinto de cero, debe coincidir con la suma de las líneas.
type CreateInvoiceRequest struct {
	Type      string               `json:"type"` // sale | purchase
	PartnerID string               `json:"partner_id"`
	Date      string               `json:"date"` // YYYY-MM-DD
	Items     []InvoiceItemRequest `json:"items"`
	Total     decimal.Decimal      `json:"total"`
	Paid      decimal.Decimal      `json:"paid"`
}

// InvoiceItemRequest línea de factura.
// UpdateSellPrice solo aplica en compras: si es > 0 sobreescribe el precio de
// venta del producto; nil o <= 0 lo deja intacto.
type InvoiceItemRequest struct {
	ProductID       string           `json:"product_id"`
	Name            string           `json:"name"`
	Quantity        int64            `json:"quantity"`
	Price           decimal.Decimal  `json:"price"`
	UpdateSellPrice *decimal.Decimal `json:"update_sell_price,omitempty"`
}

// InvoiceResponse factura en respuestas. Items va vacío en listados
// y completo en GET /api/invoices/:id.
type InvoiceResponse struct {
	ID          string                `json:"id"`
	Type        string                `json:"type"`
	PartnerID   string                `json:"partner_id"`
	PartnerName string                `json:"partner_name,omitempty"`
	Date        string                `json:"date"`
	Total       decimal.Decimal       `json:"total"`
	Paid        decimal.Decimal       `json:"paid"`
	Remaining   decimal.Decimal       `json:"remaining"`
	Items       []InvoiceItemResponse `json:"items,omitempty"`
}

// InvoiceItemResponse línea de factura en la respuesta.
type InvoiceItemResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Total     decimal.Decimal `json:"total"`
}
