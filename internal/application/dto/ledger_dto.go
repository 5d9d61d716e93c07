package dto

import "github.com/shopspring/decimal"

// CashPaymentRequest body para POST /api/partners/:id/payments.
// El signo del monto lo decide el tipo de socio, no el caller.
type CashPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"` // YYYY-MM-DD
	Note   string          `json:"note,omitempty"`
}

// TransactionResponse asiento del libro en respuestas.
type TransactionResponse struct {
	ID        string          `json:"id"`
	Date      string          `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Type      string          `json:"type"` // sale | purchase | cash_payment
	Note      string          `json:"note,omitempty"`
	InvoiceID string          `json:"invoice_id,omitempty"`
}

// LedgerResponse estado de cuenta de un socio.
// CurrentBalance es la suma aritmética de todos los asientos; se recalcula en
// cada consulta y nunca se guarda desnormalizado.
type LedgerResponse struct {
	Partner        PartnerResponse       `json:"partner"`
	Transactions   []TransactionResponse `json:"transactions"`
	CurrentBalance decimal.Decimal       `json:"current_balance"`
}
