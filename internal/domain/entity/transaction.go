package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de asiento en el libro de socios.
const (
	TransactionTypeSale        = "sale"
	TransactionTypePurchase    = "purchase"
	TransactionTypeCashPayment = "cash_payment"
)

// Transaction es un asiento del libro de socios (append-only, nunca se edita).
//
// Convención de signos:
//   - venta: +saldo pendiente (el cliente nos debe)
//   - compra: -|saldo pendiente| (le debemos al proveedor)
//   - pago en efectivo de cliente: negativo (reduce su deuda)
//   - pago en efectivo a proveedor: positivo (reduce la nuestra)
//
// El saldo corriente de un socio es la suma de Amount de todos sus asientos;
// la suma es conmutativa, así que el orden de escritura no afecta el saldo.
type Transaction struct {
	ID        string
	PartnerID string
	Date      time.Time
	Amount    decimal.Decimal // con signo
	Type      string          // sale | purchase | cash_payment
	Note      string
	InvoiceID string // vacío para pagos en efectivo
	CreatedAt time.Time
}
