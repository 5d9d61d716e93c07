package entity

import "time"

// Tipos de socio comercial.
const (
	PartnerTypeCustomer = "customer" // cliente
	PartnerTypeSupplier = "supplier" // proveedor
)

// Partner representa un cliente o proveedor con saldo corriente.
// Inmutable después de su creación; el saldo nunca se guarda aquí,
// se calcula sumando sus transacciones (ver ledger).
type Partner struct {
	ID        string
	Name      string
	Type      string // customer | supplier
	CreatedAt time.Time
}

// ValidPartnerType indica si el tipo recibido es uno de los soportados.
func ValidPartnerType(t string) bool {
	return t == PartnerTypeCustomer || t == PartnerTypeSupplier
}
