package repository

import "context"

// AnalyticsRepository consultas read-only para el resumen del panel.
type AnalyticsRepository interface {
	// CountPartners devuelve la cantidad de socios registrados.
	CountPartners(ctx context.Context) (int, error)
	// SumStock devuelve la suma de unidades en stock de todos los productos.
	SumStock(ctx context.Context) (int64, error)
}
