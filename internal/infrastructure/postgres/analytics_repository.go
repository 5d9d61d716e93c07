package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo agregados de solo lectura para el tablero.
type AnalyticsRepo struct {
	q Querier
}

func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// CountPartners cuenta los socios registrados.
func (r *AnalyticsRepo) CountPartners(ctx context.Context) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM partners`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count partners: %w", err)
	}
	return count, nil
}

// SumStock suma las unidades en stock de todos los productos.
func (r *AnalyticsRepo) SumStock(ctx context.Context) (int64, error) {
	var total int64
	err := r.q.QueryRow(ctx, `SELECT COALESCE(SUM(stock), 0) FROM products`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum stock: %w", err)
	}
	return total, nil
}
