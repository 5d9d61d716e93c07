// Package analytics contiene el resumen que muestra la pantalla principal.
package analytics

import (
	"context"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// DashboardUseCase arma los dos agregados del panel: cantidad de socios y
// unidades totales en stock. No accede directo a las tablas; delega todo en
// el repositorio de consultas.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary ejecuta las dos consultas en paralelo y arma el DTO.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type countResult struct {
		n   int
		err error
	}
	type sumResult struct {
		n   int64
		err error
	}
	countCh := make(chan countResult, 1)
	sumCh := make(chan sumResult, 1)

	go func() {
		n, err := uc.analyticsRepo.CountPartners(ctx)
		countCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.SumStock(ctx)
		sumCh <- sumResult{n, err}
	}()

	count := <-countCh
	sum := <-sumCh
	if count.err != nil {
		return nil, count.err
	}
	if sum.err != nil {
		return nil, sum.err
	}

	return &dto.DashboardSummaryDTO{
		PartnerCount: count.n,
		StockUnits:   sum.n,
	}, nil
}
