package dto

// DashboardSummaryDTO los dos agregados que muestra la pantalla principal.
type DashboardSummaryDTO struct {
	PartnerCount int   `json:"partner_count"`
	StockUnits   int64 `json:"stock_units"`
}
