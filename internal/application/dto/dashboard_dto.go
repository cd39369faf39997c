package dto

// DashboardSummaryDTO datos de la página de inicio.
type DashboardSummaryDTO struct {
	TotalItems     int                `json:"total_items"`
	TotalMovements int                `json:"total_movements"`
	LastMovements  []MovementResponse `json:"last_movements"` // los 5 más recientes
}
