package dto

// DashboardSummaryResponse tarjetas del resumen del dashboard.
type DashboardSummaryResponse struct {
	Total    int            `json:"total"`
	Active   int            `json:"active"`
	Inactive int            `json:"inactive"`
	ByGender map[string]int `json:"byGender"`
}
