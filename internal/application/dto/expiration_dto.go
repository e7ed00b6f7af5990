package dto

// ExpirationAlertResponse salida de una alerta de vencimiento.
type ExpirationAlertResponse struct {
	ID             string `json:"id"`
	ItemName       string `json:"itemName"`
	ExpirationDate string `json:"expirationDate"`
	DaysToExpiry   int    `json:"daysToExpiry"`
	Severity       string `json:"severity"`
	Label          string `json:"label"`
}

// ExpirationSummaryResponse conteos por severidad del listado filtrado.
type ExpirationSummaryResponse struct {
	Window   string                    `json:"window"`
	Expired  int                       `json:"expired"`
	Critical int                       `json:"critical"`
	Warning  int                       `json:"warning"`
	Ok       int                       `json:"ok"`
	Alerts   []ExpirationAlertResponse `json:"alerts"`
}
