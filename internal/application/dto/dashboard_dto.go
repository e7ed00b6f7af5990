package dto

// DashboardResponse resumen operativo de la farmacia para la pantalla
// principal: stock, tareas pendientes, próximos vencimientos y actividad.
type DashboardResponse struct {
	TotalItems      int                       `json:"totalItems"`
	TotalUnits      int                       `json:"totalUnits"`
	LowStockItems   int                       `json:"lowStockItems"`
	OutOfStockItems int                       `json:"outOfStockItems"`
	PendingTasks    int                       `json:"pendingTasks"`
	ExpiringSoon    []ExpirationAlertResponse `json:"expiringSoon"`
	RecentActivity  []ActivityLogResponse     `json:"recentActivity"`
}
