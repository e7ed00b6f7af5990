package usecase

import (
	"context"
	"time"

	"golang.org/x/text/collate"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/tableview"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/expiry"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

const (
	dashboardExpiringSoon   = 5
	dashboardRecentActivity = 5
)

// DashboardUseCase resumen operativo de la pantalla principal.
type DashboardUseCase struct {
	inventory repository.InventoryRepository
	tasks     repository.TaskRepository
	activity  repository.ActivityRepository
	collator  *collate.Collator
	now       func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(inventory repository.InventoryRepository, tasks repository.TaskRepository, activity repository.ActivityRepository, locale string) *DashboardUseCase {
	return &DashboardUseCase{
		inventory: inventory,
		tasks:     tasks,
		activity:  activity,
		collator:  tableview.NewCollator(locale),
		now:       time.Now,
	}
}

// Summary arma el tablero: conteos de stock, tareas pendientes, los
// próximos vencimientos y la actividad más reciente.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardResponse, error) {
	items, err := uc.inventory.List(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := uc.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	logs, err := uc.activity.List(ctx)
	if err != nil {
		return nil, err
	}

	out := &dto.DashboardResponse{TotalItems: len(items)}
	for _, it := range items {
		out.TotalUnits += it.Quantity
		switch it.Status {
		case entity.StatusLowStock:
			out.LowStockItems++
		case entity.StatusOutOfStock:
			out.OutOfStockItems++
		}
	}
	for _, t := range tasks {
		if t.Status != entity.TaskCompleted {
			out.PendingTasks++
		}
	}

	alerts, err := expiry.BuildAlerts(items, uc.now())
	if err != nil {
		return nil, err
	}
	out.ExpiringSoon = make([]dto.ExpirationAlertResponse, 0, dashboardExpiringSoon)
	for _, a := range alerts {
		if len(out.ExpiringSoon) == dashboardExpiringSoon {
			break
		}
		sev := expiry.Classify(a.DaysToExpiry)
		if sev == expiry.SeverityOk {
			continue
		}
		out.ExpiringSoon = append(out.ExpiringSoon, toAlertResponse(a, sev))
	}

	schema := activitySchema()
	tableview.Sort(schema, uc.collator, logs, "timestamp", tableview.Desc)
	out.RecentActivity = make([]dto.ActivityLogResponse, 0, dashboardRecentActivity)
	for _, l := range logs {
		if len(out.RecentActivity) == dashboardRecentActivity {
			break
		}
		out.RecentActivity = append(out.RecentActivity, toActivityResponse(l))
	}
	return out, nil
}
