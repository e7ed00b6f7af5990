package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/expiry"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// ReportGenerator puerto del generador del reporte de vencimientos.
type ReportGenerator interface {
	ExpirationReport(generatedAt time.Time, window string, alerts []dto.ExpirationAlertResponse) ([]byte, error)
}

// ExpirationUseCase rastreador de vencimientos: alertas derivadas del
// inventario y reporte imprimible.
type ExpirationUseCase struct {
	repo   repository.InventoryRepository
	report ReportGenerator
	now    func() time.Time
}

// NewExpirationUseCase construye el caso de uso.
func NewExpirationUseCase(repo repository.InventoryRepository, report ReportGenerator) *ExpirationUseCase {
	return &ExpirationUseCase{repo: repo, report: report, now: time.Now}
}

// List deriva una alerta por cada ítem del inventario, filtra por la
// ventana pedida y resume los conteos por severidad. Las alertas salen
// ordenadas por días al vencimiento, lo más urgente primero.
func (uc *ExpirationUseCase) List(ctx context.Context, window string) (*dto.ExpirationSummaryResponse, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	alerts, err := expiry.BuildAlerts(items, uc.now())
	if err != nil {
		return nil, err
	}
	w := expiry.ParseWindow(window)
	filtered := w.Filter(alerts)

	out := &dto.ExpirationSummaryResponse{
		Window: window,
		Alerts: make([]dto.ExpirationAlertResponse, 0, len(filtered)),
	}
	if out.Window == "" {
		out.Window = "all"
	}
	for _, a := range filtered {
		sev := expiry.Classify(a.DaysToExpiry)
		switch sev {
		case expiry.SeverityExpired:
			out.Expired++
		case expiry.SeverityCritical:
			out.Critical++
		case expiry.SeverityWarning:
			out.Warning++
		default:
			out.Ok++
		}
		out.Alerts = append(out.Alerts, toAlertResponse(a, sev))
	}
	return out, nil
}

// Report genera el PDF de vencimientos para la ventana pedida.
func (uc *ExpirationUseCase) Report(ctx context.Context, window string) ([]byte, error) {
	summary, err := uc.List(ctx, window)
	if err != nil {
		return nil, err
	}
	return uc.report.ExpirationReport(uc.now(), summary.Window, summary.Alerts)
}

func toAlertResponse(a entity.ExpirationAlert, sev expiry.Severity) dto.ExpirationAlertResponse {
	return dto.ExpirationAlertResponse{
		ID:             a.ID,
		ItemName:       a.ItemName,
		ExpirationDate: a.ExpirationDate.Format(dateLayout),
		DaysToExpiry:   a.DaysToExpiry,
		Severity:       sev.String(),
		Label:          expiry.Label(a.DaysToExpiry),
	}
}
