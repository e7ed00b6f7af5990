// Package pdf implementa la generación del reporte imprimible de
// vencimientos del inventario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la farmacia  │  Fecha + ventana          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Ítem | Vence | Días | Severidad | Etiqueta           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: total de alertas listadas                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa usecase.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	appName string
}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator(appName string) *MarotoReportGenerator {
	return &MarotoReportGenerator{appName: appName}
}

// ExpirationReport genera el PDF del rastreador de vencimientos y
// devuelve sus bytes. Las alertas llegan ya filtradas y ordenadas por
// urgencia.
func (g *MarotoReportGenerator) ExpirationReport(generatedAt time.Time, window string, alerts []dto.ExpirationAlertResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Vencimientos", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(generatedAt, window))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, a := range alerts {
		m.AddRows(alertRow(a))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(alerts)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la app (izq) y fecha + ventana (der).
func (g *MarotoReportGenerator) headerRow(generatedAt time.Time, window string) core.Row {
	fecha := generatedAt.Format("02/01/2006 15:04")
	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.appName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Rastreador de vencimientos", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE VENCIMIENTOS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Ventana: "+windowLabel(window), props.Text{
				Size: 9, Align: align.Right, Top: 7,
			}),
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de alertas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Ítem", 4, align.Left),
		h("Vence", 2, align.Center),
		h("Días", 1, align.Center),
		h("Severidad", 2, align.Center),
		h("Etiqueta", 3, align.Left),
	)
}

// alertRow: una fila por alerta; lo vencido va en rojo.
func alertRow(a dto.ExpirationAlertResponse) core.Row {
	celda := props.Text{Size: 8, Top: 1, Left: 1, Right: 1}
	if a.DaysToExpiry < 0 {
		celda.Color = colorDanger
	}
	center := celda
	center.Align = align.Center
	return row.New(7).Add(
		col.New(4).Add(text.New(a.ItemName, celda)),
		col.New(2).Add(text.New(a.ExpirationDate, center)),
		col.New(1).Add(text.New(fmt.Sprintf("%d", a.DaysToExpiry), center)),
		col.New(2).Add(text.New(a.Severity, center)),
		col.New(3).Add(text.New(a.Label, celda)),
	)
}

// footerRow: total de alertas listadas.
func footerRow(total int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(
			fmt.Sprintf("Total de alertas: %d", total),
			props.Text{Size: 8, Top: 2, Color: colorGray},
		)),
	)
}

func windowLabel(window string) string {
	switch window {
	case "expired":
		return "Solo vencidos"
	case "7", "30", "90":
		return "Próximos " + window + " días"
	default:
		return "Todo el inventario"
	}
}
