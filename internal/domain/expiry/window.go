package expiry

import "github.com/jhoicas/Farmacia-api/internal/domain/entity"

// Window filtro del rastreador de vencimientos: todo, solo vencidos, o una
// ventana de próximos N días.
type Window struct {
	All     bool
	Expired bool
	Days    int // válido solo si !All && !Expired
}

// ParseWindow interpreta el parámetro de filtro del rastreador
// ("all", "expired", "7", "30", "90"). Cualquier otro valor equivale a "all".
func ParseWindow(s string) Window {
	switch s {
	case "", "all":
		return Window{All: true}
	case "expired":
		return Window{Expired: true}
	case "7":
		return Window{Days: 7}
	case "30":
		return Window{Days: 30}
	case "90":
		return Window{Days: 90}
	}
	return Window{All: true}
}

// Filter aplica la ventana sobre alertas ya construidas, preservando el orden.
func (w Window) Filter(alerts []entity.ExpirationAlert) []entity.ExpirationAlert {
	if w.All {
		return alerts
	}
	out := make([]entity.ExpirationAlert, 0, len(alerts))
	for _, a := range alerts {
		switch {
		case w.Expired && a.DaysToExpiry < 0:
			out = append(out, a)
		case !w.Expired && a.DaysToExpiry >= 0 && a.DaysToExpiry <= w.Days:
			out = append(out, a)
		}
	}
	return out
}
