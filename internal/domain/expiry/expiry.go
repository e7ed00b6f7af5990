// Package expiry implementa el motor de estado derivado de vencimientos:
// funciones puras que convierten la fecha de vencimiento de un ítem en una
// clasificación de severidad, una etiqueta legible y la lista ordenada de
// alertas del tablero. Sin efectos y sin reloj propio: "hoy" siempre llega
// por parámetro para que los tests sean deterministas.
package expiry

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// Severity severidad de una alerta de vencimiento. Variante cerrada,
// ordenada de más a menos severa.
type Severity int

const (
	SeverityExpired Severity = iota
	SeverityCritical
	SeverityWarning
	SeverityOk
)

// String nombre legible de la severidad.
func (s Severity) String() string {
	switch s {
	case SeverityExpired:
		return "Expired"
	case SeverityCritical:
		return "Critical"
	case SeverityWarning:
		return "Warning"
	case SeverityOk:
		return "Ok"
	}
	return "Unknown"
}

const day = 24 * time.Hour

// midnight normaliza un instante a la medianoche de su día calendario,
// reconstruyendo en UTC para que el huso de entrada no afecte el conteo.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysToExpiry calcula los días (granularidad día calendario) entre today y
// expiry: ceil((expiry - today) / 24h) con ambas fechas normalizadas a
// medianoche. Negativo si ya venció, cero si vence hoy.
func DaysToExpiry(expiry, today time.Time) int {
	diff := midnight(expiry).Sub(midnight(today))
	return int(math.Ceil(float64(diff) / float64(day)))
}

// Classify clasifica días-a-vencer en severidad. Función total y monótona:
//
//	days < 0   → Expired
//	0 ≤ d < 7  → Critical
//	7 ≤ d < 30 → Warning
//	d ≥ 30     → Ok
func Classify(days int) Severity {
	switch {
	case days < 0:
		return SeverityExpired
	case days < 7:
		return SeverityCritical
	case days < 30:
		return SeverityWarning
	default:
		return SeverityOk
	}
}

// Label devuelve la etiqueta exacta que muestran los clientes.
// El contrato de redacción es parte de los golden tests de UI: no cambiar
// sin actualizar a los consumidores.
func Label(days int) string {
	switch {
	case days < 0:
		return fmt.Sprintf("Expired %d days ago", -days)
	case days == 0:
		return "Expires today"
	default:
		return fmt.Sprintf("Expires in %d days", days)
	}
}

// AlertFor construye la alerta derivada de un ítem. Falla con ErrMalformed
// si la fecha de vencimiento no es una fecha válida — nunca degrada en
// silencio a "Ok".
func AlertFor(item entity.InventoryItem, now time.Time) (entity.ExpirationAlert, error) {
	if item.ExpirationDate.IsZero() {
		return entity.ExpirationAlert{}, fmt.Errorf("ítem %q sin fecha de vencimiento válida: %w", item.ID, domain.ErrMalformed)
	}
	return entity.ExpirationAlert{
		ID:             item.ID,
		ItemName:       item.Name,
		ExpirationDate: item.ExpirationDate,
		DaysToExpiry:   DaysToExpiry(item.ExpirationDate, now),
	}, nil
}

// BuildAlerts produce una alerta por ítem (sin filtrar) ordenadas de forma
// estable por DaysToExpiry ascendente: lo vencido o más próximo primero.
// Función pura de (items, now).
func BuildAlerts(items []entity.InventoryItem, now time.Time) ([]entity.ExpirationAlert, error) {
	alerts := make([]entity.ExpirationAlert, 0, len(items))
	for _, item := range items {
		alert, err := AlertFor(item, now)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, alert)
	}
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].DaysToExpiry < alerts[j].DaysToExpiry
	})
	return alerts, nil
}
