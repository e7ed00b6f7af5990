// Package records implementa el adaptador del record store: la traducción
// entre las entidades del dominio y la forma de documento plano que maneja
// el docstore. Reglas del borde:
//
//   - Fechas de día calendario se escriben como "YYYY-MM-DD" y se releen en
//     UTC: el viaje de ida y vuelta es sin pérdida en cualquier huso del host.
//   - Instantes completos (timestamps de actividad) viajan como RFC 3339.
//   - Opcionales en blanco se omiten del documento en lugar de escribirse
//     como cadena vacía, para distinguir "no asignado" de "asignado vacío".
//   - Un documento que no decodifica produce domain.ErrMalformed.
package records

import (
	"fmt"
	"time"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/docstore"
	"github.com/jhoicas/Farmacia-api/pkg/metrics"
)

const dateLayout = "2006-01-02"

// encodeDate serializa una fecha de día calendario (se descarta la hora).
func encodeDate(t time.Time) string {
	return t.Format(dateLayout)
}

// decodeDate deserializa una fecha de día calendario. Acepta también
// RFC 3339 por compatibilidad con documentos escritos por clientes viejos;
// en ese caso conserva solo el día calendario.
func decodeDate(v any) (time.Time, error) {
	s, ok := v.(string)
	if !ok || s == "" {
		return time.Time{}, fmt.Errorf("fecha ausente o no textual: %w", domain.ErrMalformed)
	}
	if t, err := time.ParseInLocation(dateLayout, s, time.UTC); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("fecha %q no interpretable: %w", s, domain.ErrMalformed)
}

// encodeTime serializa un instante completo.
func encodeTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// decodeTime deserializa un instante completo.
func decodeTime(v any) (time.Time, error) {
	s, ok := v.(string)
	if !ok || s == "" {
		return time.Time{}, fmt.Errorf("timestamp ausente o no textual: %w", domain.ErrMalformed)
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp %q no interpretable: %w", s, domain.ErrMalformed)
	}
	return t, nil
}

// putOptional escribe el campo solo si el valor no está en blanco.
func putOptional(rec docstore.Record, key, val string) {
	if val != "" {
		rec[key] = val
	}
}

func getString(rec docstore.Record, key string) string {
	s, _ := rec[key].(string)
	return s
}

// getInt lee un número JSON (float64 tras unmarshal) como entero.
func getInt(rec docstore.Record, key string) (int, error) {
	switch n := rec[key].(type) {
	case float64:
		return int(n), nil
	case int:
		return n, nil
	}
	return 0, fmt.Errorf("campo %q no numérico: %w", key, domain.ErrMalformed)
}

// base campos comunes de los adaptadores: colección, nombre y métricas.
type base struct {
	col  docstore.Collection
	name string
	m    *metrics.Metrics
}

// observe registra la operación en Prometheus (nil-safe para tests).
func (b base) observe(op string, err error) {
	if b.m != nil {
		b.m.ObserveStoreOp(b.name, op, err)
	}
}
