// Package scanner implementa el puerto del escáner de códigos de
// barras. El servidor no tiene cámara: la implementación real siempre
// reporta unavailable y el campo se llena a mano; la variante fija
// sirve para pruebas y demos.
package scanner

import (
	"context"

	"github.com/jhoicas/Farmacia-api/internal/application/form"
)

// NoHardware escáner sin cámara disponible.
type NoHardware struct{}

// NewNoHardware construye el escáner sin hardware.
func NewNoHardware() NoHardware { return NoHardware{} }

// RequestScan siempre devuelve unavailable.
func (NoHardware) RequestScan(context.Context) (string, form.ScanOutcome) {
	return "", form.ScanUnavailable
}

// Fixed escáner que devuelve siempre el mismo código, con permiso
// concedido.
type Fixed struct {
	Code string
}

// RequestScan devuelve el código fijo.
func (f Fixed) RequestScan(context.Context) (string, form.ScanOutcome) {
	return f.Code, form.ScanGranted
}

// Denied escáner con el permiso de cámara negado.
type Denied struct{}

// RequestScan siempre devuelve denied.
func (Denied) RequestScan(context.Context) (string, form.ScanOutcome) {
	return "", form.ScanDenied
}
