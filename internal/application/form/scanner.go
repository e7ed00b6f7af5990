package form

import "context"

// ScanOutcome resultado de una solicitud de escaneo de código de barras.
type ScanOutcome int

const (
	ScanGranted ScanOutcome = iota
	ScanDenied
	ScanUnavailable
)

func (o ScanOutcome) String() string {
	switch o {
	case ScanGranted:
		return "granted"
	case ScanDenied:
		return "denied"
	default:
		return "unavailable"
	}
}

// Scanner contrato del escáner de códigos de barras del formulario de
// inventario. Con permiso concedido devuelve un único código
// decodificado; denegado o sin hardware, el campo queda editable a
// mano.
type Scanner interface {
	RequestScan(ctx context.Context) (code string, outcome ScanOutcome)
}
