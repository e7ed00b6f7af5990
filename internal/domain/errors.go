package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)

// Errores clasificados del record store. Toda falla del store llega al caller
// como uno de estos (nunca como el error crudo del driver), para que las
// páginas puedan decidir el mensaje sin inspeccionar formas específicas.
var (
	ErrPermissionDenied = errors.New("permiso denegado por el store")
	ErrUnavailable      = errors.New("store no disponible")
	ErrMalformed        = errors.New("documento malformado")
	ErrStoreUnknown     = errors.New("error desconocido del store")
)

// IsNotFound reporta si err corresponde a un recurso inexistente.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrUserNotFound)
}

// Errores del motor de vistas y formularios.
var (
	// ErrSubmitInFlight: ya hay una mutación en vuelo para esta vista;
	// la compuerta de envío bloquea acciones mutantes concurrentes.
	ErrSubmitInFlight = errors.New("hay una operación en curso")
	// ErrConfirmRequired: el borrado exige confirmación explícita previa.
	ErrConfirmRequired = errors.New("el borrado requiere confirmación")
	// ErrViewClosed: la vista fue cerrada; el resultado llegó tarde y se descarta.
	ErrViewClosed = errors.New("la vista fue cerrada")
)
