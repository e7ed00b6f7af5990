package form

import (
	"context"
	"sync"

	"github.com/jhoicas/Farmacia-api/internal/domain"
)

// State estado del formulario.
type State int

const (
	Editing State = iota
	Submitting
	Closed
)

func (s State) String() string {
	switch s {
	case Submitting:
		return "submitting"
	case Closed:
		return "closed"
	default:
		return "editing"
	}
}

// Form una instancia de formulario con sus reglas y valores actuales.
// Los campos solo se mutan en Editing; durante Submitting todo queda
// bloqueado y al cerrar ya no hay vuelta atrás.
type Form struct {
	mu     sync.Mutex
	state  State
	fields []FieldRules
	values Values
}

// New crea el formulario en Editing, precargado con initial (puede ser
// nil para un formulario de creación).
func New(fields []FieldRules, initial Values) *Form {
	values := Values{}
	for k, v := range initial {
		values[k] = v
	}
	return &Form{fields: fields, values: values}
}

// SetValue escribe un campo. Solo permitido en Editing.
func (f *Form) SetValue(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.editable(); err != nil {
		return err
	}
	f.values[field] = value
	return nil
}

// Values copia de los valores actuales.
func (f *Form) Values() Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := Values{}
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// State estado actual.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Cancel descarta el formulario. Solo disponible en Editing: un envío
// en vuelo no se puede cancelar una vez despachado.
func (f *Form) Cancel() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.editable(); err != nil {
		return err
	}
	f.state = Closed
	return nil
}

// Submit valida y, solo si todas las reglas pasan, invoca persist con
// los valores validados. Con errores de validación el formulario sigue
// en Editing y persist no se llama. Si persist falla el formulario
// vuelve a Editing; si termina bien queda Closed.
func (f *Form) Submit(ctx context.Context, persist func(ctx context.Context, values Values) error) error {
	f.mu.Lock()
	if err := f.editable(); err != nil {
		f.mu.Unlock()
		return err
	}
	if errs := Validate(f.values, f.fields); len(errs) > 0 {
		f.mu.Unlock()
		return errs
	}
	f.state = Submitting
	values := Values{}
	for k, v := range f.values {
		values[k] = v
	}
	f.mu.Unlock()

	err := persist(ctx, values)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = Editing
		return err
	}
	f.state = Closed
	return nil
}

func (f *Form) editable() error {
	switch f.state {
	case Submitting:
		return domain.ErrSubmitInFlight
	case Closed:
		return domain.ErrViewClosed
	}
	return nil
}
