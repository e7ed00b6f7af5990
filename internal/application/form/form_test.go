package form_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/application/form"
	"github.com/jhoicas/Farmacia-api/internal/domain"
)

func valoresItemValido() form.Values {
	return form.Values{
		"name":           "Paracetamol 500mg",
		"category":       "Analgésicos",
		"quantity":       "40",
		"expirationDate": "2026-08-01",
		"status":         "In Stock",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Reglas
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_ItemValidoPasa(t *testing.T) {
	errs := form.Validate(valoresItemValido(), form.InventoryRules())
	assert.Empty(t, errs)
}

func TestValidate_CantidadNegativaBloquea(t *testing.T) {
	values := valoresItemValido()
	values["quantity"] = "-1"

	errs := form.Validate(values, form.InventoryRules())
	require.Len(t, errs, 1)
	msg, ok := errs.ByField("quantity")
	require.True(t, ok, "el error debe quedar atado al campo quantity")
	assert.Equal(t, "debe ser un número mayor o igual a 0", msg)
}

func TestValidate_UnErrorPorCampo(t *testing.T) {
	values := form.Values{
		"name":           "P",
		"category":       "",
		"quantity":       "abc",
		"expirationDate": "31/12/2026",
		"status":         "Agotado",
	}
	errs := form.Validate(values, form.InventoryRules())
	assert.Len(t, errs, 5)

	_, ok := errs.ByField("name")
	assert.True(t, ok)
	msg, _ := errs.ByField("expirationDate")
	assert.Equal(t, "debe ser una fecha válida (YYYY-MM-DD)", msg)
}

func TestValidate_EmpleadoCorreoInvalido(t *testing.T) {
	values := form.Values{"name": "Ana", "role": "Cajera", "email": "no-es-correo"}
	errs := form.Validate(values, form.EmployeeRules())
	require.Len(t, errs, 1)
	msg, _ := errs.ByField("email")
	assert.Equal(t, "debe ser un correo válido", msg)
}

func TestValidate_TareaAsignadoVacioNoEsError(t *testing.T) {
	values := form.Values{
		"title":    "Revisar neveras",
		"dueDate":  "2026-01-05",
		"priority": "High",
		// status y assignedTo vacíos: opcionales.
	}
	errs := form.Validate(values, form.TaskRules())
	assert.Empty(t, errs)
}

func TestValidate_TareaTituloCorto(t *testing.T) {
	values := form.Values{"title": "ok", "dueDate": "2026-01-05", "priority": "Low"}
	errs := form.Validate(values, form.TaskRules())
	require.Len(t, errs, 1)
	msg, _ := errs.ByField("title")
	assert.Equal(t, "debe tener al menos 3 caracteres", msg)
}

func TestOptional_ValorPresenteSeValida(t *testing.T) {
	rule := form.Optional(form.OneOf("Pending", "In Progress", "Completed"))
	assert.Empty(t, rule(""))
	assert.Empty(t, rule("Pending"))
	assert.NotEmpty(t, rule("Cancelada"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de vida
// ──────────────────────────────────────────────────────────────────────────────

func TestForm_ValidacionFallidaNuncaLlamaPersist(t *testing.T) {
	f := form.New(form.InventoryRules(), form.Values{"quantity": "-5"})

	called := false
	err := f.Submit(context.Background(), func(context.Context, form.Values) error {
		called = true
		return nil
	})

	var errs form.Errors
	require.ErrorAs(t, err, &errs)
	assert.False(t, called, "persist no debe invocarse con el formulario inválido")
	assert.Equal(t, form.Editing, f.State(), "el formulario sigue editable para corregir")
}

func TestForm_ExitoCierraElFormulario(t *testing.T) {
	f := form.New(form.InventoryRules(), valoresItemValido())

	var got form.Values
	err := f.Submit(context.Background(), func(_ context.Context, v form.Values) error {
		got = v
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, form.Closed, f.State())
	assert.Equal(t, "Paracetamol 500mg", got["name"])

	// Cerrado: ni editar ni reenviar.
	assert.ErrorIs(t, f.SetValue("name", "Otro"), domain.ErrViewClosed)
	err = f.Submit(context.Background(), func(context.Context, form.Values) error { return nil })
	assert.ErrorIs(t, err, domain.ErrViewClosed)
}

func TestForm_FallaDePersistenciaVuelveAEditing(t *testing.T) {
	f := form.New(form.InventoryRules(), valoresItemValido())

	boom := errors.New("store caído")
	err := f.Submit(context.Background(), func(context.Context, form.Values) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, form.Editing, f.State(), "tras la falla se puede corregir y reintentar")

	err = f.Submit(context.Background(), func(context.Context, form.Values) error { return nil })
	assert.NoError(t, err)
	assert.Equal(t, form.Closed, f.State())
}

func TestForm_SubmittingBloqueaCamposYCancel(t *testing.T) {
	f := form.New(form.InventoryRules(), valoresItemValido())

	inFlight := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- f.Submit(context.Background(), func(context.Context, form.Values) error {
			close(inFlight)
			<-release
			return nil
		})
	}()

	<-inFlight
	assert.Equal(t, form.Submitting, f.State())
	assert.ErrorIs(t, f.SetValue("name", "X"), domain.ErrSubmitInFlight)
	assert.ErrorIs(t, f.Cancel(), domain.ErrSubmitInFlight)
	err := f.Submit(context.Background(), func(context.Context, form.Values) error { return nil })
	assert.ErrorIs(t, err, domain.ErrSubmitInFlight)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, form.Closed, f.State())
}

func TestForm_CancelSoloEnEditing(t *testing.T) {
	f := form.New(form.EmployeeRules(), nil)
	require.NoError(t, f.SetValue("name", "Ana"))
	require.NoError(t, f.Cancel())
	assert.Equal(t, form.Closed, f.State())
	assert.ErrorIs(t, f.Cancel(), domain.ErrViewClosed)
}
