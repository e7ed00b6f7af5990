package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/form"
	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/docstore"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/records"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/scanner"
	"github.com/jhoicas/Farmacia-api/pkg/logger"
)

type entorno struct {
	store     *docstore.MemoryStore
	inventory *usecase.InventoryUseCase
	tasks     *usecase.TaskUseCase
	employees *usecase.EmployeeUseCase
	activity  *usecase.ActivityUseCase
}

func nuevoEntorno() *entorno {
	store := docstore.NewMemoryStore()
	activity := usecase.NewActivityUseCase(records.NewActivityAdapter(store, nil), logger.Nop(), "es")
	return &entorno{
		store:     store,
		inventory: usecase.NewInventoryUseCase(records.NewInventoryAdapter(store, nil), activity, scanner.NewNoHardware(), "es"),
		tasks:     usecase.NewTaskUseCase(records.NewTaskAdapter(store, nil), activity, "es"),
		employees: usecase.NewEmployeeUseCase(records.NewEmployeeAdapter(store, nil), activity, "es"),
		activity:  activity,
	}
}

func itemValido(nombre, vence string) dto.CreateInventoryItemRequest {
	return dto.CreateInventoryItemRequest{
		Name: nombre, Category: "Analgésicos", Quantity: 20,
		ExpirationDate: vence, Status: "In Stock",
	}
}

func TestInventoryCreate_PersisteYRegistraActividad(t *testing.T) {
	ctx := context.Background()
	e := nuevoEntorno()

	out, err := e.inventory.Create(ctx, "Ana", itemValido("Paracetamol", "2026-08-01"))
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "2026-08-01", out.ExpirationDate)
	assert.Equal(t, "default", out.StatusVariant)

	logs, err := e.activity.List(ctx, dto.ListRequest{}, "")
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "Ana", logs[0].User)
	assert.Equal(t, "Ítem de inventario creado", logs[0].Action)
	assert.Equal(t, out.ID, logs[0].Details["itemId"])
}

func TestInventoryCreate_CantidadNegativaNoTocaElStore(t *testing.T) {
	ctx := context.Background()
	e := nuevoEntorno()

	in := itemValido("Paracetamol", "2026-08-01")
	in.Quantity = -1
	_, err := e.inventory.Create(ctx, "Ana", in)

	var errs form.Errors
	require.ErrorAs(t, err, &errs)
	_, ok := errs.ByField("quantity")
	assert.True(t, ok)

	// Ni el ítem ni la entrada de bitácora llegaron al store.
	items, err := e.inventory.List(ctx, dto.ListRequest{})
	require.NoError(t, err)
	assert.Empty(t, items)
	logs, err := e.activity.List(ctx, dto.ListRequest{}, "")
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestInventoryList_OrdenPorDefectoVencimientoAsc(t *testing.T) {
	ctx := context.Background()
	e := nuevoEntorno()

	_, err := e.inventory.Create(ctx, "Ana", itemValido("Tardío", "2027-01-01"))
	require.NoError(t, err)
	_, err = e.inventory.Create(ctx, "Ana", itemValido("Urgente", "2025-10-01"))
	require.NoError(t, err)
	_, err = e.inventory.Create(ctx, "Ana", itemValido("Medio", "2026-05-05"))
	require.NoError(t, err)

	out, err := e.inventory.List(ctx, dto.ListRequest{})
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, []string{"Urgente", "Medio", "Tardío"}, []string{out[0].Name, out[1].Name, out[2].Name})
}

func TestInventoryList_FiltroPorCantidadComoTexto(t *testing.T) {
	ctx := context.Background()
	e := nuevoEntorno()

	a := itemValido("Uno", "2026-01-01")
	a.Quantity = 777
	_, err := e.inventory.Create(ctx, "Ana", a)
	require.NoError(t, err)
	b := itemValido("Dos", "2026-01-02")
	b.Quantity = 3
	_, err = e.inventory.Create(ctx, "Ana", b)
	require.NoError(t, err)

	out, err := e.inventory.List(ctx, dto.ListRequest{Query: "777"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Uno", out[0].Name)
}

func TestInventoryUpdate_ReemplazaTodosLosCampos(t *testing.T) {
	ctx := context.Background()
	e := nuevoEntorno()

	created, err := e.inventory.Create(ctx, "Ana", itemValido("Paracetamol", "2026-08-01"))
	require.NoError(t, err)

	out, err := e.inventory.Update(ctx, "Ana", created.ID, dto.UpdateInventoryItemRequest{
		Name: "Paracetamol 500mg", Category: "Analgésicos", Quantity: 2,
		ExpirationDate: "2026-09-15", Status: "Low Stock", Barcode: "770",
	})
	require.NoError(t, err)
	assert.Equal(t, "Paracetamol 500mg", out.Name)
	assert.Equal(t, "2026-09-15", out.ExpirationDate)
	assert.Equal(t, "770", out.Barcode)

	got, err := e.inventory.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Low Stock", got.Status)
}

func TestInventoryDelete_ExigeConfirmacion(t *testing.T) {
	ctx := context.Background()
	e := nuevoEntorno()

	created, err := e.inventory.Create(ctx, "Ana", itemValido("Paracetamol", "2026-08-01"))
	require.NoError(t, err)

	err = e.inventory.Delete(ctx, "Ana", created.ID, false)
	assert.ErrorIs(t, err, domain.ErrConfirmRequired)
	_, err = e.inventory.GetByID(ctx, created.ID)
	assert.NoError(t, err, "sin confirmar el ítem sigue ahí")

	require.NoError(t, e.inventory.Delete(ctx, "Ana", created.ID, true))
	_, err = e.inventory.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInventoryDelete_InexistenteEsNotFound(t *testing.T) {
	ctx := context.Background()
	e := nuevoEntorno()

	err := e.inventory.Delete(ctx, "Ana", "no-existe", true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInventoryUpdate_FallaDePersistenciaSaleDelFormulario(t *testing.T) {
	ctx := context.Background()
	e := nuevoEntorno()

	// Valores válidos para las reglas: el envío despacha y es la
	// persistencia la que falla (el id no existe).
	in := dto.UpdateInventoryItemRequest{
		Name: "Paracetamol", Category: "Analgésicos", Quantity: 5,
		ExpirationDate: "2026-08-01", Status: "In Stock",
	}
	_, err := e.inventory.Update(ctx, "Ana", "no-existe", in)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	rows, err := e.inventory.List(ctx, dto.ListRequest{})
	require.NoError(t, err)
	assert.Empty(t, rows, "la falla de persistencia no deja rastro en el store")
}

func TestInventoryScan_SinHardware(t *testing.T) {
	ctx := context.Background()
	e := nuevoEntorno()

	out := e.inventory.Scan(ctx)
	assert.Equal(t, "unavailable", out.Outcome)
	assert.Empty(t, out.Barcode)
}

func TestInventoryScan_ConCodigoFijo(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore()
	activity := usecase.NewActivityUseCase(records.NewActivityAdapter(store, nil), logger.Nop(), "es")
	uc := usecase.NewInventoryUseCase(records.NewInventoryAdapter(store, nil), activity, scanner.Fixed{Code: "7701234567890"}, "es")

	out := uc.Scan(ctx)
	assert.Equal(t, "granted", out.Outcome)
	assert.Equal(t, "7701234567890", out.Barcode)
}
