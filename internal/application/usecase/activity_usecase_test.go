package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
)

func TestActivityList_MasRecientePrimero(t *testing.T) {
	ctx := context.Background()
	e := nuevoEntorno()

	e.activity.Record(ctx, "Ana", "Primera acción", nil)
	e.activity.Record(ctx, "Beto", "Segunda acción", nil)
	e.activity.Record(ctx, "Ana", "Tercera acción", nil)

	out, err := e.activity.List(ctx, dto.ListRequest{}, "")
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "Tercera acción", out[0].Action)
	assert.Equal(t, "Primera acción", out[2].Action)
}

func TestActivityList_FiltraPorUsuarioYAccion(t *testing.T) {
	ctx := context.Background()
	e := nuevoEntorno()

	e.activity.Record(ctx, "Ana", "Ítem de inventario creado", nil)
	e.activity.Record(ctx, "Beto", "Tarea creada", nil)

	out, err := e.activity.List(ctx, dto.ListRequest{Query: "beto"}, "")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Beto", out[0].User)

	out, err = e.activity.List(ctx, dto.ListRequest{Query: "inventario"}, "")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Ana", out[0].User)
}

func TestActivityExportCSV_ContratoExacto(t *testing.T) {
	ctx := context.Background()
	e := nuevoEntorno()

	e.activity.Record(ctx, `Ana "La Jefa"`, "Ítem creado", map[string]any{"name": "Suero"})

	raw, err := e.activity.ExportCSV(ctx)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(raw), "\r\n"), "\r\n")
	require.Len(t, lines, 2)

	assert.Equal(t, `"id","user","action","timestamp","details"`, lines[0],
		"encabezado con los nombres de campo, todos entre comillas")

	// Comillas internas dobladas, detalles como JSON embebido.
	assert.Contains(t, lines[1], `"Ana ""La Jefa"""`)
	assert.Contains(t, lines[1], `"{""name"":""Suero""}"`)
}

func TestActivityExportCSV_SinDetallesVaVacio(t *testing.T) {
	ctx := context.Background()
	e := nuevoEntorno()

	e.activity.Record(ctx, "Ana", "Sesión cerrada", nil)

	raw, err := e.activity.ExportCSV(ctx)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(raw), "\r\n"), "\r\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[1], `,""`), "details nulo sale como cadena vacía")
}

func TestActivityExportCSV_Vacio(t *testing.T) {
	ctx := context.Background()
	e := nuevoEntorno()

	raw, err := e.activity.ExportCSV(ctx)
	require.NoError(t, err)
	assert.Equal(t, "\"id\",\"user\",\"action\",\"timestamp\",\"details\"\r\n", string(raw),
		"sin entradas queda solo el encabezado")
}

func TestActivityFileName(t *testing.T) {
	assert.Equal(t, "activity_logs.csv", usecase.ActivityFileName)
}
