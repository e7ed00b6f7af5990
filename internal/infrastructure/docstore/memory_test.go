package docstore_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/docstore"
)

func TestMemoryStore_ListSobreColeccionInexistenteQuedaVacia(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore()

	rows, err := store.Collection("inventory").List(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)

	_, err = store.Collection("inventory").Get(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemoryStore_LecturasConcurrentesConEscrituras(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore()

	// Lectores y escritores sobre colecciones aún no materializadas;
	// las lecturas no deben crear la colección bajo el candado de lectura.
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = store.Collection("tasks").List(ctx)
			_, _ = store.Collection("employees").Get(ctx, "x")
		}()
		go func() {
			defer wg.Done()
			_, _ = store.Collection("tasks").Create(ctx, docstore.Record{"title": "Revisar neveras"})
		}()
	}
	wg.Wait()

	rows, err := store.Collection("tasks").List(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 50)
}
