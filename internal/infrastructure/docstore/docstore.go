// Package docstore define el puerto hacia el almacén de documentos remoto:
// colecciones nombradas de registros planos clave-valor, con operaciones
// list/get/create/update/delete. Toda falla sale clasificada con los
// centinelas de domain (ErrNotFound, ErrPermissionDenied, ErrUnavailable,
// ErrMalformed, ErrStoreUnknown) — nunca el error crudo del driver.
package docstore

import "context"

// IDField clave reservada del identificador dentro de un Record.
const IDField = "id"

// Record documento plano clave-valor tal como viaja hacia/desde el store.
// Los valores escalares son string, float64 (números JSON), bool o
// map[string]any para campos abiertos.
type Record map[string]any

// ID devuelve el identificador del registro ("" si no tiene).
func (r Record) ID() string {
	s, _ := r[IDField].(string)
	return s
}

// Clone copia superficial del registro (los mapas anidados se copian un nivel).
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		if m, ok := v.(map[string]any); ok {
			mc := make(map[string]any, len(m))
			for mk, mv := range m {
				mc[mk] = mv
			}
			out[k] = mc
			continue
		}
		out[k] = v
	}
	return out
}

// Collection operaciones sobre una colección de documentos.
type Collection interface {
	// List devuelve todos los documentos de la colección.
	List(ctx context.Context) ([]Record, error)
	// Get devuelve el documento con ese id, o domain.ErrNotFound.
	Get(ctx context.Context, id string) (Record, error)
	// Create persiste un documento sin id y devuelve la copia con el id asignado.
	Create(ctx context.Context, rec Record) (Record, error)
	// Update reemplaza por completo el documento con ese id.
	Update(ctx context.Context, id string, rec Record) error
	// Delete elimina el documento con ese id.
	Delete(ctx context.Context, id string) error
}

// Store almacén de documentos con colecciones nombradas.
type Store interface {
	Collection(name string) Collection
	Close()
}

// Nombres de colección de la aplicación.
const (
	ColInventory = "inventory"
	ColEmployees = "employees"
	ColTasks     = "tasks"
	ColActivity  = "activityLogs"
	ColUsers     = "users"
)
