package tableview

import (
	"sync"

	"golang.org/x/text/collate"

	"github.com/jhoicas/Farmacia-api/internal/domain"
)

// View mantiene el estado de un listado vivo: filas cargadas, filtro y
// orden actuales, y la compuerta de envío que serializa las mutaciones.
// Todas las operaciones son seguras para uso concurrente.
type View[T any] struct {
	mu       sync.Mutex
	schema   Schema[T]
	collator *collate.Collator

	rows    []T
	query   string
	sortKey string
	dir     Direction

	submitting bool
	closed     bool
}

// NewView crea la vista con el orden por defecto del esquema.
func NewView[T any](schema Schema[T], cl *collate.Collator) *View[T] {
	return &View[T]{
		schema:   schema,
		collator: cl,
		sortKey:  schema.DefaultSort,
		dir:      schema.DefaultDir,
	}
}

// Load reemplaza las filas y restaura el orden por defecto, como al
// recargar la pantalla.
func (v *View[T]) Load(rows []T) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return domain.ErrViewClosed
	}
	v.rows = make([]T, len(rows))
	copy(v.rows, rows)
	v.sortKey = v.schema.DefaultSort
	v.dir = v.schema.DefaultDir
	return nil
}

// SetQuery fija el texto de búsqueda.
func (v *View[T]) SetQuery(q string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return domain.ErrViewClosed
	}
	v.query = q
	return nil
}

// ToggleSort ordena por key. Repetir la misma columna invierte la
// dirección; una columna nueva arranca ascendente.
func (v *View[T]) ToggleSort(key string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return domain.ErrViewClosed
	}
	if v.sortKey == key {
		if v.dir == Asc {
			v.dir = Desc
		} else {
			v.dir = Asc
		}
	} else {
		v.sortKey = key
		v.dir = Asc
	}
	return nil
}

// SortState orden vigente.
func (v *View[T]) SortState() (key string, dir Direction) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.sortKey, v.dir
}

// Rows devuelve una copia de las filas visibles con el filtro y el
// orden vigentes aplicados.
func (v *View[T]) Rows() []T {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := Filter(v.schema, v.rows, v.query)
	Sort(v.schema, v.collator, out, v.sortKey, v.dir)
	return out
}

// BeginSubmit toma la compuerta de envío. Mientras esté tomada,
// cualquier otro envío sobre la vista falla con ErrSubmitInFlight.
func (v *View[T]) BeginSubmit() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return domain.ErrViewClosed
	}
	if v.submitting {
		return domain.ErrSubmitInFlight
	}
	v.submitting = true
	return nil
}

// EndSubmit libera la compuerta, haya terminado el envío bien o mal.
func (v *View[T]) EndSubmit() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.submitting = false
}

// Submitting indica si hay un envío en curso.
func (v *View[T]) Submitting() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.submitting
}

// Upsert inserta o reemplaza la fila con el mismo id. La posición final
// la decide el orden vigente, no el punto de inserción.
func (v *View[T]) Upsert(row T) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return domain.ErrViewClosed
	}
	id := v.schema.ID(row)
	for i := range v.rows {
		if v.schema.ID(v.rows[i]) == id {
			v.rows[i] = row
			return nil
		}
	}
	v.rows = append(v.rows, row)
	return nil
}

// Delete quita la fila id. Sin confirmación explícita no borra nada y
// devuelve ErrConfirmRequired.
func (v *View[T]) Delete(id string, confirmed bool) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return domain.ErrViewClosed
	}
	if !confirmed {
		return domain.ErrConfirmRequired
	}
	for i := range v.rows {
		if v.schema.ID(v.rows[i]) == id {
			v.rows = append(v.rows[:i], v.rows[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// Close marca la vista como cerrada. Toda operación posterior falla con
// ErrViewClosed; los resultados de envíos que lleguen tarde se
// descartan en el caller al ver ese error.
func (v *View[T]) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
}

// Closed indica si la vista fue cerrada.
func (v *View[T]) Closed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.closed
}
