// Package tableview implementa el motor genérico de listados tabulares:
// filtro por subcadena, orden estable por columna con colación según el
// locale configurado, y el ciclo de vida de la vista (envío en curso,
// confirmación de borrado, cierre).
package tableview

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Kind tipo de dato de una columna, determina cómo se compara al ordenar.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindDate
)

// Direction dirección de orden.
type Direction int

const (
	Asc Direction = iota
	Desc
)

// ParseDirection interpreta "asc"/"desc"; cualquier otro valor es Asc.
func ParseDirection(s string) Direction {
	if strings.EqualFold(s, "desc") {
		return Desc
	}
	return Asc
}

func (d Direction) String() string {
	if d == Desc {
		return "desc"
	}
	return "asc"
}

// Column describe una columna del listado. Los extractores devuelven el
// valor y si está presente: un segundo retorno false marca el valor
// como ausente y lo ordena antes que cualquier valor presente, sin
// importar la dirección.
type Column[T any] struct {
	Key        string
	Kind       Kind
	Searchable bool
	String     func(T) (string, bool)
	Number     func(T) (float64, bool)
	Date       func(T) (time.Time, bool)
}

// Schema describe un listado: identidad de fila, columnas y orden por
// defecto.
type Schema[T any] struct {
	ID          func(T) string
	Columns     []Column[T]
	DefaultSort string
	DefaultDir  Direction
}

func (s Schema[T]) column(key string) (Column[T], bool) {
	for _, c := range s.Columns {
		if c.Key == key {
			return c, true
		}
	}
	return Column[T]{}, false
}

// NewCollator construye el colador de cadenas para el locale dado.
// Loose ignora mayúsculas y diacríticos, que es lo que un listado de
// nombres en español necesita.
func NewCollator(locale string) *collate.Collator {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Spanish
	}
	return collate.New(tag, collate.Loose)
}

// Filter devuelve las filas cuyo texto en alguna columna buscable
// contiene query sin distinguir mayúsculas. Query vacío devuelve todas
// las filas en su orden original.
func Filter[T any](schema Schema[T], rows []T, query string) []T {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		out := make([]T, len(rows))
		copy(out, rows)
		return out
	}
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if matches(schema, row, query) {
			out = append(out, row)
		}
	}
	return out
}

func matches[T any](schema Schema[T], row T, query string) bool {
	for _, col := range schema.Columns {
		if !col.Searchable || col.String == nil {
			continue
		}
		if v, ok := col.String(row); ok && strings.Contains(strings.ToLower(v), query) {
			return true
		}
	}
	return false
}

// Sort ordena rows in place de forma estable por la columna key. Los
// valores ausentes van primero sin importar la dirección; entre valores
// presentes las cadenas se comparan con el colador, los números por
// valor y las fechas por instante. Una key desconocida deja el orden
// intacto.
func Sort[T any](schema Schema[T], cl *collate.Collator, rows []T, key string, dir Direction) {
	col, ok := schema.column(key)
	if !ok {
		return
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return less(col, cl, rows[i], rows[j], dir)
	})
}

func less[T any](col Column[T], cl *collate.Collator, a, b T, dir Direction) bool {
	cmp, aok, bok := compare(col, cl, a, b)
	// Ausencia se resuelve antes de aplicar la dirección: un valor
	// faltante siempre va primero, aun en descendente.
	if !aok || !bok {
		return !aok && bok
	}
	if dir == Desc {
		cmp = -cmp
	}
	return cmp < 0
}

// compare devuelve la comparación entre presentes y la presencia de
// cada lado. cmp solo tiene sentido cuando ambos están presentes.
func compare[T any](col Column[T], cl *collate.Collator, a, b T) (cmp int, aok, bok bool) {
	switch col.Kind {
	case KindNumber:
		av, aok := col.Number(a)
		bv, bok := col.Number(b)
		switch {
		case av < bv:
			return -1, aok, bok
		case av > bv:
			return 1, aok, bok
		}
		return 0, aok, bok
	case KindDate:
		av, aok := col.Date(a)
		bv, bok := col.Date(b)
		switch {
		case av.Before(bv):
			return -1, aok, bok
		case av.After(bv):
			return 1, aok, bok
		}
		return 0, aok, bok
	default:
		av, aok := col.String(a)
		bv, bok := col.String(b)
		return cl.CompareString(av, bv), aok, bok
	}
}

// Apply filtra y ordena en un solo paso para listados sin estado: el
// patrón de los handlers HTTP con parámetros q/sort/dir. Key vacía usa
// el orden por defecto del esquema.
func Apply[T any](schema Schema[T], cl *collate.Collator, rows []T, query, key string, dir Direction) []T {
	out := Filter(schema, rows, query)
	if key == "" {
		key = schema.DefaultSort
		dir = schema.DefaultDir
	}
	Sort(schema, cl, out, key, dir)
	return out
}
