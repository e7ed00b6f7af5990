package docstore

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/Farmacia-api/internal/domain"
)

// MemoryStore implementación en memoria del Store, para tests y desarrollo
// sin base de datos. Las colecciones se crean al primer acceso.
type MemoryStore struct {
	mu   sync.RWMutex
	cols map[string]map[string]Record
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore construye el store en memoria.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{cols: make(map[string]map[string]Record)}
}

// Collection devuelve el acceso a la colección indicada.
func (s *MemoryStore) Collection(name string) Collection {
	return &memoryCollection{store: s, name: name}
}

// Close no tiene recursos que liberar.
func (s *MemoryStore) Close() {}

// docs requiere mu.Lock: materializa la colección si no existe.
func (s *MemoryStore) docs(name string) map[string]Record {
	if _, ok := s.cols[name]; !ok {
		s.cols[name] = make(map[string]Record)
	}
	return s.cols[name]
}

// peek requiere al menos mu.RLock: nunca escribe el mapa de colecciones.
func (s *MemoryStore) peek(name string) map[string]Record {
	return s.cols[name]
}

type memoryCollection struct {
	store *MemoryStore
	name  string
}

func (c *memoryCollection) List(_ context.Context) ([]Record, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()
	docs := c.store.peek(c.name)
	out := make([]Record, 0, len(docs))
	for _, rec := range docs {
		out = append(out, rec.Clone())
	}
	// Orden determinista por id para que los tests no dependan del mapa.
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

func (c *memoryCollection) Get(_ context.Context, id string) (Record, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()
	rec, ok := c.store.peek(c.name)[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return rec.Clone(), nil
}

func (c *memoryCollection) Create(_ context.Context, rec Record) (Record, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	stored := rec.Clone()
	stored[IDField] = uuid.New().String()
	c.store.docs(c.name)[stored.ID()] = stored
	return stored.Clone(), nil
}

func (c *memoryCollection) Update(_ context.Context, id string, rec Record) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	docs := c.store.docs(c.name)
	if _, ok := docs[id]; !ok {
		return domain.ErrNotFound
	}
	stored := rec.Clone()
	stored[IDField] = id
	docs[id] = stored
	return nil
}

func (c *memoryCollection) Delete(_ context.Context, id string) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	docs := c.store.docs(c.name)
	if _, ok := docs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(docs, id)
	return nil
}
