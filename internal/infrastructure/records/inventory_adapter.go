package records

import (
	"context"
	"fmt"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/docstore"
	"github.com/jhoicas/Farmacia-api/pkg/metrics"
)

var _ repository.InventoryRepository = (*InventoryAdapter)(nil)

// InventoryAdapter implementa el puerto InventoryRepository sobre la
// colección "inventory" del docstore.
type InventoryAdapter struct {
	base
}

// NewInventoryAdapter construye el adaptador. m puede ser nil (tests).
func NewInventoryAdapter(store docstore.Store, m *metrics.Metrics) *InventoryAdapter {
	return &InventoryAdapter{base{col: store.Collection(docstore.ColInventory), name: docstore.ColInventory, m: m}}
}

// List devuelve todos los ítems del inventario.
func (a *InventoryAdapter) List(ctx context.Context) (items []entity.InventoryItem, err error) {
	defer func() { a.observe("list", err) }()
	recs, err := a.col.List(ctx)
	if err != nil {
		return nil, err
	}
	items = make([]entity.InventoryItem, 0, len(recs))
	for _, rec := range recs {
		item, derr := decodeInventoryItem(rec)
		if derr != nil {
			return nil, derr
		}
		items = append(items, item)
	}
	return items, nil
}

// GetByID devuelve el ítem con ese id o domain.ErrNotFound.
func (a *InventoryAdapter) GetByID(ctx context.Context, id string) (item *entity.InventoryItem, err error) {
	defer func() { a.observe("get", err) }()
	rec, err := a.col.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	decoded, err := decodeInventoryItem(rec)
	if err != nil {
		return nil, err
	}
	return &decoded, nil
}

// Create persiste el ítem y escribe en él el id asignado por el store.
func (a *InventoryAdapter) Create(ctx context.Context, item *entity.InventoryItem) (err error) {
	defer func() { a.observe("create", err) }()
	stored, err := a.col.Create(ctx, encodeInventoryItem(*item))
	if err != nil {
		return err
	}
	item.ID = stored.ID()
	return nil
}

// Update reemplaza todos los campos del documento salvo el id.
func (a *InventoryAdapter) Update(ctx context.Context, item *entity.InventoryItem) (err error) {
	defer func() { a.observe("update", err) }()
	return a.col.Update(ctx, item.ID, encodeInventoryItem(*item))
}

// Delete elimina el documento por id.
func (a *InventoryAdapter) Delete(ctx context.Context, id string) (err error) {
	defer func() { a.observe("delete", err) }()
	return a.col.Delete(ctx, id)
}

func encodeInventoryItem(item entity.InventoryItem) docstore.Record {
	rec := docstore.Record{
		"name":           item.Name,
		"category":       item.Category,
		"quantity":       item.Quantity,
		"expirationDate": encodeDate(item.ExpirationDate),
		"status":         string(item.Status),
	}
	putOptional(rec, "barcode", item.Barcode)
	return rec
}

func decodeInventoryItem(rec docstore.Record) (entity.InventoryItem, error) {
	quantity, err := getInt(rec, "quantity")
	if err != nil {
		return entity.InventoryItem{}, err
	}
	expiration, err := decodeDate(rec["expirationDate"])
	if err != nil {
		return entity.InventoryItem{}, err
	}
	status := entity.ItemStatus(getString(rec, "status"))
	if !status.Valid() {
		return entity.InventoryItem{}, fmt.Errorf("status %q fuera del conjunto: %w", status, domain.ErrMalformed)
	}
	return entity.InventoryItem{
		ID:             rec.ID(),
		Name:           getString(rec, "name"),
		Category:       getString(rec, "category"),
		Quantity:       quantity,
		ExpirationDate: expiration,
		Status:         status,
		Barcode:        getString(rec, "barcode"),
	}, nil
}
