package repository

import (
	"context"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// InventoryRepository define el puerto de persistencia para InventoryItem (DIP).
// Create asigna el ID en el ítem recibido; Update reemplaza todos los campos
// salvo el ID; las fallas llegan clasificadas (domain.ErrNotFound, etc.).
type InventoryRepository interface {
	List(ctx context.Context) ([]entity.InventoryItem, error)
	GetByID(ctx context.Context, id string) (*entity.InventoryItem, error)
	Create(ctx context.Context, item *entity.InventoryItem) error
	Update(ctx context.Context, item *entity.InventoryItem) error
	Delete(ctx context.Context, id string) error
}
