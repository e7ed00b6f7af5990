package repository

import (
	"context"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// ActivityRepository puerto de persistencia para ActivityLog (solo-agregar).
type ActivityRepository interface {
	List(ctx context.Context) ([]entity.ActivityLog, error)
	Create(ctx context.Context, log *entity.ActivityLog) error
}
