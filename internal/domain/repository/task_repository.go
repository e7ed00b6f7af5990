package repository

import (
	"context"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// TaskRepository puerto de persistencia para Task.
type TaskRepository interface {
	List(ctx context.Context) ([]entity.Task, error)
	GetByID(ctx context.Context, id string) (*entity.Task, error)
	Create(ctx context.Context, task *entity.Task) error
	Update(ctx context.Context, task *entity.Task) error
	Delete(ctx context.Context, id string) error
}
