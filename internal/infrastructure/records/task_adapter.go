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

var _ repository.TaskRepository = (*TaskAdapter)(nil)

// TaskAdapter implementa TaskRepository sobre la colección "tasks".
type TaskAdapter struct {
	base
}

// NewTaskAdapter construye el adaptador. m puede ser nil (tests).
func NewTaskAdapter(store docstore.Store, m *metrics.Metrics) *TaskAdapter {
	return &TaskAdapter{base{col: store.Collection(docstore.ColTasks), name: docstore.ColTasks, m: m}}
}

// List devuelve todas las tareas.
func (a *TaskAdapter) List(ctx context.Context) (tasks []entity.Task, err error) {
	defer func() { a.observe("list", err) }()
	recs, err := a.col.List(ctx)
	if err != nil {
		return nil, err
	}
	tasks = make([]entity.Task, 0, len(recs))
	for _, rec := range recs {
		task, derr := decodeTask(rec)
		if derr != nil {
			return nil, derr
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// GetByID devuelve la tarea con ese id o domain.ErrNotFound.
func (a *TaskAdapter) GetByID(ctx context.Context, id string) (task *entity.Task, err error) {
	defer func() { a.observe("get", err) }()
	rec, err := a.col.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	decoded, err := decodeTask(rec)
	if err != nil {
		return nil, err
	}
	return &decoded, nil
}

// Create persiste la tarea y escribe en ella el id asignado.
func (a *TaskAdapter) Create(ctx context.Context, task *entity.Task) (err error) {
	defer func() { a.observe("create", err) }()
	stored, err := a.col.Create(ctx, encodeTask(*task))
	if err != nil {
		return err
	}
	task.ID = stored.ID()
	return nil
}

// Update reemplaza el documento completo salvo el id.
func (a *TaskAdapter) Update(ctx context.Context, task *entity.Task) (err error) {
	defer func() { a.observe("update", err) }()
	return a.col.Update(ctx, task.ID, encodeTask(*task))
}

// Delete elimina la tarea por id.
func (a *TaskAdapter) Delete(ctx context.Context, id string) (err error) {
	defer func() { a.observe("delete", err) }()
	return a.col.Delete(ctx, id)
}

func encodeTask(task entity.Task) docstore.Record {
	rec := docstore.Record{
		"title":    task.Title,
		"dueDate":  encodeDate(task.DueDate),
		"priority": string(task.Priority),
		"status":   string(task.Status),
	}
	putOptional(rec, "description", task.Description)
	putOptional(rec, "assignedTo", task.AssignedTo)
	return rec
}

func decodeTask(rec docstore.Record) (entity.Task, error) {
	due, err := decodeDate(rec["dueDate"])
	if err != nil {
		return entity.Task{}, err
	}
	priority := entity.Priority(getString(rec, "priority"))
	if !priority.Valid() {
		return entity.Task{}, fmt.Errorf("priority %q fuera del conjunto: %w", priority, domain.ErrMalformed)
	}
	status := entity.TaskStatus(getString(rec, "status"))
	if !status.Valid() {
		return entity.Task{}, fmt.Errorf("status %q fuera del conjunto: %w", status, domain.ErrMalformed)
	}
	return entity.Task{
		ID:          rec.ID(),
		Title:       getString(rec, "title"),
		Description: getString(rec, "description"),
		DueDate:     due,
		Priority:    priority,
		Status:      status,
		AssignedTo:  getString(rec, "assignedTo"),
	}, nil
}
