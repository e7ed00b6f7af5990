package usecase

import (
	"context"
	"time"

	"golang.org/x/text/collate"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/form"
	"github.com/jhoicas/Farmacia-api/internal/application/tableview"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// TaskUseCase casos de uso de tareas del equipo.
type TaskUseCase struct {
	repo     repository.TaskRepository
	activity *ActivityUseCase
	schema   tableview.Schema[entity.Task]
	collator *collate.Collator
}

// NewTaskUseCase construye el caso de uso.
func NewTaskUseCase(repo repository.TaskRepository, activity *ActivityUseCase, locale string) *TaskUseCase {
	return &TaskUseCase{
		repo:     repo,
		activity: activity,
		schema:   taskSchema(),
		collator: tableview.NewCollator(locale),
	}
}

// taskSchema columnas del listado de tareas. La prioridad ordena por
// urgencia (High primero en ascendente), no alfabéticamente.
func taskSchema() tableview.Schema[entity.Task] {
	return tableview.Schema[entity.Task]{
		ID: func(t entity.Task) string { return t.ID },
		Columns: []tableview.Column[entity.Task]{
			{Key: "title", Kind: tableview.KindString, Searchable: true,
				String: func(t entity.Task) (string, bool) { return t.Title, true }},
			{Key: "description", Kind: tableview.KindString, Searchable: true,
				String: func(t entity.Task) (string, bool) { return t.Description, t.Description != "" }},
			{Key: "dueDate", Kind: tableview.KindDate,
				Date: func(t entity.Task) (time.Time, bool) { return t.DueDate, !t.DueDate.IsZero() }},
			{Key: "priority", Kind: tableview.KindNumber,
				Number: func(t entity.Task) (float64, bool) { return float64(t.Priority.Rank()), true }},
			{Key: "status", Kind: tableview.KindString, Searchable: true,
				String: func(t entity.Task) (string, bool) { return string(t.Status), true }},
			{Key: "assignedTo", Kind: tableview.KindString, Searchable: true,
				String: func(t entity.Task) (string, bool) { return t.AssignedTo, t.AssignedTo != "" }},
		},
		DefaultSort: "dueDate",
		DefaultDir:  tableview.Asc,
	}
}

// List devuelve las tareas filtradas por q y ordenadas por sort/dir.
// Sin sort explícito ordena por fecha límite ascendente.
func (uc *TaskUseCase) List(ctx context.Context, in dto.ListRequest) ([]dto.TaskResponse, error) {
	tasks, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	rows := tableview.Apply(uc.schema, uc.collator, tasks, in.Query, in.Sort, tableview.ParseDirection(in.Dir))
	out := make([]dto.TaskResponse, 0, len(rows))
	for _, t := range rows {
		out = append(out, toTaskResponse(t))
	}
	return out, nil
}

// GetByID obtiene una tarea por ID.
func (uc *TaskUseCase) GetByID(ctx context.Context, id string) (*dto.TaskResponse, error) {
	task, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toTaskResponse(*task)
	return &resp, nil
}

// Create valida y crea una tarea. Status vacío arranca en Pending.
func (uc *TaskUseCase) Create(ctx context.Context, actor string, in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	task := &entity.Task{}
	f := form.New(form.TaskRules(), taskValues(in.Title, in.DueDate, in.Priority, in.Status))
	err := f.Submit(ctx, func(ctx context.Context, _ form.Values) error {
		due, err := time.Parse(dateLayout, in.DueDate)
		if err != nil {
			return domain.ErrInvalidInput
		}
		status := entity.TaskStatus(in.Status)
		if in.Status == "" {
			status = entity.TaskPending
		}
		*task = entity.Task{
			Title:       in.Title,
			Description: in.Description,
			DueDate:     due,
			Priority:    entity.Priority(in.Priority),
			Status:      status,
			AssignedTo:  in.AssignedTo,
		}
		return uc.repo.Create(ctx, task)
	})
	if err != nil {
		return nil, err
	}
	uc.activity.Record(ctx, actor, "Tarea creada", map[string]any{
		"taskId": task.ID, "title": task.Title,
	})
	resp := toTaskResponse(*task)
	return &resp, nil
}

// Update reemplaza la tarea completa a través del ciclo del formulario.
func (uc *TaskUseCase) Update(ctx context.Context, actor, id string, in dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	var current *entity.Task
	f := form.New(form.TaskRules(), taskValues(in.Title, in.DueDate, in.Priority, in.Status))
	err := f.Submit(ctx, func(ctx context.Context, _ form.Values) error {
		var err error
		current, err = uc.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		due, err := time.Parse(dateLayout, in.DueDate)
		if err != nil {
			return domain.ErrInvalidInput
		}
		// Status en blanco cae a Pending, igual que en Create: el store
		// solo debe recibir valores del conjunto cerrado.
		status := entity.TaskStatus(in.Status)
		if in.Status == "" {
			status = entity.TaskPending
		}
		current.Title = in.Title
		current.Description = in.Description
		current.DueDate = due
		current.Priority = entity.Priority(in.Priority)
		current.Status = status
		current.AssignedTo = in.AssignedTo
		return uc.repo.Update(ctx, current)
	})
	if err != nil {
		return nil, err
	}
	uc.activity.Record(ctx, actor, "Tarea actualizada", map[string]any{
		"taskId": current.ID, "title": current.Title,
	})
	resp := toTaskResponse(*current)
	return &resp, nil
}

// ChangeStatus mueve la tarea a cualquier estado válido, sin máquina
// de transiciones: Completed puede volver a Pending.
func (uc *TaskUseCase) ChangeStatus(ctx context.Context, actor, id, status string) (*dto.TaskResponse, error) {
	next := entity.TaskStatus(status)
	if !next.Valid() {
		return nil, domain.ErrInvalidInput
	}
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	current.Status = next
	if err := uc.repo.Update(ctx, current); err != nil {
		return nil, err
	}
	uc.activity.Record(ctx, actor, "Estado de tarea cambiado", map[string]any{
		"taskId": current.ID, "title": current.Title, "status": status,
	})
	resp := toTaskResponse(*current)
	return &resp, nil
}

// Delete elimina una tarea. Exige confirmación explícita.
func (uc *TaskUseCase) Delete(ctx context.Context, actor, id string, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmRequired
	}
	task, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.activity.Record(ctx, actor, "Tarea eliminada", map[string]any{
		"taskId": id, "title": task.Title,
	})
	return nil
}

func taskValues(title, dueDate, priority, status string) form.Values {
	return form.Values{
		"title":    title,
		"dueDate":  dueDate,
		"priority": priority,
		"status":   status,
	}
}

func toTaskResponse(t entity.Task) dto.TaskResponse {
	return dto.TaskResponse{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		DueDate:         t.DueDate.Format(dateLayout),
		Priority:        string(t.Priority),
		PriorityVariant: t.Priority.BadgeVariant(),
		Status:          string(t.Status),
		StatusVariant:   t.Status.BadgeVariant(),
		AssignedTo:      t.AssignedTo,
	}
}
