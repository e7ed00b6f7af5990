package dto

// CreateTaskRequest body para POST /api/tasks.
type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required,min=3"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"dueDate" validate:"required"`
	Priority    string `json:"priority" validate:"required,oneof=High Medium Low"`
	Status      string `json:"status,omitempty"`
	AssignedTo  string `json:"assignedTo,omitempty"`
}

// UpdateTaskRequest body para PUT /api/tasks/:id.
type UpdateTaskRequest struct {
	Title       string `json:"title" validate:"required,min=3"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"dueDate" validate:"required"`
	Priority    string `json:"priority" validate:"required"`
	Status      string `json:"status" validate:"required"`
	AssignedTo  string `json:"assignedTo,omitempty"`
}

// ChangeTaskStatusRequest body para PATCH /api/tasks/:id/status.
type ChangeTaskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending 'In Progress' Completed"`
}

// TaskResponse salida de una tarea.
type TaskResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	DueDate         string `json:"dueDate"`
	Priority        string `json:"priority"`
	PriorityVariant string `json:"priorityVariant"`
	Status          string `json:"status"`
	StatusVariant   string `json:"statusVariant"`
	AssignedTo      string `json:"assignedTo,omitempty"`
}
