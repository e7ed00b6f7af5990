package entity

import "time"

// Priority prioridad de una tarea. Variante cerrada.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Valid indica si el valor pertenece al conjunto cerrado de prioridades.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// BadgeVariant variante visual por prioridad. Switch exhaustivo.
func (p Priority) BadgeVariant() string {
	switch p {
	case PriorityHigh:
		return "destructive"
	case PriorityMedium:
		return "secondary"
	case PriorityLow:
		return "default"
	}
	return "outline"
}

// Rank orden natural para comparación (High primero). Switch exhaustivo.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return 3
}

// TaskStatus estado de una tarea. El flujo sugerido es
// Pending → In Progress → Completed, pero no es una máquina de estados
// estricta: el formulario de edición permite fijar cualquier estado.
type TaskStatus string

const (
	TaskPending    TaskStatus = "Pending"
	TaskInProgress TaskStatus = "In Progress"
	TaskCompleted  TaskStatus = "Completed"
)

// Valid indica si el valor pertenece al conjunto cerrado de estados.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted:
		return true
	}
	return false
}

// BadgeVariant variante visual por estado. Switch exhaustivo.
func (s TaskStatus) BadgeVariant() string {
	switch s {
	case TaskPending:
		return "outline"
	case TaskInProgress:
		return "secondary"
	case TaskCompleted:
		return "default"
	}
	return "outline"
}

// Task representa una tarea asignable del tablero de operaciones.
// AssignedTo es el nombre visible del empleado (referencia desnormalizada,
// no un id); vacío = sin asignar.
type Task struct {
	ID          string
	Title       string
	Description string // opcional
	DueDate     time.Time // precisión de día calendario
	Priority    Priority
	Status      TaskStatus
	AssignedTo  string // opcional
}
