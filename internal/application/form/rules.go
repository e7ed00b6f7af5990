package form

import "github.com/jhoicas/Farmacia-api/internal/domain/entity"

// Conjuntos de reglas por entidad. Los nombres de campo coinciden con
// los del documento almacenado.

// InventoryRules reglas del formulario de ítem de inventario.
func InventoryRules() []FieldRules {
	return []FieldRules{
		{Field: "name", Rules: []Rule{MinLen(2)}},
		{Field: "category", Rules: []Rule{MinLen(2)}},
		{Field: "quantity", Rules: []Rule{NonNegativeInt()}},
		{Field: "expirationDate", Rules: []Rule{RequiredDate()}},
		{Field: "status", Rules: []Rule{OneOf(
			string(entity.StatusInStock),
			string(entity.StatusLowStock),
			string(entity.StatusOutOfStock),
		)}},
		// barcode: texto libre opcional, sin reglas.
	}
}

// EmployeeRules reglas del formulario de empleado.
func EmployeeRules() []FieldRules {
	return []FieldRules{
		{Field: "name", Rules: []Rule{MinLen(2)}},
		{Field: "role", Rules: []Rule{MinLen(2)}},
		{Field: "email", Rules: []Rule{Email()}},
	}
}

// TaskRules reglas del formulario de tarea. Asignado vacío significa
// sin asignar, no un error.
func TaskRules() []FieldRules {
	return []FieldRules{
		{Field: "title", Rules: []Rule{MinLen(3)}},
		{Field: "dueDate", Rules: []Rule{RequiredDate()}},
		{Field: "priority", Rules: []Rule{OneOf(
			string(entity.PriorityHigh),
			string(entity.PriorityMedium),
			string(entity.PriorityLow),
		)}},
		{Field: "status", Rules: []Rule{Optional(OneOf(
			string(entity.TaskPending),
			string(entity.TaskInProgress),
			string(entity.TaskCompleted),
		))}},
	}
}
