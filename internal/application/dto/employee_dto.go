package dto

// CreateEmployeeRequest body para POST /api/employees.
type CreateEmployeeRequest struct {
	Name      string `json:"name" validate:"required,min=2"`
	Role      string `json:"role" validate:"required,min=2"`
	Email     string `json:"email" validate:"required,email"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// EmployeeResponse salida de un empleado. Avatar siempre trae una URL
// utilizable: la propia o un placeholder con las iniciales.
type EmployeeResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
	Initials string `json:"initials"`
}
