package dto

// ListRequest parámetros comunes de los listados tabulares.
type ListRequest struct {
	Query string `query:"q"`
	Sort  string `query:"sort"`
	Dir   string `query:"dir" validate:"omitempty,oneof=asc desc"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
