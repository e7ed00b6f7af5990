package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
)

// EmployeeHandler maneja el directorio de empleados (solo alta y listado).
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
	actorResolver
}

// NewEmployeeHandler construye el handler de empleados.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase, actors actorResolver) *EmployeeHandler {
	return &EmployeeHandler{uc: uc, actorResolver: actors}
}

// List godoc
// @Summary      Listar empleados
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        q     query  string  false  "búsqueda por subcadena"
// @Param        sort  query  string  false  "columna de orden"
// @Param        dir   query  string  false  "asc|desc"
// @Success      200  {array}  dto.EmployeeResponse
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	var in dto.ListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.List(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Agregar empleado
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateEmployeeRequest  true  "empleado"
// @Success      201   {object}  dto.EmployeeResponse
// @Failure      400   {object}  ValidationErrorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), h.actor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
