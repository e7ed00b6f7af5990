package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
)

// TaskHandler maneja las tareas del equipo.
type TaskHandler struct {
	uc *usecase.TaskUseCase
	actorResolver
}

// NewTaskHandler construye el handler de tareas.
func NewTaskHandler(uc *usecase.TaskUseCase, actors actorResolver) *TaskHandler {
	return &TaskHandler{uc: uc, actorResolver: actors}
}

// List godoc
// @Summary      Listar tareas
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        q     query  string  false  "búsqueda por subcadena"
// @Param        sort  query  string  false  "columna de orden"
// @Param        dir   query  string  false  "asc|desc"
// @Success      200  {array}  dto.TaskResponse
// @Router       /api/tasks [get]
func (h *TaskHandler) List(c *fiber.Ctx) error {
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

// GetByID godoc
// @Summary      Obtener tarea
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "id de la tarea"
// @Success      200  {object}  dto.TaskResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tasks/{id} [get]
func (h *TaskHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear tarea
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateTaskRequest  true  "tarea"
// @Success      201   {object}  dto.TaskResponse
// @Failure      400   {object}  ValidationErrorResponse
// @Router       /api/tasks [post]
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), h.actor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar tarea
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "id de la tarea"
// @Param        body  body  dto.UpdateTaskRequest  true  "tarea completa"
// @Success      200   {object}  dto.TaskResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tasks/{id} [put]
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), h.actor(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ChangeStatus godoc
// @Summary      Cambiar estado de la tarea
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "id de la tarea"
// @Param        body  body  dto.ChangeTaskStatusRequest  true  "estado nuevo"
// @Success      200   {object}  dto.TaskResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tasks/{id}/status [patch]
func (h *TaskHandler) ChangeStatus(c *fiber.Ctx) error {
	var in dto.ChangeTaskStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ChangeStatus(c.Context(), h.actor(c), c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar tarea
// @Tags         tasks
// @Security     BearerAuth
// @Param        id       path   string  true  "id de la tarea"
// @Param        confirm  query  bool    true  "debe ser true"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tasks/{id} [delete]
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	confirmed := c.QueryBool("confirm")
	if err := h.uc.Delete(c.Context(), h.actor(c), c.Params("id"), confirmed); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
