package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
)

// InventoryHandler maneja el CRUD del inventario.
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
	actorResolver
}

// NewInventoryHandler construye el handler de inventario.
func NewInventoryHandler(uc *usecase.InventoryUseCase, actors actorResolver) *InventoryHandler {
	return &InventoryHandler{uc: uc, actorResolver: actors}
}

// List godoc
// @Summary      Listar inventario
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        q     query  string  false  "búsqueda por subcadena"
// @Param        sort  query  string  false  "columna de orden"
// @Param        dir   query  string  false  "asc|desc"
// @Success      200  {array}  dto.InventoryItemResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
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
// @Summary      Obtener ítem
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "id del ítem"
// @Success      200  {object}  dto.InventoryItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear ítem
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateInventoryItemRequest  true  "ítem"
// @Success      201   {object}  dto.InventoryItemResponse
// @Failure      400   {object}  ValidationErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryItemRequest
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
// @Summary      Actualizar ítem
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "id del ítem"
// @Param        body  body  dto.UpdateInventoryItemRequest  true  "ítem completo"
// @Success      200   {object}  dto.InventoryItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInventoryItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), h.actor(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar ítem
// @Tags         inventory
// @Security     BearerAuth
// @Param        id       path   string  true   "id del ítem"
// @Param        confirm  query  bool    true   "debe ser true"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	confirmed := c.QueryBool("confirm")
	if err := h.uc.Delete(c.Context(), h.actor(c), c.Params("id"), confirmed); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Scan godoc
// @Summary      Escanear código de barras
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ScanResponse
// @Router       /api/inventory/scan [post]
func (h *InventoryHandler) Scan(c *fiber.Ctx) error {
	return c.JSON(h.uc.Scan(c.Context()))
}
