package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
)

// ActivityHandler maneja la bitácora de actividad.
type ActivityHandler struct {
	uc *usecase.ActivityUseCase
}

// NewActivityHandler construye el handler de bitácora.
func NewActivityHandler(uc *usecase.ActivityUseCase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

// List godoc
// @Summary      Listar bitácora
// @Tags         activity
// @Produce      json
// @Security     BearerAuth
// @Param        q     query  string  false  "búsqueda por usuario o acción"
// @Param        date  query  string  false  "día calendario YYYY-MM-DD"
// @Success      200  {array}  dto.ActivityLogResponse
// @Router       /api/activity [get]
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	var in dto.ListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.List(c.Context(), in, c.Query("date"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar bitácora a CSV
// @Tags         activity
// @Produce      text/csv
// @Security     BearerAuth
// @Success      200  {string}  string  "archivo activity_logs.csv"
// @Router       /api/activity/export [get]
func (h *ActivityHandler) Export(c *fiber.Ctx) error {
	raw, err := h.uc.ExportCSV(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+usecase.ActivityFileName+`"`)
	return c.Send(raw)
}
