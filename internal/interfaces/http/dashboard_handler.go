package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
)

// DashboardHandler maneja el resumen de la pantalla principal.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler del tablero.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen operativo
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
