package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
)

// ExpirationHandler maneja el rastreador de vencimientos.
type ExpirationHandler struct {
	uc *usecase.ExpirationUseCase
}

// NewExpirationHandler construye el handler de vencimientos.
func NewExpirationHandler(uc *usecase.ExpirationUseCase) *ExpirationHandler {
	return &ExpirationHandler{uc: uc}
}

// List godoc
// @Summary      Alertas de vencimiento
// @Tags         expirations
// @Produce      json
// @Security     BearerAuth
// @Param        window  query  string  false  "all|expired|7|30|90"  default(all)
// @Success      200  {object}  dto.ExpirationSummaryResponse
// @Router       /api/expirations [get]
func (h *ExpirationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("window", "all"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Reporte PDF de vencimientos
// @Tags         expirations
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        window  query  string  false  "all|expired|7|30|90"  default(all)
// @Success      200  {string}  string  "PDF"
// @Router       /api/expirations/report [get]
func (h *ExpirationHandler) Report(c *fiber.Ctx) error {
	raw, err := h.uc.Report(c.Context(), c.Query("window", "all"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="expiration_report.pdf"`)
	return c.Send(raw)
}
