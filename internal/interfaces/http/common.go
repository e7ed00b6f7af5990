package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/auth"
	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/form"
	"github.com/jhoicas/Farmacia-api/internal/domain"
)

// ValidationErrorResponse cuerpo de error de validación, con el detalle
// por campo para que el cliente lo pinte junto a cada uno.
type ValidationErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  []form.FieldError `json:"fields"`
}

// respondError traduce los errores clasificados a HTTP. El error crudo
// del store nunca llega aquí: los adapters ya lo clasificaron.
func respondError(c *fiber.Ctx, err error) error {
	var errs form.Errors
	if errors.As(err, &errs) {
		return c.Status(fiber.StatusBadRequest).JSON(ValidationErrorResponse{
			Code:    "VALIDATION",
			Message: "hay campos inválidos",
			Fields:  errs,
		})
	}
	switch {
	case errors.Is(err, domain.ErrConfirmRequired):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CONFIRM_REQUIRED", Message: "el borrado requiere confirm=true"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	case domain.IsNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "recurso duplicado"})
	case errors.Is(err, domain.ErrSubmitInFlight):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SUBMIT_IN_FLIGHT", Message: "hay una operación en curso, intente de nuevo"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden), errors.Is(err, domain.ErrPermissionDenied):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	case errors.Is(err, domain.ErrUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "STORE_UNAVAILABLE", Message: "el almacenamiento no está disponible, intente más tarde"})
	case errors.Is(err, domain.ErrMalformed):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORE_MALFORMED", Message: "documento malformado en el almacenamiento"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// actorResolver resuelve el nombre visible del usuario del token para
// la bitácora de actividad. Si el perfil no se puede leer se usa el id,
// que siempre está en el token.
type actorResolver struct {
	auth *auth.AuthUseCase
}

func (r actorResolver) actor(c *fiber.Ctx) string {
	id := GetUserID(c)
	if r.auth == nil || id == "" {
		return id
	}
	if u, err := r.auth.CurrentUser(c.Context(), id); err == nil && u.DisplayName != "" {
		return u.DisplayName
	}
	return id
}
