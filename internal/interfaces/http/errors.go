package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen/internal/application/dto"
	"github.com/jhoicas/almacen/internal/domain"
	"github.com/jhoicas/almacen/pkg/logger"
)

// statusFor traduce errores de dominio a códigos HTTP.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

var errorCodes = map[int]string{
	fiber.StatusBadRequest:   "VALIDATION",
	fiber.StatusNotFound:     "NOT_FOUND",
	fiber.StatusUnauthorized: "UNAUTHORIZED",
	fiber.StatusForbidden:    "FORBIDDEN",
	fiber.StatusConflict:     "CONFLICT",
}

// jsonError responde dto.ErrorResponse. Los 500 se registran y no exponen el detalle.
func jsonError(c *fiber.Ctx, log *logger.Logger, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
		return c.Status(status).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: errorCodes[status], Message: err.Error()})
}

// renderInternal registra el error y muestra la página genérica de error.
func renderInternal(c *fiber.Ctx, log *logger.Logger, err error) error {
	log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
	return c.Status(fiber.StatusInternalServerError).Render("error", fiber.Map{
		"Title":   "Error",
		"User":    GetPrincipal(c),
		"Message": "Ocurrió un error inesperado. Intenta de nuevo.",
	}, layoutMain)
}
