package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// NewFiberConfig configuración común del servidor y de los tests.
// Immutable es obligatorio: el store en memoria retiene los strings de BodyParser y sin copia
// apuntarían al buffer que fasthttp reutiliza en la siguiente request.
func NewFiberConfig(appName string) fiber.Config {
	return fiber.Config{
		AppName:      appName,
		Immutable:    true,
		Views:        NewViewEngine(),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	}
}
