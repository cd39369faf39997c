package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen/internal/application/auth"
	"github.com/jhoicas/almacen/internal/application/dto"
	"github.com/jhoicas/almacen/internal/domain"
)

// SessionCookie nombre de la cookie con el token de sesión.
const SessionCookie = "session"

// Locals keys para la identidad de la sesión en Fiber.
const (
	LocalUserID    = "user_id"
	LocalUsername  = "username"
	LocalRole      = "role"
	localPrincipal = "principal"
)

// sessionParser lo implementa *auth.AuthUseCase.
type sessionParser interface {
	ParseSession(ctx context.Context, token string) (*auth.Principal, error)
}

// AuthMiddleware valida la sesión (cookie o Bearer Token) y carga la identidad en c.Locals
// y en el contexto de la request. Sin sesión válida las rutas /api responden 401 JSON y las
// páginas redirigen a /login.
func AuthMiddleware(sessions sessionParser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := resolveSession(c, sessions)
		if err != nil {
			if !errors.Is(err, domain.ErrUnauthorized) {
				return err
			}
			if isAPIRequest(c) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión inválida o expirada"})
			}
			return c.Redirect("/login", fiber.StatusFound)
		}
		c.Locals(LocalUserID, p.UserID)
		c.Locals(LocalUsername, p.Username)
		c.Locals(LocalRole, p.Role)
		c.Locals(localPrincipal, p)
		c.SetUserContext(auth.WithPrincipal(c.UserContext(), p))
		return c.Next()
	}
}

// resolveSession prueba la cookie y, si falta o no es válida, el header Bearer.
func resolveSession(c *fiber.Ctx, sessions sessionParser) (*auth.Principal, error) {
	err := domain.ErrUnauthorized
	for _, token := range []string{c.Cookies(SessionCookie), bearerToken(c.Get("Authorization"))} {
		if token == "" {
			continue
		}
		var p *auth.Principal
		p, err = sessions.ParseSession(c.UserContext(), token)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, domain.ErrUnauthorized) {
			return nil, err
		}
	}
	return nil, err
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func isAPIRequest(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Path(), "/api/")
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetUsername devuelve el username de la sesión.
func GetUsername(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUsername).(string)
	return s
}

// GetRole devuelve el rol de la sesión.
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}

// GetPrincipal devuelve la identidad completa, o nil fuera de una ruta protegida.
func GetPrincipal(c *fiber.Ctx) *auth.Principal {
	p, _ := c.Locals(localPrincipal).(*auth.Principal)
	return p
}
