package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen/internal/application/auth"
	"github.com/jhoicas/almacen/internal/application/dto"
	"github.com/jhoicas/almacen/internal/domain"
	"github.com/jhoicas/almacen/pkg/logger"
)

const loginFailedMessage = "Usuario o contraseña incorrectos"

// CookieConfig opciones de la cookie de sesión.
type CookieConfig struct {
	Secure     bool
	ExpMinutes int
}

// AuthHandler maneja login, logout y el arranque del usuario admin.
type AuthHandler struct {
	uc            *auth.AuthUseCase
	cookie        CookieConfig
	adminPassword string
	log           *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, cookie CookieConfig, adminPassword string, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, cookie: cookie, adminPassword: adminPassword, log: log}
}

// LoginPage GET /login
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{
		"Title":    "Ingresar",
		"User":     nil,
		"Flash":    popFlash(c),
		"Error":    "",
		"Username": "",
	}, layoutMain)
}

// Login POST /login: crea la sesión y redirige al inicio. Si falla vuelve a mostrar el formulario.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	_ = c.BodyParser(&in)

	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		if !errors.Is(err, domain.ErrUnauthorized) {
			return renderInternal(c, h.log, err)
		}
		h.log.Warn().Str("username", in.Username).Str("ip", c.IP()).Msg("login fallido")
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{
			"Title":    "Ingresar",
			"User":     nil,
			"Flash":    "",
			"Error":    loginFailedMessage,
			"Username": in.Username,
		}, layoutMain)
	}
	h.setSessionCookie(c, out.Token)
	setFlash(c, "Bienvenido, "+out.User.Username)
	return c.Redirect("/", fiber.StatusFound)
}

// Logout GET /logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		Expires:  time.Unix(0, 0),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect("/login", fiber.StatusFound)
}

// InitAdmin GET /init_admin: crea el usuario admin si no existe. Responde texto plano.
func (h *AuthHandler) InitAdmin(c *fiber.Ctx) error {
	_, err := h.uc.BootstrapAdmin(c.UserContext(), h.adminPassword)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return c.SendString("Admin ya existe")
		}
		h.log.Error().Err(err).Msg("init_admin")
		return c.Status(fiber.StatusInternalServerError).SendString("No se pudo crear el usuario admin")
	}
	h.log.Info().Msg("usuario admin creado")
	return c.SendString("Usuario admin creado. Usuario: admin")
}

// APILogin godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) APILogin(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validationMessage(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
		}
		return jsonError(c, h.log, err)
	}
	return c.JSON(out)
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		Expires:  time.Now().Add(time.Duration(h.cookie.ExpMinutes) * time.Minute),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
