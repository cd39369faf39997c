package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen/internal/application/auth"
	"github.com/jhoicas/almacen/internal/application/dto"
	"github.com/jhoicas/almacen/internal/domain/entity"
	"github.com/jhoicas/almacen/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/almacen/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/almacen/pkg/jwt"
)

const testUserID = "00000000-0000-0000-0000-000000000001"

// buildGateApp aplicación mínima con el middleware de sesión y un handler que expone la identidad.
// El usuario "ana" existe en el store; los tokens de otros IDs no tienen usuario detrás.
func buildGateApp(t *testing.T) *fiber.App {
	t.Helper()
	users := memory.New().Users()
	require.NoError(t, users.Create(context.Background(), &entity.User{
		ID: testUserID, Username: "ana", PasswordHash: "-", Role: entity.RoleOperator, CreatedAt: time.Now().UTC(),
	}))
	authUC := auth.NewAuthUseCase(users, auth.SessionConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "almacen-test"})
	app := fiber.New()
	handler := func(c *fiber.Ctx) error {
		p := auth.PrincipalFrom(c.UserContext())
		return c.JSON(fiber.Map{
			"user_id":  apphttp.GetUserID(c),
			"username": apphttp.GetUsername(c),
			"role":     apphttp.GetRole(c),
			"ctx_user": p.UserID,
		})
	}
	app.Get("/page", apphttp.AuthMiddleware(authUC), handler)
	app.Get("/api/data", apphttp.AuthMiddleware(authUC), handler)
	return app
}

func token(t *testing.T, secret string, expMinutes int) string {
	t.Helper()
	tok, err := pkgjwt.Generate(secret, testUserID, "ana", entity.RoleOperator, "almacen-test", expMinutes)
	require.NoError(t, err)
	return tok
}

func TestAuthMiddleware_PaginaSinSesionRedirigeALogin(t *testing.T) {
	resp, err := buildGateApp(t).Test(httptest.NewRequest(http.MethodGet, "/page", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestAuthMiddleware_APISinSesionResponde401(t *testing.T) {
	resp, err := buildGateApp(t).Test(httptest.NewRequest(http.MethodGet, "/api/data", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body dto.ErrorResponse
	decodeJSON(t, resp, &body)
	assert.Equal(t, "UNAUTHORIZED", body.Code)
}

func TestAuthMiddleware_CookieValida(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/page", nil)
	req.AddCookie(&http.Cookie{Name: apphttp.SessionCookie, Value: token(t, testSecret, 60)})
	resp, err := buildGateApp(t).Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeJSON(t, resp, &body)
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "ana", body["username"])
	assert.Equal(t, entity.RoleOperator, body["role"])
	assert.Equal(t, testUserID, body["ctx_user"])
}

func TestAuthMiddleware_BearerValido(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/data", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, testSecret, 60))
	resp, err := buildGateApp(t).Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	cases := map[string]string{
		"expirado":         "Bearer " + token(t, testSecret, -1),
		"otro secret":      "Bearer " + token(t, "otro-secret", 60),
		"sin prefijo":      token(t, testSecret, 60),
		"basura":           "Bearer no-es-un-jwt",
		"esquema distinto": "Basic dXNlcjpwYXNz",
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/data", nil)
			req.Header.Set("Authorization", header)
			resp, err := buildGateApp(t).Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestAuthMiddleware_UsuarioEliminadoNoAutentica(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "00000000-0000-0000-0000-0000000000ff", "borrado", entity.RoleAdmin, "almacen-test", 60)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/page", nil)
	req.AddCookie(&http.Cookie{Name: apphttp.SessionCookie, Value: tok})
	resp, err := buildGateApp(t).Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestAuthMiddleware_CookieInvalidaUsaBearer(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/data", nil)
	req.AddCookie(&http.Cookie{Name: apphttp.SessionCookie, Value: token(t, "secret-viejo", 60)})
	req.Header.Set("Authorization", "Bearer "+token(t, testSecret, 60))
	resp, err := buildGateApp(t).Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeJSON(t, resp, &body)
	assert.Equal(t, testUserID, body["user_id"])
}
