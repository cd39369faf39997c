package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen/internal/application/auth"
	appinventory "github.com/jhoicas/almacen/internal/application/inventory"
	"github.com/jhoicas/almacen/internal/application/usecase"
	"github.com/jhoicas/almacen/internal/infrastructure/memory"
	"github.com/jhoicas/almacen/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/almacen/internal/interfaces/http"
	"github.com/jhoicas/almacen/pkg/logger"
)

const (
	testSecret   = "test-secret-key-for-unit-tests"
	testAdminPwd = "admin123"
)

type testApp struct {
	app    *fiber.App
	store  *memory.Store
	authUC *auth.AuthUseCase
}

// newTestApp arma la aplicación completa sobre el store en memoria.
func newTestApp(t *testing.T) *testApp {
	t.Helper()
	store := memory.New()
	authUC := auth.NewAuthUseCase(store.Users(), auth.SessionConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "almacen-test"})
	itemUC := usecase.NewItemUseCase(store.Items())

	app := fiber.New(apphttp.NewFiberConfig("almacen-test"))
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:           authUC,
		ItemUC:           itemUC,
		MovementUC:       usecase.NewMovementUseCase(store.Movements()),
		DashboardUC:      usecase.NewDashboardUseCase(store.Items(), store.Movements()),
		RegisterMovement: appinventory.NewRegisterMovementUseCase(store.TxRunner(), store.Items()),
		Summary:          appinventory.NewSummaryUseCase(store.Inventory(), pdf.NewStockSheetGenerator("Almacén")),
		Cookie:           apphttp.CookieConfig{ExpMinutes: 60},
		AdminPassword:    testAdminPwd,
		Logger:           logger.Nop(),
	})
	return &testApp{app: app, store: store, authUC: authUC}
}

func (ta *testApp) do(t *testing.T, req *http.Request, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (ta *testApp) get(t *testing.T, path string, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	return ta.do(t, httptest.NewRequest(http.MethodGet, path, nil), cookies...)
}

func (ta *testApp) postForm(t *testing.T, path string, form url.Values, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)
	return ta.do(t, req, cookies...)
}

// loginAdmin crea el admin y devuelve la cookie de sesión.
func (ta *testApp) loginAdmin(t *testing.T) *http.Cookie {
	t.Helper()
	ta.get(t, "/init_admin")
	resp := ta.postForm(t, "/login", url.Values{"username": {"admin"}, "password": {testAdminPwd}})
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	ck := findCookie(resp, apphttp.SessionCookie)
	require.NotNil(t, ck, "login debe fijar la cookie de sesión")
	return ck
}

func findCookie(resp *http.Response, name string) *http.Cookie {
	for _, ck := range resp.Cookies() {
		if ck.Name == name && ck.Value != "" {
			return ck
		}
	}
	return nil
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

func jsonReader(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}
