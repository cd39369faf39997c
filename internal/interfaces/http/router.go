package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen/internal/application/auth"
	"github.com/jhoicas/almacen/internal/application/inventory"
	"github.com/jhoicas/almacen/internal/application/usecase"
	"github.com/jhoicas/almacen/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	ItemUC           *usecase.ItemUseCase
	MovementUC       *usecase.MovementUseCase
	DashboardUC      *usecase.DashboardUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	Summary          *inventory.SummaryUseCase
	Cookie           CookieConfig
	AdminPassword    string
	Logger           *logger.Logger
}

// Router registra las páginas y la API JSON.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	requireSession := AuthMiddleware(deps.AuthUC)

	authHandler := NewAuthHandler(deps.AuthUC, deps.Cookie, deps.AdminPassword, log)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, log)
	itemHandler := NewItemHandler(deps.ItemUC, log)
	movementHandler := NewMovementHandler(deps.RegisterMovement, deps.MovementUC, deps.ItemUC, log)
	inventoryHandler := NewInventoryHandler(deps.Summary, log)

	// Público
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "time": time.Now().UTC()})
	})
	app.Get("/login", authHandler.LoginPage)
	app.Post("/login", authHandler.Login)
	app.Get("/logout", authHandler.Logout)
	app.Get("/init_admin", authHandler.InitAdmin)

	// Páginas (requieren sesión)
	app.Get("/", requireSession, dashboardHandler.Dashboard)
	app.Get("/items", requireSession, itemHandler.List)
	app.Get("/items/new", requireSession, itemHandler.NewForm)
	app.Post("/items/new", requireSession, itemHandler.Create)
	app.Get("/movements", requireSession, movementHandler.List)
	app.Get("/movements/new", requireSession, movementHandler.NewForm)
	app.Post("/movements/new", requireSession, movementHandler.Create)
	app.Get("/inventory", requireSession, inventoryHandler.Summary)
	app.Get("/inventory/pdf", requireSession, inventoryHandler.PDF)

	// API JSON
	api := app.Group("/api")
	api.Post("/auth/login", authHandler.APILogin)
	api.Get("/items", requireSession, itemHandler.APIList)
	api.Get("/movements", requireSession, movementHandler.APIList)
	api.Get("/inventory", requireSession, inventoryHandler.APISummary)
}
