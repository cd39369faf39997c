package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/almacen/internal/application/auth"
	"github.com/jhoicas/almacen/internal/application/inventory"
	"github.com/jhoicas/almacen/internal/application/usecase"
	infrapdf "github.com/jhoicas/almacen/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/almacen/internal/interfaces/http"
	"github.com/jhoicas/almacen/pkg/config"
	"github.com/jhoicas/almacen/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.DB.Driver).
		Msg("iniciando aplicación")

	if cfg.Session.UsesInsecureSecret() {
		log.Warn().Msg("SECRET_KEY no configurado: las sesiones se firman con la clave por defecto")
	}

	ctx := context.Background()
	store, err := openStorage(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer store.close()

	authUC := auth.NewAuthUseCase(store.users, auth.SessionConfig{
		Secret:     cfg.Session.Secret,
		ExpMinutes: cfg.Session.Expiration,
		Issuer:     cfg.Session.Issuer,
	})
	itemUC := usecase.NewItemUseCase(store.items)
	movementUC := usecase.NewMovementUseCase(store.movements)
	dashboardUC := usecase.NewDashboardUseCase(store.items, store.movements)
	registerMovementUC := inventory.NewRegisterMovementUseCase(store.txRunner, store.items)

	// PDF: planilla de existencias
	stockSheet := infrapdf.NewStockSheetGenerator(cfg.App.Name)
	summaryUC := inventory.NewSummaryUseCase(store.inventory, stockSheet)

	app := fiber.New(httpRouter.NewFiberConfig(cfg.App.Name))
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI: http://localhost:<port>/docs (solo si existe el archivo)
	if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerFile,
			Path:     "docs",
			Title:    "Almacén API",
		}))
	} else {
		log.Debug().Str("file", cfg.HTTP.SwaggerFile).Msg("swagger deshabilitado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		ItemUC:           itemUC,
		MovementUC:       movementUC,
		DashboardUC:      dashboardUC,
		RegisterMovement: registerMovementUC,
		Summary:          summaryUC,
		Cookie: httpRouter.CookieConfig{
			Secure:     cfg.Session.CookieSecure,
			ExpMinutes: cfg.Session.Expiration,
		},
		AdminPassword: cfg.Admin.DefaultPassword,
		Logger:        log,
	})

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
