package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen/internal/application/usecase"
	"github.com/jhoicas/almacen/pkg/logger"
)

// DashboardHandler página de inicio.
type DashboardHandler struct {
	uc  *usecase.DashboardUseCase
	log *logger.Logger
}

func NewDashboardHandler(uc *usecase.DashboardUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// Dashboard GET /
func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return renderInternal(c, h.log, err)
	}
	return c.Render("dashboard", fiber.Map{
		"Title":   "Inicio",
		"User":    GetPrincipal(c),
		"Flash":   popFlash(c),
		"Summary": summary,
	}, layoutMain)
}
