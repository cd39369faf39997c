package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen/internal/application/inventory"
	"github.com/jhoicas/almacen/pkg/logger"
)

// InventoryHandler existencias calculadas a partir de los movimientos.
type InventoryHandler struct {
	uc  *inventory.SummaryUseCase
	log *logger.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.SummaryUseCase, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, log: log}
}

// Summary GET /inventory
func (h *InventoryHandler) Summary(c *fiber.Ctx) error {
	lines, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return renderInternal(c, h.log, err)
	}
	return c.Render("inventory", fiber.Map{
		"Title":     "Inventario",
		"User":      GetPrincipal(c),
		"Flash":     popFlash(c),
		"Inventory": lines,
	}, layoutMain)
}

// PDF GET /inventory/pdf
func (h *InventoryHandler) PDF(c *fiber.Ctx) error {
	doc, err := h.uc.RenderPDF(c.UserContext())
	if err != nil {
		return renderInternal(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="inventario-%s.pdf"`, time.Now().Format("20060102")))
	return c.Send(doc)
}

// APISummary godoc
// @Summary      Existencias actuales
// @Description  Una fila por (artículo, lote, unidad): entradas menos salidas.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.StockLineDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) APISummary(c *fiber.Ctx) error {
	lines, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return jsonError(c, h.log, err)
	}
	return c.JSON(lines)
}
