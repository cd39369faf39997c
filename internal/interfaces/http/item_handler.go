package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen/internal/application/dto"
	"github.com/jhoicas/almacen/internal/application/usecase"
	"github.com/jhoicas/almacen/pkg/logger"
)

// ItemHandler catálogo de artículos.
type ItemHandler struct {
	uc  *usecase.ItemUseCase
	log *logger.Logger
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *usecase.ItemUseCase, log *logger.Logger) *ItemHandler {
	return &ItemHandler{uc: uc, log: log}
}

// List GET /items
func (h *ItemHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.UserContext())
	if err != nil {
		return renderInternal(c, h.log, err)
	}
	return c.Render("items", fiber.Map{
		"Title": "Artículos",
		"User":  GetPrincipal(c),
		"Flash": popFlash(c),
		"Items": items,
	}, layoutMain)
}

// NewForm GET /items/new
func (h *ItemHandler) NewForm(c *fiber.Ctx) error {
	return h.renderForm(c, fiber.StatusOK, dto.CreateItemRequest{}, "")
}

// Create POST /items/new
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return h.renderForm(c, fiber.StatusBadRequest, in, "Formulario inválido")
	}
	if msg := validationMessage(in); msg != "" {
		return h.renderForm(c, fiber.StatusBadRequest, in, msg)
	}
	if _, err := h.uc.Create(c.UserContext(), in); err != nil {
		if status := statusFor(err); status == fiber.StatusBadRequest {
			return h.renderForm(c, status, in, "Nombre y unidad base son obligatorios")
		}
		return renderInternal(c, h.log, err)
	}
	setFlash(c, "Artículo creado correctamente")
	return c.Redirect("/items", fiber.StatusFound)
}

// APIList godoc
// @Summary      Listar artículos
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ItemResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/items [get]
func (h *ItemHandler) APIList(c *fiber.Ctx) error {
	items, err := h.uc.List(c.UserContext())
	if err != nil {
		return jsonError(c, h.log, err)
	}
	return c.JSON(items)
}

func (h *ItemHandler) renderForm(c *fiber.Ctx, status int, form dto.CreateItemRequest, errMsg string) error {
	return c.Status(status).Render("item_new", fiber.Map{
		"Title": "Nuevo artículo",
		"User":  GetPrincipal(c),
		"Flash": popFlash(c),
		"Form":  form,
		"Error": errMsg,
	}, layoutMain)
}
