package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen/internal/application/dto"
	"github.com/jhoicas/almacen/internal/application/inventory"
	"github.com/jhoicas/almacen/internal/application/usecase"
	"github.com/jhoicas/almacen/internal/domain/entity"
	"github.com/jhoicas/almacen/pkg/logger"
)

// MovementHandler registro y consulta de movimientos.
type MovementHandler struct {
	register  *inventory.RegisterMovementUseCase
	movements *usecase.MovementUseCase
	items     *usecase.ItemUseCase
	log       *logger.Logger
}

// NewMovementHandler construye el handler.
func NewMovementHandler(register *inventory.RegisterMovementUseCase, movements *usecase.MovementUseCase, items *usecase.ItemUseCase, log *logger.Logger) *MovementHandler {
	return &MovementHandler{register: register, movements: movements, items: items, log: log}
}

// List GET /movements: todos los movimientos, el más reciente primero.
func (h *MovementHandler) List(c *fiber.Ctx) error {
	list, err := h.movements.List(c.UserContext(), 0)
	if err != nil {
		return renderInternal(c, h.log, err)
	}
	return c.Render("movements", fiber.Map{
		"Title":     "Movimientos",
		"User":      GetPrincipal(c),
		"Flash":     popFlash(c),
		"Movements": list,
	}, layoutMain)
}

// NewForm GET /movements/new. Sin artículos redirige a crear uno.
func (h *MovementHandler) NewForm(c *fiber.Ctx) error {
	items, err := h.items.List(c.UserContext())
	if err != nil {
		return renderInternal(c, h.log, err)
	}
	if len(items) == 0 {
		setFlash(c, "Primero crea un artículo")
		return c.Redirect("/items/new", fiber.StatusFound)
	}
	form := dto.RegisterMovementRequest{MovementType: entity.MovementEntrada.String(), Unit: items[0].UnitBase}
	return h.renderForm(c, fiber.StatusOK, items, form, "")
}

// Create POST /movements/new: registra el movimiento con una línea y vuelve al inicio.
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	parseErr := c.BodyParser(&in)

	items, err := h.items.List(c.UserContext())
	if err != nil {
		return renderInternal(c, h.log, err)
	}
	if len(items) == 0 {
		setFlash(c, "Primero crea un artículo")
		return c.Redirect("/items/new", fiber.StatusFound)
	}
	if parseErr != nil {
		return h.renderForm(c, fiber.StatusBadRequest, items, in, "Formulario inválido")
	}
	if msg := validationMessage(in); msg != "" {
		return h.renderForm(c, fiber.StatusBadRequest, items, in, msg)
	}

	mov, err := h.register.RegisterMovementFromForm(c.UserContext(), GetUserID(c), in)
	if err != nil {
		switch statusFor(err) {
		case fiber.StatusBadRequest:
			return h.renderForm(c, fiber.StatusBadRequest, items, in, "La cantidad debe ser un número mayor que cero")
		case fiber.StatusNotFound:
			return h.renderForm(c, fiber.StatusNotFound, items, in, "El artículo seleccionado no existe")
		}
		return renderInternal(c, h.log, err)
	}
	h.log.Info().
		Int("movement_no", mov.MovementNo).
		Str("type", mov.Type.String()).
		Str("user_id", mov.UserID).
		Msg("movimiento registrado")
	setFlash(c, fmt.Sprintf("%s registrada con No. %d", mov.Type, mov.MovementNo))
	return c.Redirect("/", fiber.StatusFound)
}

// APIList godoc
// @Summary      Listar movimientos
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "máximo de movimientos (0 = todos)"
// @Success      200  {array}   dto.MovementResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) APIList(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	list, err := h.movements.List(c.UserContext(), limit)
	if err != nil {
		return jsonError(c, h.log, err)
	}
	return c.JSON(list)
}

func (h *MovementHandler) renderForm(c *fiber.Ctx, status int, items []dto.ItemResponse, form dto.RegisterMovementRequest, errMsg string) error {
	return c.Status(status).Render("movement_new", fiber.Map{
		"Title": "Nuevo movimiento",
		"User":  GetPrincipal(c),
		"Flash": popFlash(c),
		"Types": entity.MovementTypes,
		"Items": items,
		"Form":  form,
		"Error": errMsg,
	}, layoutMain)
}
