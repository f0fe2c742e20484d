package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dhaliwal-pos/internal/application/usecase"
)

// MenuHandler carta pública.
type MenuHandler struct {
	uc *usecase.MenuUseCase
}

// NewMenuHandler construye el handler.
func NewMenuHandler(uc *usecase.MenuUseCase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

// List godoc
// @Summary      Carta
// @Description  Si la carta no se puede leer responde 200 con la lista vacía y un aviso.
// @Tags         menu
// @Produce      json
// @Success      200  {object}  dto.MenuResponse
// @Router       /api/menu [get]
func (h *MenuHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List(c.UserContext()))
}
