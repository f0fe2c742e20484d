package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dhaliwal-pos/internal/application/auth"
	"github.com/jhoicas/dhaliwal-pos/internal/application/dto"
	"github.com/jhoicas/dhaliwal-pos/internal/application/usecase"
	"github.com/jhoicas/dhaliwal-pos/internal/domain"
)

// AdminHandler login y edición de la carta.
type AdminHandler struct {
	auth *auth.AuthUseCase
	menu *usecase.MenuUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(authUC *auth.AuthUseCase, menuUC *usecase.MenuUseCase) *AdminHandler {
	return &AdminHandler{auth: authUC, menu: menuUC}
}

// Login godoc
// @Summary      Login de administrador
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdminLoginRequest  true  "password"
// @Success      200   {object}  dto.AdminLoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/admin/login [post]
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var in dto.AdminLoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.auth.Login(in)
	if err != nil {
		if err == domain.ErrUnauthorized {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "contraseña incorrecta"})
		}
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetMenu godoc
// @Summary      Carta para edición
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MenuResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/admin/menu [get]
func (h *AdminHandler) GetMenu(c *fiber.Ctx) error {
	return c.JSON(h.menu.List(c.UserContext()))
}

// SaveMenu godoc
// @Summary      Reemplazar la carta
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveMenuRequest  true  "Carta completa"
// @Success      200   {object}  dto.MenuResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/admin/menu [put]
func (h *AdminHandler) SaveMenu(c *fiber.Ctx) error {
	var in dto.SaveMenuRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.menu.Save(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteMenuItem godoc
// @Summary      Eliminar plato
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        name  path  string  true  "Nombre del plato"
// @Success      200   {object}  dto.MenuResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/admin/menu/{name} [delete]
func (h *AdminHandler) DeleteMenuItem(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil || name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_NAME", Message: "name es requerido"})
	}
	out, err := h.menu.Delete(c.UserContext(), name)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
