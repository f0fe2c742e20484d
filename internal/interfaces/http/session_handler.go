package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/dhaliwal-pos/internal/application/dto"
	"github.com/jhoicas/dhaliwal-pos/internal/domain/repository"
	"github.com/jhoicas/dhaliwal-pos/pkg/logger"
)

// SessionHandler fin explícito de la sesión de caja.
type SessionHandler struct {
	store    *session.Store
	registry repository.SessionRepository
	log      *logger.Logger
}

// NewSessionHandler construye el handler.
func NewSessionHandler(store *session.Store, registry repository.SessionRepository, log *logger.Logger) *SessionHandler {
	return &SessionHandler{store: store, registry: registry, log: log}
}

// End godoc
// @Summary      Terminar sesión
// @Description  Descarta cuenta y cliente; el próximo request empieza una sesión nueva.
// @Tags         session
// @Success      204
// @Router       /api/session [delete]
func (h *SessionHandler) End(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "SESSION", Message: "no se pudo leer la sesión"})
	}
	id := sess.ID()
	h.registry.Delete(id)
	if err := sess.Destroy(); err != nil {
		h.log.Warn().Err(err).Msg("destruir sesión")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
