package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/dhaliwal-pos/internal/application/dto"
	"github.com/jhoicas/dhaliwal-pos/internal/domain/entity"
	"github.com/jhoicas/dhaliwal-pos/internal/domain/repository"
)

// SessionCookie nombre de la cookie que identifica la sesión de caja.
const SessionCookie = "pos_session"

// LocalSession key de c.Locals con la *entity.Session del request.
const LocalSession = "pos_session"

// SessionMiddleware resuelve la cookie de sesión, obtiene (o crea) la sesión
// de caja en el registro y la deja en c.Locals. La cookie se renueva en cada request.
func SessionMiddleware(store *session.Store, registry repository.SessionRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "SESSION", Message: "no se pudo leer la sesión"})
		}
		id := sess.ID()
		if err := sess.Save(); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "SESSION", Message: "no se pudo guardar la sesión"})
		}
		c.Locals(LocalSession, registry.GetOrCreate(id))
		return c.Next()
	}
}

// GetSession devuelve la sesión de caja del request (después de SessionMiddleware).
func GetSession(c *fiber.Ctx) *entity.Session {
	s, _ := c.Locals(LocalSession).(*entity.Session)
	return s
}
