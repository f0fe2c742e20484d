package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/dhaliwal-pos/internal/application/auth"
	"github.com/jhoicas/dhaliwal-pos/internal/application/billing"
	"github.com/jhoicas/dhaliwal-pos/internal/application/pos"
	"github.com/jhoicas/dhaliwal-pos/internal/application/usecase"
	"github.com/jhoicas/dhaliwal-pos/internal/domain/repository"
	"github.com/jhoicas/dhaliwal-pos/pkg/jwt"
	"github.com/jhoicas/dhaliwal-pos/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MenuUC       *usecase.MenuUseCase
	BillUC       *pos.BillUseCase
	ReceiptUC    *billing.ReceiptUseCase
	AuthUC       *auth.AuthUseCase
	Sessions     repository.SessionRepository
	SessionStore *session.Store
	JWTSecret    string
	Log          *logger.Logger
}

// Router registra las rutas de la API y, al final, la UI estática.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Carta (público)
	menuHandler := NewMenuHandler(deps.MenuUC)
	api.Get("/menu", menuHandler.List)

	// Cuenta de la sesión (cookie pos_session)
	bill := api.Group("/bill", SessionMiddleware(deps.SessionStore, deps.Sessions))
	billHandler := NewBillHandler(deps.BillUC, deps.ReceiptUC)
	bill.Get("/", billHandler.Get)
	bill.Delete("/", billHandler.Clear)
	bill.Post("/items", billHandler.AddItem)
	bill.Put("/customer", billHandler.UpdateCustomer)
	bill.Get("/receipt.pdf", billHandler.Receipt)

	sessionHandler := NewSessionHandler(deps.SessionStore, deps.Sessions, deps.Log)
	api.Delete("/session", sessionHandler.End)

	// Administración de la carta
	admin := api.Group("/admin")
	adminHandler := NewAdminHandler(deps.AuthUC, deps.MenuUC)
	admin.Post("/login", adminHandler.Login)

	protected := admin.Group("/menu", AuthMiddleware(deps.JWTSecret), RequireRole(jwt.RoleAdmin))
	protected.Get("/", adminHandler.GetMenu)
	protected.Put("/", adminHandler.SaveMenu)
	protected.Delete("/:name", adminHandler.DeleteMenuItem)

	RegisterUI(app)
}
