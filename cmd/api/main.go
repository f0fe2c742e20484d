// @title          Dhaliwal POS API
// @version        1.0
// @description    Caja de restaurante: carta, cuenta por sesión y recibo térmico en PDF.
// @BasePath       /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 Bearer <token> devuelto por /api/admin/login
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
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/jhoicas/dhaliwal-pos/docs"
	"github.com/jhoicas/dhaliwal-pos/internal/application/auth"
	"github.com/jhoicas/dhaliwal-pos/internal/application/billing"
	"github.com/jhoicas/dhaliwal-pos/internal/application/dto"
	"github.com/jhoicas/dhaliwal-pos/internal/application/pos"
	"github.com/jhoicas/dhaliwal-pos/internal/application/usecase"
	"github.com/jhoicas/dhaliwal-pos/internal/domain/receipt"
	"github.com/jhoicas/dhaliwal-pos/internal/domain/repository"
	infrabrowser "github.com/jhoicas/dhaliwal-pos/internal/infrastructure/browser"
	"github.com/jhoicas/dhaliwal-pos/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/dhaliwal-pos/internal/infrastructure/pdf"
	"github.com/jhoicas/dhaliwal-pos/internal/infrastructure/postgres"
	"github.com/jhoicas/dhaliwal-pos/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/dhaliwal-pos/internal/interfaces/http"
	"github.com/jhoicas/dhaliwal-pos/pkg/config"
	"github.com/jhoicas/dhaliwal-pos/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	// .env opcional; las variables ya definidas en el entorno no se pisan.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("menu_backend", cfg.Menu.Backend).
		Msg("iniciando aplicación")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	var menuRepo repository.MenuRepository
	switch cfg.Menu.Backend {
	case config.MenuBackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		pgRepo := postgres.NewMenuRepository(pool)
		if err := pgRepo.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("crear tabla menu_items")
		}
		menuRepo = pgRepo
	default:
		menuRepo = xlsx.NewMenuRepository(cfg.Menu.Path)
		log.Info().Str("path", cfg.Menu.Path).Msg("carta desde hoja de cálculo")
	}

	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = uuid.NewString() + uuid.NewString()
		log.Warn().Msg("JWT_SECRET vacío: se usa un secreto aleatorio, los tokens no sobreviven un reinicio")
	}
	authUC, err := auth.NewAuthUseCase(cfg.Admin.Password, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("configurar acceso de administrador")
	}

	policy := receipt.Policy{TaxRate: cfg.Receipt.TaxRate, Discount: cfg.Receipt.Discount}
	shop := billing.ShopProfile{
		Name:           cfg.Receipt.ShopName,
		AddressLine:    cfg.Receipt.ShopLine,
		Footer:         cfg.Receipt.Footer,
		CurrencySymbol: cfg.Receipt.Currency,
	}

	menuUC := usecase.NewMenuUseCase(menuRepo, log)
	billUC := pos.NewBillUseCase(menuRepo, policy, cfg.Receipt.Currency, log)
	receiptUC := billing.NewReceiptUseCase(infrapdf.NewMarotoReceiptRenderer(cfg.Receipt.PDFEnabled), policy, shop, log)
	if !receiptUC.Available() {
		log.Warn().Msg("generación de PDF deshabilitada (RECEIPT_PDF_ENABLED=false)")
	}

	sessions := memory.NewSessionStore()
	go sessions.RunJanitor(ctx, cfg.Session.SweepInterval, cfg.Session.IdleTimeout, log.Component("sessions"))

	sessionStore := session.New(session.Config{
		Expiration:     cfg.Session.IdleTimeout,
		KeyLookup:      "cookie:" + httpRouter.SessionCookie,
		CookieHTTPOnly: true,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
		KeyGenerator:   uuid.NewString,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Dhaliwal POS API",
		}))
	} else {
		log.Debug().Str("file", swaggerFile).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		c.Type("json")
		return c.SendString(docs.SwaggerInfo.ReadDoc())
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{
			Status:      "ok",
			Env:         cfg.App.Env,
			MenuBackend: cfg.Menu.Backend,
			Sessions:    sessions.Len(),
		})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		MenuUC:       menuUC,
		BillUC:       billUC,
		ReceiptUC:    receiptUC,
		AuthUC:       authUC,
		Sessions:     sessions,
		SessionStore: sessionStore,
		JWTSecret:    cfg.JWT.Secret,
		Log:          log.Component("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	if cfg.Browser.Open {
		infrabrowser.OpenOnce(cfg.HTTP.LocalURL(), cfg.Browser.Delay, log.Component("browser"))
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
