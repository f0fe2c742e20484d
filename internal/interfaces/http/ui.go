package http

import (
	"embed"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

//go:embed web
var webFS embed.FS

// RegisterUI sirve la UI de caja (index.html + app.js) embebida en el binario.
// Se registra después de la API: las rutas no encontradas terminan en 404.
func RegisterUI(app *fiber.App) {
	app.Use("/", filesystem.New(filesystem.Config{
		Root:       http.FS(webFS),
		PathPrefix: "web",
		Index:      "index.html",
		MaxAge:     0,
	}))
}
