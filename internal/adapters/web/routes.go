package web

import (
	"github.com/gofiber/fiber/v2"
)

// FiberConfig is the Fiber configuration the web adapter expects.
// Immutable copies request strings (form values, path, headers) out of
// fasthttp's reusable buffers; log entries hold on to them after the
// handler returns.
func FiberConfig() fiber.Config {
	return fiber.Config{
		AppName:               "Blox",
		DisableStartupMessage: true,
		Immutable:             true,
	}
}

// SetupRoutes configures the application routes. Embed submissions go
// through the rate limiter; everything else is read-only.
func SetupRoutes(app *fiber.App, handlers *Handlers, rateLimiter *RateLimiter, staticDir string) {
	app.Static("/static", staticDir)

	// Editor page and its HTMX fragments
	app.Get("/", handlers.Home)
	app.Get("/embed/dialog", handlers.EmbedDialog)
	app.Post("/embed", rateLimiter.Middleware(handlers.RateLimited), handlers.SubmitEmbed)

	// JSON API used by the editor plugin
	api := app.Group("/api")
	api.Get("/platforms", handlers.APIPlatforms)
	api.Get("/detect", handlers.APIDetect)
	api.Post("/embed", rateLimiter.Middleware(handlers.RateLimited), handlers.APIEmbed)
}
