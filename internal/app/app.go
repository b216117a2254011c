// Package app wires configuration, the embed engine and the web adapter
// into a runnable server.
package app

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"blox/internal/adapters/web"
	"blox/internal/config"
	"blox/internal/embed"
	"blox/internal/usecases"
	"blox/pkg/log"
	"blox/pkg/log/transporters"
)

const shutdownTimeout = 10 * time.Second

// App is the assembled HTTP server.
type App struct {
	cfg     *config.Config
	fiber   *fiber.App
	limiter *web.RateLimiter
}

// NewLogger builds the logger described by cfg.
func NewLogger(cfg *config.Config) *log.Logger {
	var t log.Transporter = transporters.NewJSON()
	if cfg.LogFormat == "console" {
		t = transporters.NewConsole()
	}
	return log.New(cfg.LogLevel, t).Named("blox")
}

// GeneratorOptions maps configuration onto embed generator options.
func GeneratorOptions(cfg *config.Config) []embed.Option {
	var opts []embed.Option
	if cfg.Embed.StrictLinkedIn {
		opts = append(opts, embed.WithStrictLinkedIn())
	}
	return opts
}

// New assembles the server. It logs through the default logger.
func New(cfg *config.Config) *App {
	generator := embed.NewGenerator(GeneratorOptions(cfg)...)
	insertEmbed := usecases.NewInsertEmbedUseCase(generator)
	platforms := usecases.NewListPlatformsUseCase()

	handlers := web.NewHandlers(insertEmbed, platforms, web.EditorSettings{
		Title:          cfg.Editor.Title,
		ScriptSrc:      cfg.Editor.ScriptSrc,
		HTMXSrc:        cfg.Editor.HTMXSrc,
		InitialContent: cfg.Editor.InitialContent,
	})
	limiter := web.NewRateLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst)

	f := fiber.New(web.FiberConfig())

	// Request ID must come before the context bridge and the logger.
	f.Use(recover.New())
	f.Use(requestid.New(web.RequestIDConfig()))
	f.Use(web.RequestIDToContextMiddleware())
	f.Use(web.RequestLoggerMiddleware())

	web.SetupRoutes(f, handlers, limiter, cfg.StaticDir)

	return &App{cfg: cfg, fiber: f, limiter: limiter}
}

// Fiber exposes the underlying Fiber app, mainly for tests.
func (a *App) Fiber() *fiber.App {
	return a.fiber
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- a.fiber.Listen(a.cfg.Addr())
	}()

	log.InfoCtx(ctx, "server started",
		"addr", a.cfg.Addr(),
		"rate_limit_per_minute", a.cfg.RateLimit.PerMinute,
		"linkedin_strict", a.cfg.Embed.StrictLinkedIn,
	)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.InfoCtx(ctx, "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.fiber.ShutdownWithContext(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// Close releases background resources.
func (a *App) Close() {
	a.limiter.Close()
}
