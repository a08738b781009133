package api

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sunthewhat/cert-overlay-api/api/handler"
	"github.com/sunthewhat/cert-overlay-api/api/middleware"
	"github.com/sunthewhat/cert-overlay-api/api/routes"
	"github.com/sunthewhat/cert-overlay-api/type/shared"
)

const shutdownTimeout = 30 * time.Second

func NewFiber(config *shared.Config, controllers routes.Controllers) *fiber.App {
	cfg := fiber.Config{
		AppName:       "cert-overlay api",
		ErrorHandler:  handler.HandleError,
		Prefork:       false,
		StrictRouting: true,
		Network:       fiber.NetworkTCP,
		BodyLimit:     16 * 1024 * 1024,
	}
	app := fiber.New(cfg)

	app.Use(logger.New())
	app.Use(middleware.Recover())
	app.Use(middleware.Cors(config.Cors))

	routes.Init(app, controllers)

	app.Use(handler.HandleNotFound)

	return app
}

// Serve listens on port until ctx is cancelled, then drains in-flight
// requests before returning.
func Serve(ctx context.Context, app *fiber.App, port string) error {
	listenErr := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "port", port)
		listenErr <- app.Listen(port)
	}()

	select {
	case err := <-listenErr:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return <-listenErr
}
