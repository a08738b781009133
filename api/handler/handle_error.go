package handler

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/cert-overlay-api/type/response"
)

func HandleError(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(
			response.Error(fiberErr.Message),
		)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return c.Status(fiber.StatusGatewayTimeout).JSON(
			response.Error("Request timed out"),
		)
	}

	slog.Error("Unhandled request error", "error", err, "method", c.Method(), "path", c.Path())
	return c.Status(fiber.StatusInternalServerError).JSON(
		response.Error(err.Error()),
	)
}
