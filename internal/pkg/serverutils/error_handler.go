package serverutils

import (
	"errors"

	"brokeria-dashboard-be/internal/pkg/apperror"
	"brokeria-dashboard-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// NewErrorHandler maps service errors onto the response envelope. Anything
// outside the apperror taxonomy is logged and reported as a generic 500.
func NewErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		code := apperror.StatusCode(err)
		if code >= fiber.StatusInternalServerError {
			log.Error("HTTP", "Request failed", map[string]interface{}{
				"method":     ctx.Method(),
				"path":       ctx.Path(),
				"request_id": requestID(ctx),
				"error":      err.Error(),
			})
		}

		return ctx.Status(code).JSON(ErrorResponse(code, apperror.PublicMessage(err)))
	}
}
