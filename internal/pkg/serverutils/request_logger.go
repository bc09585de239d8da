package serverutils

import (
	"time"

	"brokeria-dashboard-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger logs one line per request after the handler chain, error
// handler included, has produced a status.
func RequestLogger(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		chainErr := ctx.Next()
		if chainErr != nil {
			// Let the app's error handler write the response so the status is final.
			if err := ctx.App().ErrorHandler(ctx, chainErr); err != nil {
				_ = ctx.SendStatus(fiber.StatusInternalServerError)
			}
		}

		details := map[string]interface{}{
			"method":     ctx.Method(),
			"path":       ctx.Path(),
			"status":     ctx.Response().StatusCode(),
			"latency_ms": time.Since(start).Milliseconds(),
			"request_id": requestID(ctx),
			"ip":         ctx.IP(),
		}
		if claims := ClaimsFromCtx(ctx); claims != nil {
			details["user_id"] = claims.UserId
		}
		log.Info("HTTP", "Request handled", details)
		return nil
	}
}

func requestID(ctx *fiber.Ctx) string {
	id, _ := ctx.Locals("requestid").(string)
	return id
}
