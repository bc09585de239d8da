package controller

import (
	"context"
	"time"

	"brokeria-dashboard-be/internal/pkg/apperror"
	"brokeria-dashboard-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type IHealthController interface {
	RegisterRoutes(app fiber.Router)
	Health(ctx *fiber.Ctx) error
}

type healthController struct {
	db Pinger
}

func NewHealthController(db Pinger) IHealthController {
	return &healthController{db: db}
}

func (c *healthController) RegisterRoutes(app fiber.Router) {
	app.Get("/healthz", c.Health)
}

func (c *healthController) Health(ctx *fiber.Ctx) error {
	pingCtx, cancel := context.WithTimeout(ctx.UserContext(), 2*time.Second)
	defer cancel()

	if err := c.db.PingContext(pingCtx); err != nil {
		return apperror.Upstream("database ping", err)
	}
	return ctx.JSON(serverutils.SuccessResponse("ok", fiber.Map{"database": "up"}))
}
