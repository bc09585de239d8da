package controller

import (
	"brokeria-dashboard-be/internal/pkg/serverutils"
	"brokeria-dashboard-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDashboardController interface {
	RegisterRoutes(r fiber.Router, authMw fiber.Handler)
	Stats(ctx *fiber.Ctx) error
}

type dashboardController struct {
	recordService service.IRecordService
}

func NewDashboardController(recordService service.IRecordService) IDashboardController {
	return &dashboardController{recordService: recordService}
}

func (c *dashboardController) RegisterRoutes(r fiber.Router, authMw fiber.Handler) {
	h := r.Group("/dashboard", authMw)
	h.Get("/stats", c.Stats)
}

func (c *dashboardController) Stats(ctx *fiber.Ctx) error {
	res, err := c.recordService.Stats(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}
