package controller

import (
	"strconv"

	"brokeria-dashboard-be/internal/dto"
	"brokeria-dashboard-be/internal/pkg/apperror"
	"brokeria-dashboard-be/internal/pkg/serverutils"
	"brokeria-dashboard-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IRecordController interface {
	RegisterRoutes(r fiber.Router, authMw fiber.Handler)
	Recent(ctx *fiber.Ctx) error
	ByType(ctx *fiber.Ctx) error
	ByStage(ctx *fiber.Ctx) error
	ByDay(ctx *fiber.Ctx) error
	Filter(ctx *fiber.Ctx) error
	ByPhone(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type recordController struct {
	recordService service.IRecordService
}

func NewRecordController(recordService service.IRecordService) IRecordController {
	return &recordController{recordService: recordService}
}

func (c *recordController) RegisterRoutes(r fiber.Router, authMw fiber.Handler) {
	h := r.Group("/registros", authMw)
	h.Get("/recentes", c.Recent)
	h.Get("/por-tipo", c.ByType)
	h.Get("/por-etapa", c.ByStage)
	h.Get("/por-dia", c.ByDay)
	// Static segments first; /:id would otherwise swallow them.
	h.Get("/filtrar", c.Filter)
	h.Get("/telefone/:telefone", c.ByPhone)
	h.Get("/:id", c.Show)
}

func (c *recordController) Recent(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", service.DefaultRecentLimit)

	res, err := c.recordService.Recent(ctx.UserContext(), limit)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *recordController) ByType(ctx *fiber.Ctx) error {
	res, err := c.recordService.ByType(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *recordController) ByStage(ctx *fiber.Ctx) error {
	res, err := c.recordService.ByStage(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *recordController) ByDay(ctx *fiber.Ctx) error {
	res, err := c.recordService.ByDay(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *recordController) Filter(ctx *fiber.Ctx) error {
	var req dto.RecordFilterRequest
	if err := ctx.QueryParser(&req); err != nil {
		return apperror.Validation("malformed query string")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.recordService.Filter(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *recordController) ByPhone(ctx *fiber.Ctx) error {
	phone := ctx.Params("telefone")
	if phone == "" {
		return apperror.Validation("telefone is required")
	}

	res, err := c.recordService.GetByPhone(ctx.UserContext(), phone)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *recordController) Show(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return apperror.Validation("id must be a positive integer")
	}

	res, err := c.recordService.GetById(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}
