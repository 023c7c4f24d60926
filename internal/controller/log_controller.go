package controller

import (
	"github.com/zXpect/Panel-admln-ADS-backend/internal/dto"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/pkg/serverutils"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ILogController interface {
	RegisterRoutes(r fiber.Router)
	GetLogs(ctx *fiber.Ctx) error
}

type logController struct {
	service service.ILogService
	auth    fiber.Handler
}

func NewLogController(service service.ILogService, auth fiber.Handler) ILogController {
	return &logController{service: service, auth: auth}
}

func (c *logController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin")
	h.Use(c.auth)
	h.Get("/logs", c.GetLogs)
}

func (c *logController) GetLogs(ctx *fiber.Ctx) error {
	var query dto.LogListQuery
	if err := ctx.QueryParser(&query); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query parameters")
	}
	if err := serverutils.ValidateRequest(query); err != nil {
		return err
	}

	logs, err := c.service.GetSystemLogs(ctx.Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("System logs", logs))
}
