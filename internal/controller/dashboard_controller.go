package controller

import (
	"github.com/zXpect/Panel-admln-ADS-backend/internal/pkg/serverutils"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDashboardController interface {
	RegisterRoutes(r fiber.Router)
	GetStats(ctx *fiber.Ctx) error
	GetWeeklyTrends(ctx *fiber.Ctx) error
	GetMonthlyTrends(ctx *fiber.Ctx) error
	GetActivityStats(ctx *fiber.Ctx) error
}

type dashboardController struct {
	service service.IDashboardService
	auth    fiber.Handler
}

func NewDashboardController(service service.IDashboardService, auth fiber.Handler) IDashboardController {
	return &dashboardController{service: service, auth: auth}
}

func (c *dashboardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/dashboard")
	h.Use(c.auth)

	h.Get("/stats", c.GetStats)
	h.Get("/weekly-trends", c.GetWeeklyTrends)
	h.Get("/monthly-trends", c.GetMonthlyTrends)
	h.Get("/activity-stats", c.GetActivityStats)
}

func (c *dashboardController) GetStats(ctx *fiber.Ctx) error {
	stats, err := c.service.GetStats(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Dashboard stats", stats))
}

// Trend endpoints always answer 200; a store failure yields zero-filled data.
func (c *dashboardController) GetWeeklyTrends(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Weekly trends", c.service.GetWeeklyTrends(ctx.Context())))
}

func (c *dashboardController) GetMonthlyTrends(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Monthly trends", c.service.GetMonthlyTrends(ctx.Context())))
}

func (c *dashboardController) GetActivityStats(ctx *fiber.Ctx) error {
	stats, err := c.service.GetActivityStats(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Activity stats", stats))
}
