package controller

import (
	"github.com/zXpect/Panel-admln-ADS-backend/internal/pkg/serverutils"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IClientController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Count(ctx *fiber.Ctx) error
}

type clientController struct {
	service service.IClientService
	auth    fiber.Handler
}

func NewClientController(service service.IClientService, auth fiber.Handler) IClientController {
	return &clientController{service: service, auth: auth}
}

func (c *clientController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/clients")
	h.Use(c.auth)

	h.Get("", c.List)
	h.Get("/count", c.Count)
	h.Get("/:id", c.Show)
}

func (c *clientController) List(ctx *fiber.Ctx) error {
	res, err := c.service.List(ctx.Context(), ctx.Query("search", ""))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Client list", res))
}

func (c *clientController) Show(ctx *fiber.Ctx) error {
	res, err := c.service.Get(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Client detail", res))
}

func (c *clientController) Count(ctx *fiber.Ctx) error {
	res, err := c.service.Count(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Client count", res))
}
