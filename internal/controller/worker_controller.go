package controller

import (
	"github.com/zXpect/Panel-admln-ADS-backend/internal/dto"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/entity"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/pkg/serverutils"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IWorkerController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Statistics(ctx *fiber.Ctx) error

	UpdateAvailability(ctx *fiber.Ctx) error
	UpdateVerificationStatus(ctx *fiber.Ctx) error
	UpdateOnlineStatus(ctx *fiber.Ctx) error
	UpdateLocation(ctx *fiber.Ctx) error
	AddRating(ctx *fiber.Ctx) error
}

type workerController struct {
	service service.IWorkerService
	auth    fiber.Handler
}

func NewWorkerController(service service.IWorkerService, auth fiber.Handler) IWorkerController {
	return &workerController{service: service, auth: auth}
}

func (c *workerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/workers")
	h.Use(c.auth)

	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get("/statistics", c.Statistics)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
	h.Patch("/:id", c.Update)
	h.Delete("/:id", c.Delete)

	h.Patch("/:id/availability", c.UpdateAvailability)
	h.Patch("/:id/verification_status", c.UpdateVerificationStatus)
	h.Patch("/:id/online_status", c.UpdateOnlineStatus)
	h.Patch("/:id/location", c.UpdateLocation)
	h.Post("/:id/add_rating", c.AddRating)
}

func (c *workerController) List(ctx *fiber.Ctx) error {
	var query dto.WorkerListQuery
	if err := ctx.QueryParser(&query); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query parameters")
	}

	res, err := c.service.List(ctx.Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Worker list", res))
}

func (c *workerController) Show(ctx *fiber.Ctx) error {
	res, err := c.service.Get(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Worker detail", res))
}

func (c *workerController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateWorkerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Worker created", res))
}

func (c *workerController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateWorkerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), ctx.Params("id"), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Worker updated", res))
}

func (c *workerController) Delete(ctx *fiber.Ctx) error {
	if err := c.service.Delete(ctx.Context(), ctx.Params("id")); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Worker deleted", nil))
}

func (c *workerController) Statistics(ctx *fiber.Ctx) error {
	res, err := c.service.Statistics(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Worker statistics", res))
}

func (c *workerController) UpdateAvailability(ctx *fiber.Ctx) error {
	var req dto.WorkerAvailabilityRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.UpdateAvailability(ctx.Context(), ctx.Params("id"), *req.IsAvailable); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Availability updated", fiber.Map{"isAvailable": *req.IsAvailable}))
}

func (c *workerController) UpdateVerificationStatus(ctx *fiber.Ctx) error {
	var req dto.WorkerVerificationStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateVerificationStatus(ctx.Context(), ctx.Params("id"), entity.VerificationState(req.Status))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Verification status updated", res))
}

func (c *workerController) UpdateOnlineStatus(ctx *fiber.Ctx) error {
	var req dto.WorkerOnlineStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.UpdateOnlineStatus(ctx.Context(), ctx.Params("id"), *req.IsOnline); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Online status updated", fiber.Map{"isOnline": *req.IsOnline}))
}

func (c *workerController) UpdateLocation(ctx *fiber.Ctx) error {
	var req dto.WorkerLocationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	err := c.service.UpdateLocation(ctx.Context(), ctx.Params("id"), *req.Latitude, *req.Longitude)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Location updated", fiber.Map{
		"latitude":  *req.Latitude,
		"longitude": *req.Longitude,
	}))
}

func (c *workerController) AddRating(ctx *fiber.Ctx) error {
	var req dto.WorkerRatingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.AddRating(ctx.Context(), ctx.Params("id"), req.Rating)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Rating added", res))
}
