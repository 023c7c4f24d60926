package controller

import (
	"strconv"

	"github.com/zXpect/Panel-admln-ADS-backend/internal/dto"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/pkg/serverutils"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	GetPending(ctx *fiber.Ctx) error
	GetWorkerDocuments(ctx *fiber.Ctx) error
	GetHojaVida(ctx *fiber.Ctx) error
	GetAntecedentes(ctx *fiber.Ctx) error
	GetTitulos(ctx *fiber.Ctx) error
	GetCartas(ctx *fiber.Ctx) error
	CheckRequirements(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error

	Create(ctx *fiber.Ctx) error
	Approve(ctx *fiber.Ctx) error
	Reject(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	GetFileURL(ctx *fiber.Ctx) error
}

type documentController struct {
	service service.IDocumentService
	auth    fiber.Handler
}

func NewDocumentController(service service.IDocumentService, auth fiber.Handler) IDocumentController {
	return &documentController{service: service, auth: auth}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/documents")
	h.Use(c.auth)

	h.Get("/pending", c.GetPending)
	h.Get("/file-url", c.GetFileURL)
	h.Get("/worker/:workerId", c.GetWorkerDocuments)
	h.Get("/worker/:workerId/hoja-vida", c.GetHojaVida)
	h.Get("/worker/:workerId/antecedentes", c.GetAntecedentes)
	h.Get("/worker/:workerId/titulos", c.GetTitulos)
	h.Get("/worker/:workerId/cartas", c.GetCartas)
	h.Get("/worker/:workerId/check-requirements", c.CheckRequirements)
	h.Get("/worker/:workerId/history", c.GetHistory)

	h.Post("", c.Create)
	h.Post("/approve", c.Approve)
	h.Post("/reject", c.Reject)
	h.Delete("/delete", c.Delete)
}

func (c *documentController) GetPending(ctx *fiber.Ctx) error {
	res, err := c.service.GetPending(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Pending documents", res))
}

func (c *documentController) GetWorkerDocuments(ctx *fiber.Ctx) error {
	res, err := c.service.GetWorkerDocuments(ctx.Context(), ctx.Params("workerId"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Worker documents", res))
}

func (c *documentController) GetHojaVida(ctx *fiber.Ctx) error {
	res, err := c.service.GetHojaVida(ctx.Context(), ctx.Params("workerId"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Hoja de vida", res))
}

func (c *documentController) GetAntecedentes(ctx *fiber.Ctx) error {
	res, err := c.service.GetAntecedentes(ctx.Context(), ctx.Params("workerId"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Antecedentes judiciales", res))
}

func (c *documentController) GetTitulos(ctx *fiber.Ctx) error {
	res, err := c.service.GetTitulos(ctx.Context(), ctx.Params("workerId"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Títulos", res))
}

func (c *documentController) GetCartas(ctx *fiber.Ctx) error {
	res, err := c.service.GetCartas(ctx.Context(), ctx.Params("workerId"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Cartas de recomendación", res))
}

func (c *documentController) CheckRequirements(ctx *fiber.Ctx) error {
	res, err := c.service.CheckRequirements(ctx.Context(), ctx.Params("workerId"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Requirement check", res))
}

func (c *documentController) GetHistory(ctx *fiber.Ctx) error {
	page, _ := strconv.Atoi(ctx.Query("page", "1"))
	limit, _ := strconv.Atoi(ctx.Query("limit", "20"))

	res, err := c.service.GetHistory(ctx.Context(), ctx.Params("workerId"), page, limit)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Verification history", res))
}

func (c *documentController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateDocumentRequest
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
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Document created", res))
}

func (c *documentController) Approve(ctx *fiber.Ctx) error {
	var req dto.ApproveDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	if req.ReviewerId == "" {
		req.ReviewerId = serverutils.ReviewerId(ctx)
	}

	if err := c.service.Approve(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Document approved", nil))
}

func (c *documentController) Reject(ctx *fiber.Ctx) error {
	var req dto.RejectDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	if req.ReviewerId == "" {
		req.ReviewerId = serverutils.ReviewerId(ctx)
	}

	if err := c.service.Reject(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Document rejected", nil))
}

func (c *documentController) Delete(ctx *fiber.Ctx) error {
	var req dto.DocumentRefRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.Delete(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Document deleted", nil))
}

func (c *documentController) GetFileURL(ctx *fiber.Ctx) error {
	var req dto.FileURLRequest
	if err := ctx.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query parameters")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.GetFileURL(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("File URL", res))
}
