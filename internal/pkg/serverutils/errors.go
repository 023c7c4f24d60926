package serverutils

import (
	"errors"

	"github.com/zXpect/Panel-admln-ADS-backend/internal/entity"

	"github.com/gofiber/fiber/v2"
)

// StatusFor maps a domain error to its HTTP status.
func StatusFor(err error) int {
	var fe *fiber.Error
	switch {
	case err == nil:
		return fiber.StatusOK
	case errors.As(err, &fe):
		return fe.Code
	case entity.IsValidation(err):
		return fiber.StatusBadRequest
	case errors.Is(err, entity.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, entity.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, entity.ErrStoreUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandlerMiddleware turns errors returned by handlers into the JSON
// error envelope.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		code := StatusFor(err)
		return ctx.Status(code).JSON(ErrorResponse(code, err.Error()))
	}
}
