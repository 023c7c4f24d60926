package serverutils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// AdminMiddleware accepts only bearer tokens signed with secret whose "role"
// claim is "admin". The token's user_id is stored in ctx.Locals("user_id").
func AdminMiddleware(secret string) fiber.Handler {
	if secret == "" {
		secret = "default_secret"
	}

	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Missing or invalid authorization header"))
		}
		tokenStr := authHeader[7:]

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || token == nil || !token.Valid {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid or expired token"))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid token claims"))
		}

		role, ok := claims["role"].(string)
		if !ok {
			return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(403, "Access denied: Role missing"))
		}
		if role != "admin" {
			return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(403, "Access denied: Admins only"))
		}

		if userId, exists := claims["user_id"]; exists {
			ctx.Locals("user_id", userId)
		}
		return ctx.Next()
	}
}

// ReviewerId returns the admin id stored by AdminMiddleware, or "".
func ReviewerId(ctx *fiber.Ctx) string {
	id, _ := ctx.Locals("user_id").(string)
	return id
}
