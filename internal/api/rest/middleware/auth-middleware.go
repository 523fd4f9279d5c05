package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/it22188236/Expense-Tracker-App/internal/helper"
)

// AuthCookieName is the http-only cookie a successful login sets.
const AuthCookieName = "authToken"

// TokenRequired validates the bearer token from the authToken cookie or
// the Authorization header and attaches the decoded claims to the request.
func TokenRequired(auth helper.Auth) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := strings.TrimSpace(ctx.Cookies(AuthCookieName))
		if tokenStr == "" {
			tokenStr = strings.TrimSpace(ctx.Get("Authorization"))
		}

		claims, err := auth.VerifyToken(tokenStr)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		ctx.Locals("userID", claims.UserID)
		ctx.Locals("user", claims)
		return ctx.Next()
	}
}

// RoleRequired allows the request through only when the authenticated role
// is in the allow-list. Runs after TokenRequired.
func RoleRequired(roles ...string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		claims, ok := ctx.Locals("user").(helper.TokenClaims)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "unauthorized",
			})
		}

		for _, role := range roles {
			if claims.Role == role {
				return ctx.Next()
			}
		}

		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "insufficient role",
		})
	}
}
