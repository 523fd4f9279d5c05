package utils

import "github.com/gofiber/fiber/v2"

func ResponseError(ctx *fiber.Ctx, status int, msg string) error {
	return ctx.Status(status).JSON(fiber.Map{
		"error": msg,
	})
}

func ResponseSuccess(ctx *fiber.Ctx, status int, message string, data interface{}) error {
	body := fiber.Map{"message": message}
	if data != nil {
		body["data"] = data
	}
	return ctx.Status(status).JSON(body)
}
