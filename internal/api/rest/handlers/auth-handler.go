package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/it22188236/Expense-Tracker-App/internal/api/rest/middleware"
	"github.com/it22188236/Expense-Tracker-App/internal/dto"
	"github.com/it22188236/Expense-Tracker-App/internal/helper"
	"github.com/it22188236/Expense-Tracker-App/internal/helper/utils"
	"github.com/it22188236/Expense-Tracker-App/internal/services"
)

type AuthHandler struct {
	svc  services.UserService
	auth helper.Auth
}

func NewAuthHandler(svc services.UserService, auth helper.Auth) *AuthHandler {
	return &AuthHandler{svc: svc, auth: auth}
}

func (h *AuthHandler) SetupRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
	auth.Post("/forgot-password", h.ForgotPassword)
	auth.Post("/reset-password/:token", h.ResetPassword)
}

func (h *AuthHandler) Register(ctx *fiber.Ctx) error {
	var requestBody dto.RegisterRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	user, err := h.svc.Register(requestBody)
	if err != nil {
		return utils.ResponseError(ctx, helper.StatusOf(err), err.Error())
	}

	return utils.ResponseSuccess(ctx, fiber.StatusCreated, "user registered successfully", user)
}

func (h *AuthHandler) Login(ctx *fiber.Ctx) error {
	var requestBody dto.UserLogin
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "email and password are required")
	}

	user, err := h.svc.Login(requestBody)
	if err != nil {
		return utils.ResponseError(ctx, helper.StatusOf(err), err.Error())
	}

	token, err := h.auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "could not generate token")
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    token,
		MaxAge:   int(helper.SessionTokenTTL.Seconds()),
		Expires:  time.Now().Add(helper.SessionTokenTTL),
		HTTPOnly: true,
	})

	return utils.ResponseSuccess(ctx, fiber.StatusOK, "login successful", fiber.Map{
		"token": token,
	})
}

func (h *AuthHandler) ForgotPassword(ctx *fiber.Ctx) error {
	var requestBody dto.ForgotPasswordRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide a valid email")
	}

	if err := h.svc.ForgotPassword(requestBody.Email); err != nil {
		return utils.ResponseError(ctx, helper.StatusOf(err), err.Error())
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, "password reset link sent", nil)
}

func (h *AuthHandler) ResetPassword(ctx *fiber.Ctx) error {
	var requestBody dto.ResetPasswordRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide a valid password")
	}

	if err := h.svc.ResetPassword(ctx.Params("token"), requestBody.Password); err != nil {
		return utils.ResponseError(ctx, helper.StatusOf(err), err.Error())
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, "password reset successfully", nil)
}
