package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/it22188236/Expense-Tracker-App/internal/api/rest/middleware"
	"github.com/it22188236/Expense-Tracker-App/internal/domain"
	"github.com/it22188236/Expense-Tracker-App/internal/dto"
	"github.com/it22188236/Expense-Tracker-App/internal/helper"
	"github.com/it22188236/Expense-Tracker-App/internal/helper/utils"
	"github.com/it22188236/Expense-Tracker-App/internal/services"
)

type UserHandler struct {
	svc  services.UserService
	auth helper.Auth
}

func NewUserHandler(svc services.UserService, auth helper.Auth) *UserHandler {
	return &UserHandler{svc: svc, auth: auth}
}

func (h *UserHandler) SetupRoutes(app *fiber.App) {
	guard := middleware.TokenRequired(h.auth)

	app.Get("/users", guard, middleware.RoleRequired(domain.RoleAdmin), h.ListUsers)
	app.Get("/user/:id", guard, middleware.RoleRequired(domain.RoleUser, domain.RoleAdmin), h.GetUser)
	app.Put("/user/:id", guard, middleware.RoleRequired(domain.RoleUser, domain.RoleAdmin), h.UpdateUser)
	app.Delete("/user/:id", guard, middleware.RoleRequired(domain.RoleAdmin), h.DeleteUser)
}

func (h *UserHandler) ListUsers(ctx *fiber.Ctx) error {
	users, err := h.svc.ListUsers()
	if err != nil {
		return utils.ResponseError(ctx, helper.StatusOf(err), err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "users fetched successfully", users)
}

func (h *UserHandler) GetUser(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid user id")
	}

	user, err := h.svc.GetUser(uint(id))
	if err != nil {
		return utils.ResponseError(ctx, helper.StatusOf(err), err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "user fetched successfully", user)
}

func (h *UserHandler) UpdateUser(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid user id")
	}

	actor, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	var requestBody dto.UpdateUserRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	user, err := h.svc.UpdateUser(actor, uint(id), requestBody)
	if err != nil {
		return utils.ResponseError(ctx, helper.StatusOf(err), err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "user updated successfully", user)
}

func (h *UserHandler) DeleteUser(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid user id")
	}

	if err := h.svc.DeleteUser(uint(id)); err != nil {
		return utils.ResponseError(ctx, helper.StatusOf(err), err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "user deleted successfully", nil)
}
