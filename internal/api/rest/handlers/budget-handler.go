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

type BudgetHandler struct {
	svc  services.BudgetService
	auth helper.Auth
}

func NewBudgetHandler(svc services.BudgetService, auth helper.Auth) *BudgetHandler {
	return &BudgetHandler{svc: svc, auth: auth}
}

func (h *BudgetHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api/budgets",
		middleware.TokenRequired(h.auth),
		middleware.RoleRequired(domain.RoleUser, domain.RoleAdmin),
	)

	api.Post("/", h.CreateBudget)
	api.Get("/", h.ListBudgets)
	api.Put("/:id", h.UpdateBudget)
	api.Delete("/:id", h.DeleteBudget)
}

func (h *BudgetHandler) CreateBudget(ctx *fiber.Ctx) error {
	actor, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	var requestBody dto.BudgetCreateRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	budget, err := h.svc.CreateBudget(actor.UserID, requestBody)
	if err != nil {
		return utils.ResponseError(ctx, helper.StatusOf(err), err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, "budget created successfully", budget)
}

func (h *BudgetHandler) ListBudgets(ctx *fiber.Ctx) error {
	actor, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	budgets, err := h.svc.ListBudgets(actor.UserID)
	if err != nil {
		return utils.ResponseError(ctx, helper.StatusOf(err), err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "budgets fetched successfully", budgets)
}

func (h *BudgetHandler) UpdateBudget(ctx *fiber.Ctx) error {
	actor, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid budget id")
	}

	var requestBody dto.BudgetUpdateRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	budget, err := h.svc.UpdateBudget(actor, uint(id), requestBody)
	if err != nil {
		return utils.ResponseError(ctx, helper.StatusOf(err), err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "budget updated successfully", budget)
}

func (h *BudgetHandler) DeleteBudget(ctx *fiber.Ctx) error {
	actor, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid budget id")
	}

	if err := h.svc.DeleteBudget(actor, uint(id)); err != nil {
		return utils.ResponseError(ctx, helper.StatusOf(err), err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "budget deleted successfully", nil)
}
