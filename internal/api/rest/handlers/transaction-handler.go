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

type TransactionHandler struct {
	svc  services.TransactionService
	auth helper.Auth
}

func NewTransactionHandler(svc services.TransactionService, auth helper.Auth) *TransactionHandler {
	return &TransactionHandler{svc: svc, auth: auth}
}

func (h *TransactionHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api/transactions",
		middleware.TokenRequired(h.auth),
		middleware.RoleRequired(domain.RoleUser, domain.RoleAdmin),
	)

	api.Post("/", h.CreateTransaction)
	api.Get("/", h.ListTransactions)
	api.Get("/:id", h.GetTransaction)
	api.Delete("/:id", h.DeleteTransaction)
}

func (h *TransactionHandler) CreateTransaction(ctx *fiber.Ctx) error {
	actor, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	var requestBody dto.TransactionCreateRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	txn, err := h.svc.CreateTransaction(actor.UserID, requestBody)
	if err != nil {
		return utils.ResponseError(ctx, helper.StatusOf(err), err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, "transaction created successfully", txn)
}

func (h *TransactionHandler) ListTransactions(ctx *fiber.Ctx) error {
	actor, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	filter := ctx.QueryInt("user_id")
	if filter < 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid user_id filter")
	}

	txns, err := h.svc.ListTransactions(actor, uint(filter))
	if err != nil {
		return utils.ResponseError(ctx, helper.StatusOf(err), err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "transactions fetched successfully", txns)
}

func (h *TransactionHandler) GetTransaction(ctx *fiber.Ctx) error {
	actor, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid transaction id")
	}

	txn, err := h.svc.GetTransaction(actor, uint(id))
	if err != nil {
		return utils.ResponseError(ctx, helper.StatusOf(err), err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "transaction fetched successfully", txn)
}

func (h *TransactionHandler) DeleteTransaction(ctx *fiber.Ctx) error {
	actor, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid transaction id")
	}

	if err := h.svc.DeleteTransaction(actor, uint(id)); err != nil {
		return utils.ResponseError(ctx, helper.StatusOf(err), err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "transaction deleted successfully", nil)
}
