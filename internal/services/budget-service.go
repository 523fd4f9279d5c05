package services

import (
	"errors"
	"strings"
	"time"

	"github.com/it22188236/Expense-Tracker-App/internal/domain"
	"github.com/it22188236/Expense-Tracker-App/internal/dto"
	"github.com/it22188236/Expense-Tracker-App/internal/helper"
	"github.com/it22188236/Expense-Tracker-App/internal/repository"
	"gorm.io/gorm"
)

type BudgetService interface {
	CreateBudget(userID uint, input dto.BudgetCreateRequest) (*domain.Budget, error)
	ListBudgets(userID uint) ([]domain.Budget, error)
	UpdateBudget(actor helper.TokenClaims, id uint, input dto.BudgetUpdateRequest) (*domain.Budget, error)
	DeleteBudget(actor helper.TokenClaims, id uint) error
}

type budgetService struct {
	repo repository.BudgetRepository
}

func NewBudgetService(repo repository.BudgetRepository) BudgetService {
	return &budgetService{repo: repo}
}

func (b *budgetService) CreateBudget(userID uint, input dto.BudgetCreateRequest) (*domain.Budget, error) {
	category := strings.TrimSpace(input.Category)
	month := strings.TrimSpace(input.Month)

	if category == "" {
		return nil, helper.BadRequest("category is required")
	}
	if input.Limit <= 0 {
		return nil, helper.BadRequest("limit must be greater than zero")
	}
	if _, err := time.Parse("2006-01", month); err != nil {
		return nil, helper.BadRequest("month must be in YYYY-MM format")
	}

	budget := &domain.Budget{
		UserID:   userID,
		Category: category,
		Month:    month,
		Limit:    input.Limit,
	}

	created, err := b.repo.CreateBudget(budget)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, helper.BadRequest("budget already exists for this category and month")
		}
		return nil, helper.Internal(err.Error())
	}
	return created, nil
}

func (b *budgetService) ListBudgets(userID uint) ([]domain.Budget, error) {
	budgets, err := b.repo.ListBudgetsByUser(userID)
	if err != nil {
		return nil, helper.Internal(err.Error())
	}
	return budgets, nil
}

func (b *budgetService) getOwned(actor helper.TokenClaims, id uint) (*domain.Budget, error) {
	budget, err := b.repo.FindBudgetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NotFound("budget not found")
		}
		return nil, helper.Internal(err.Error())
	}
	if budget.UserID != actor.UserID && actor.Role != domain.RoleAdmin {
		return nil, helper.Forbidden("cannot access another user's budget")
	}
	return budget, nil
}

func (b *budgetService) UpdateBudget(actor helper.TokenClaims, id uint, input dto.BudgetUpdateRequest) (*domain.Budget, error) {
	budget, err := b.getOwned(actor, id)
	if err != nil {
		return nil, err
	}

	if input.Limit != nil {
		if *input.Limit <= 0 {
			return nil, helper.BadRequest("limit must be greater than zero")
		}
		budget.Limit = *input.Limit
	}

	if err := b.repo.SaveBudget(budget); err != nil {
		return nil, helper.Internal(err.Error())
	}
	return budget, nil
}

func (b *budgetService) DeleteBudget(actor helper.TokenClaims, id uint) error {
	budget, err := b.getOwned(actor, id)
	if err != nil {
		return err
	}
	if err := b.repo.DeleteBudget(budget); err != nil {
		return helper.Internal(err.Error())
	}
	return nil
}
