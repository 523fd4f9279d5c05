package repository

import (
	"errors"

	"github.com/it22188236/Expense-Tracker-App/internal/domain"
	"gorm.io/gorm"
)

type BudgetRepository interface {
	CreateBudget(budget *domain.Budget) (*domain.Budget, error)
	FindBudgetByID(id uint) (*domain.Budget, error)
	ListBudgetsByUser(userID uint) ([]domain.Budget, error)
	SaveBudget(budget *domain.Budget) error
	DeleteBudget(budget *domain.Budget) error
}

type budgetRepository struct {
	db *gorm.DB
}

func NewBudgetRepository(db *gorm.DB) BudgetRepository {
	return &budgetRepository{db: db}
}

func (r *budgetRepository) CreateBudget(budget *domain.Budget) (*domain.Budget, error) {
	if budget == nil {
		return nil, errors.New("nil budget")
	}
	if err := r.db.Create(budget).Error; err != nil {
		return nil, err
	}
	return budget, nil
}

func (r *budgetRepository) FindBudgetByID(id uint) (*domain.Budget, error) {
	budget := &domain.Budget{}
	if err := r.db.First(budget, id).Error; err != nil {
		return nil, err
	}
	return budget, nil
}

func (r *budgetRepository) ListBudgetsByUser(userID uint) ([]domain.Budget, error) {
	var budgets []domain.Budget
	if err := r.db.Where("user_id = ?", userID).Order("month desc").Find(&budgets).Error; err != nil {
		return nil, err
	}
	return budgets, nil
}

func (r *budgetRepository) SaveBudget(budget *domain.Budget) error {
	if budget == nil {
		return errors.New("nil budget")
	}
	return r.db.Save(budget).Error
}

func (r *budgetRepository) DeleteBudget(budget *domain.Budget) error {
	if budget == nil {
		return errors.New("nil budget")
	}
	return r.db.Delete(budget).Error
}
