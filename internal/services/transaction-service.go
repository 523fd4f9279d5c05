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

type TransactionService interface {
	CreateTransaction(userID uint, input dto.TransactionCreateRequest) (*domain.Transaction, error)
	ListTransactions(actor helper.TokenClaims, filterUserID uint) ([]domain.Transaction, error)
	GetTransaction(actor helper.TokenClaims, id uint) (*domain.Transaction, error)
	DeleteTransaction(actor helper.TokenClaims, id uint) error
}

type transactionService struct {
	repo     repository.TransactionRepository
	userRepo repository.UserRepository
}

func NewTransactionService(repo repository.TransactionRepository, userRepo repository.UserRepository) TransactionService {
	return &transactionService{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (t *transactionService) CreateTransaction(userID uint, input dto.TransactionCreateRequest) (*domain.Transaction, error) {
	category := strings.TrimSpace(input.Category)

	if input.Amount == 0 {
		return nil, helper.BadRequest("amount must be non-zero")
	}
	if category == "" {
		return nil, helper.BadRequest("category is required")
	}

	user, err := t.userRepo.FindUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NotFound("user not found")
		}
		return nil, helper.Internal(err.Error())
	}

	occurredAt := time.Now()
	if input.OccurredAt != nil {
		occurredAt = *input.OccurredAt
	}

	txn := &domain.Transaction{
		UserID:     userID,
		Amount:     input.Amount,
		Category:   category,
		Note:       strings.TrimSpace(input.Note),
		OccurredAt: occurredAt,
	}

	created, err := t.repo.CreateTransaction(txn)
	if err != nil {
		return nil, helper.Internal(err.Error())
	}

	// two single-row writes, no cross-document transaction
	user.Balance += input.Amount
	if err := t.userRepo.SaveUser(user); err != nil {
		return nil, helper.Internal(err.Error())
	}

	return created, nil
}

func (t *transactionService) ListTransactions(actor helper.TokenClaims, filterUserID uint) ([]domain.Transaction, error) {
	userID := actor.UserID
	if filterUserID != 0 && filterUserID != actor.UserID {
		if actor.Role != domain.RoleAdmin {
			return nil, helper.Forbidden("cannot list another user's transactions")
		}
		userID = filterUserID
	}

	txns, err := t.repo.ListTransactionsByUser(userID)
	if err != nil {
		return nil, helper.Internal(err.Error())
	}
	return txns, nil
}

func (t *transactionService) GetTransaction(actor helper.TokenClaims, id uint) (*domain.Transaction, error) {
	txn, err := t.repo.FindTransactionByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NotFound("transaction not found")
		}
		return nil, helper.Internal(err.Error())
	}

	if txn.UserID != actor.UserID && actor.Role != domain.RoleAdmin {
		return nil, helper.Forbidden("cannot access another user's transaction")
	}
	return txn, nil
}

func (t *transactionService) DeleteTransaction(actor helper.TokenClaims, id uint) error {
	txn, err := t.GetTransaction(actor, id)
	if err != nil {
		return err
	}

	if err := t.repo.DeleteTransaction(txn); err != nil {
		return helper.Internal(err.Error())
	}

	user, err := t.userRepo.FindUserByID(txn.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return helper.Internal(err.Error())
	}

	user.Balance -= txn.Amount
	if err := t.userRepo.SaveUser(user); err != nil {
		return helper.Internal(err.Error())
	}
	return nil
}
