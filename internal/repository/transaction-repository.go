package repository

import (
	"errors"

	"github.com/it22188236/Expense-Tracker-App/internal/domain"
	"gorm.io/gorm"
)

type TransactionRepository interface {
	CreateTransaction(txn *domain.Transaction) (*domain.Transaction, error)
	FindTransactionByID(id uint) (*domain.Transaction, error)
	ListTransactionsByUser(userID uint) ([]domain.Transaction, error)
	DeleteTransaction(txn *domain.Transaction) error
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) CreateTransaction(txn *domain.Transaction) (*domain.Transaction, error) {
	if txn == nil {
		return nil, errors.New("nil transaction")
	}
	if err := r.db.Create(txn).Error; err != nil {
		return nil, err
	}
	return txn, nil
}

func (r *transactionRepository) FindTransactionByID(id uint) (*domain.Transaction, error) {
	txn := &domain.Transaction{}
	if err := r.db.First(txn, id).Error; err != nil {
		return nil, err
	}
	return txn, nil
}

func (r *transactionRepository) ListTransactionsByUser(userID uint) ([]domain.Transaction, error) {
	var txns []domain.Transaction
	if err := r.db.Where("user_id = ?", userID).Order("occurred_at desc").Find(&txns).Error; err != nil {
		return nil, err
	}
	return txns, nil
}

func (r *transactionRepository) DeleteTransaction(txn *domain.Transaction) error {
	if txn == nil {
		return errors.New("nil transaction")
	}
	return r.db.Delete(txn).Error
}
