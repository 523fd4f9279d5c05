package repository

import (
	"errors"

	"github.com/it22188236/Expense-Tracker-App/internal/domain"
	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(user *domain.User) (*domain.User, error)
	FindUserByEmail(email string) (*domain.User, error)
	FindUserByID(userID uint) (*domain.User, error)
	FindUserByResetToken(token string) (*domain.User, error)
	ListUsers() ([]domain.User, error)
	SaveUser(user *domain.User) error
	DeleteUser(user *domain.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, errors.New("nil user")
	}
	if err := r.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) FindUserByEmail(email string) (*domain.User, error) {
	user := &domain.User{}
	if err := r.db.First(user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) FindUserByID(userID uint) (*domain.User, error) {
	user := &domain.User{}
	if err := r.db.First(user, userID).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) FindUserByResetToken(token string) (*domain.User, error) {
	user := &domain.User{}
	if err := r.db.Where("reset_token = ?", token).First(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) ListUsers() ([]domain.User, error) {
	var users []domain.User
	if err := r.db.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) SaveUser(user *domain.User) error {
	if user == nil {
		return errors.New("nil user")
	}
	return r.db.Save(user).Error
}

func (r *userRepository) DeleteUser(user *domain.User) error {
	if user == nil {
		return errors.New("nil user")
	}
	return r.db.Delete(user).Error
}
