package services

import (
	"errors"
	"strings"
	"time"

	"github.com/it22188236/Expense-Tracker-App/internal/domain"
	"github.com/it22188236/Expense-Tracker-App/internal/dto"
	"github.com/it22188236/Expense-Tracker-App/internal/helper"
	"github.com/it22188236/Expense-Tracker-App/internal/notify"
	"github.com/it22188236/Expense-Tracker-App/internal/repository"
	"gorm.io/gorm"
)

type UserService interface {
	// Auth
	Register(input dto.RegisterRequest) (*domain.User, error)
	Login(input dto.UserLogin) (*domain.User, error)
	ForgotPassword(email string) error
	ResetPassword(token, password string) error

	// User CRUD
	ListUsers() ([]domain.User, error)
	GetUser(userID uint) (*domain.User, error)
	UpdateUser(actor helper.TokenClaims, userID uint, input dto.UpdateUserRequest) (*domain.User, error)
	DeleteUser(userID uint) error
}

type userService struct {
	repo   repository.UserRepository
	auth   helper.Auth
	mailer notify.Sender
}

func NewUserService(repo repository.UserRepository, auth helper.Auth, mailer notify.Sender) UserService {
	return &userService{
		repo:   repo,
		auth:   auth,
		mailer: mailer,
	}
}

func (u *userService) Register(input dto.RegisterRequest) (*domain.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(strings.ToLower(input.Email))
	role := strings.TrimSpace(strings.ToLower(input.Role))

	if name == "" || email == "" || strings.TrimSpace(input.Password) == "" {
		return nil, helper.BadRequest("name, email and password are required")
	}
	if len(input.Password) < 6 {
		return nil, helper.BadRequest("password must be at least 6 characters")
	}
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, helper.BadRequest("role must be user or admin")
	}

	// friendly pre-check; the unique index on email is the real enforcer
	existing, err := u.repo.FindUserByEmail(email)
	if err == nil && existing != nil && existing.ID != 0 {
		return nil, helper.BadRequest("email already exists")
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.Internal(err.Error())
	}

	hashed, err := u.auth.HashPassword(input.Password)
	if err != nil {
		return nil, helper.Internal(err.Error())
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
		Role:         role,
	}

	created, err := u.repo.CreateUser(user)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, helper.BadRequest("email already exists")
		}
		return nil, helper.Internal(err.Error())
	}
	return created, nil
}

func (u *userService) Login(input dto.UserLogin) (*domain.User, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	password := strings.TrimSpace(input.Password)

	if email == "" || password == "" {
		return nil, helper.BadRequest("email and password are required")
	}

	user, err := u.repo.FindUserByEmail(email)
	if err != nil || user == nil || user.ID == 0 {
		return nil, helper.BadRequest("invalid email or password")
	}

	if err := u.auth.VerifyPassword(password, user.PasswordHash); err != nil {
		return nil, helper.BadRequest("invalid email or password")
	}

	return user, nil
}

func (u *userService) ForgotPassword(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return helper.BadRequest("email is required")
	}

	user, err := u.repo.FindUserByEmail(email)
	if err != nil || user == nil || user.ID == 0 {
		return helper.NotFound("user not found")
	}

	token, err := u.auth.GenerateResetToken(user.Email)
	if err != nil {
		return helper.Internal(err.Error())
	}

	// reissuing overwrites any previous token, so at most one is live
	exp := time.Now().Add(helper.ResetTokenTTL)
	user.ResetToken = token
	user.ResetTokenExpiresAt = &exp
	if err := u.repo.SaveUser(user); err != nil {
		return helper.Internal(err.Error())
	}

	if u.mailer != nil {
		_ = u.mailer.SendResetLink(user, token, exp)
	}

	return nil
}

func (u *userService) ResetPassword(token, password string) error {
	token = strings.TrimSpace(token)
	password = strings.TrimSpace(password)

	if token == "" || password == "" {
		return helper.BadRequest("token and password are required")
	}
	if len(password) < 6 {
		return helper.BadRequest("password must be at least 6 characters")
	}

	user, err := u.repo.FindUserByResetToken(token)
	if err != nil || user == nil || user.ID == 0 {
		return helper.BadRequest("invalid or expired reset token")
	}

	// the persisted expiry is the sole authority
	if user.ResetTokenExpiresAt == nil || time.Now().After(*user.ResetTokenExpiresAt) {
		return helper.BadRequest("invalid or expired reset token")
	}

	hashed, err := u.auth.HashPassword(password)
	if err != nil {
		return helper.Internal(err.Error())
	}

	user.PasswordHash = hashed
	user.ResetToken = ""
	user.ResetTokenExpiresAt = nil

	if err := u.repo.SaveUser(user); err != nil {
		return helper.Internal(err.Error())
	}
	return nil
}

func (u *userService) ListUsers() ([]domain.User, error) {
	users, err := u.repo.ListUsers()
	if err != nil {
		return nil, helper.Internal(err.Error())
	}
	return users, nil
}

func (u *userService) GetUser(userID uint) (*domain.User, error) {
	user, err := u.repo.FindUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NotFound("user not found")
		}
		return nil, helper.Internal(err.Error())
	}
	return user, nil
}

func (u *userService) UpdateUser(actor helper.TokenClaims, userID uint, input dto.UpdateUserRequest) (*domain.User, error) {
	if actor.Role != domain.RoleAdmin && actor.UserID != userID {
		return nil, helper.Forbidden("cannot update another user")
	}

	user, err := u.GetUser(userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, helper.BadRequest("name cannot be empty")
		}
		user.Name = name
	}

	if input.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*input.Email))
		if email == "" {
			return nil, helper.BadRequest("email cannot be empty")
		}
		user.Email = email
	}

	if input.Balance != nil {
		user.Balance = *input.Balance
	}

	if input.Role != nil {
		if actor.Role != domain.RoleAdmin {
			return nil, helper.Forbidden("only admin can change roles")
		}
		role := strings.TrimSpace(strings.ToLower(*input.Role))
		if !domain.ValidRole(role) {
			return nil, helper.BadRequest("role must be user or admin")
		}
		user.Role = role
	}

	if err := u.repo.SaveUser(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, helper.BadRequest("email already exists")
		}
		return nil, helper.Internal(err.Error())
	}
	return user, nil
}

func (u *userService) DeleteUser(userID uint) error {
	user, err := u.GetUser(userID)
	if err != nil {
		return err
	}
	if err := u.repo.DeleteUser(user); err != nil {
		return helper.Internal(err.Error())
	}
	return nil
}
