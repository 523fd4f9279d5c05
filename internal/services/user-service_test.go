package services_test

import (
	"testing"
	"time"

	"github.com/it22188236/Expense-Tracker-App/internal/domain"
	"github.com/it22188236/Expense-Tracker-App/internal/dto"
	"github.com/it22188236/Expense-Tracker-App/internal/helper"
	"github.com/it22188236/Expense-Tracker-App/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	nextID uint
	users  map[uint]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*domain.User{}}
}

func (f *fakeUserRepo) CreateUser(user *domain.User) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == user.Email {
			return nil, gorm.ErrDuplicatedKey
		}
	}
	f.nextID++
	user.ID = f.nextID
	cp := *user
	f.users[user.ID] = &cp
	return user, nil
}

func (f *fakeUserRepo) FindUserByEmail(email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindUserByID(userID uint) (*domain.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) FindUserByResetToken(token string) (*domain.User, error) {
	if token == "" {
		return nil, gorm.ErrRecordNotFound
	}
	for _, u := range f.users {
		if u.ResetToken == token {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) ListUsers() ([]domain.User, error) {
	var users []domain.User
	for _, u := range f.users {
		users = append(users, *u)
	}
	return users, nil
}

func (f *fakeUserRepo) SaveUser(user *domain.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) DeleteUser(user *domain.User) error {
	delete(f.users, user.ID)
	return nil
}

type fakeSender struct {
	sent []sentMail
}

type sentMail struct {
	email     string
	token     string
	expiresAt time.Time
}

func (f *fakeSender) SendResetLink(user *domain.User, token string, expiresAt time.Time) error {
	f.sent = append(f.sent, sentMail{email: user.Email, token: token, expiresAt: expiresAt})
	return nil
}

func newUserService(t *testing.T) (services.UserService, *fakeUserRepo, *fakeSender, helper.Auth) {
	t.Helper()
	repo := newFakeUserRepo()
	sender := &fakeSender{}
	auth := helper.SetupAuth("test-secret")
	return services.NewUserService(repo, auth, sender), repo, sender, auth
}

func TestRegister(t *testing.T) {
	t.Run("stores a hash, never the plaintext", func(t *testing.T) {
		svc, repo, _, auth := newUserService(t)

		user, err := svc.Register(dto.RegisterRequest{
			Name: "A", Email: "a@x.com", Password: "P1secret",
		})
		require.NoError(t, err)
		require.NotZero(t, user.ID)

		stored := repo.users[user.ID]
		assert.NotEqual(t, "P1secret", stored.PasswordHash)
		assert.NoError(t, auth.VerifyPassword("P1secret", stored.PasswordHash))
		assert.Equal(t, domain.RoleUser, stored.Role)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc, _, _, _ := newUserService(t)

		for _, input := range []dto.RegisterRequest{
			{Email: "a@x.com", Password: "P1secret"},
			{Name: "A", Password: "P1secret"},
			{Name: "A", Email: "a@x.com"},
		} {
			_, err := svc.Register(input)
			require.Error(t, err)
			assert.Equal(t, 400, helper.StatusOf(err))
		}
	})

	t.Run("duplicate email always fails", func(t *testing.T) {
		svc, _, _, _ := newUserService(t)

		_, err := svc.Register(dto.RegisterRequest{Name: "A", Email: "a@x.com", Password: "P1secret"})
		require.NoError(t, err)

		_, err = svc.Register(dto.RegisterRequest{Name: "B", Email: "a@x.com", Password: "other-pass"})
		require.Error(t, err)
		assert.Equal(t, 400, helper.StatusOf(err))
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("email is matched case-insensitively", func(t *testing.T) {
		svc, _, _, _ := newUserService(t)

		_, err := svc.Register(dto.RegisterRequest{Name: "A", Email: "A@X.com", Password: "P1secret"})
		require.NoError(t, err)

		_, err = svc.Register(dto.RegisterRequest{Name: "B", Email: "a@x.com", Password: "P1secret"})
		assert.Error(t, err)
	})

	t.Run("role outside the enum is rejected", func(t *testing.T) {
		svc, _, _, _ := newUserService(t)

		_, err := svc.Register(dto.RegisterRequest{
			Name: "A", Email: "a@x.com", Password: "P1secret", Role: "superuser",
		})
		require.Error(t, err)
		assert.Equal(t, 400, helper.StatusOf(err))
	})

	t.Run("admin role accepted when explicit", func(t *testing.T) {
		svc, _, _, _ := newUserService(t)

		user, err := svc.Register(dto.RegisterRequest{
			Name: "A", Email: "a@x.com", Password: "P1secret", Role: "admin",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, user.Role)
	})
}

func TestLogin(t *testing.T) {
	svc, _, _, _ := newUserService(t)

	_, err := svc.Register(dto.RegisterRequest{Name: "A", Email: "a@x.com", Password: "P1secret"})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Login(dto.UserLogin{Email: "a@x.com", Password: "P1secret"})
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", user.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(dto.UserLogin{Email: "a@x.com", Password: "wrong"})
		require.Error(t, err)
		assert.Equal(t, 400, helper.StatusOf(err))
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(dto.UserLogin{Email: "b@x.com", Password: "P1secret"})
		require.Error(t, err)
		assert.Equal(t, 400, helper.StatusOf(err))
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.Login(dto.UserLogin{Email: "a@x.com"})
		require.Error(t, err)
		assert.Equal(t, 400, helper.StatusOf(err))
	})
}

func TestForgotPassword(t *testing.T) {
	t.Run("unknown email is not found", func(t *testing.T) {
		svc, _, sender, _ := newUserService(t)

		err := svc.ForgotPassword("nobody@x.com")
		require.Error(t, err)
		assert.Equal(t, 404, helper.StatusOf(err))
		assert.Empty(t, sender.sent)
	})

	t.Run("persists token and notifies", func(t *testing.T) {
		svc, repo, sender, _ := newUserService(t)

		user, err := svc.Register(dto.RegisterRequest{Name: "A", Email: "a@x.com", Password: "P1secret"})
		require.NoError(t, err)

		require.NoError(t, svc.ForgotPassword("a@x.com"))

		stored := repo.users[user.ID]
		require.NotEmpty(t, stored.ResetToken)
		require.NotNil(t, stored.ResetTokenExpiresAt)
		assert.WithinDuration(t, time.Now().Add(helper.ResetTokenTTL), *stored.ResetTokenExpiresAt, time.Minute)

		require.Len(t, sender.sent, 1)
		assert.Equal(t, "a@x.com", sender.sent[0].email)
		assert.Equal(t, stored.ResetToken, sender.sent[0].token)
	})

	t.Run("reissue overwrites the previous token", func(t *testing.T) {
		svc, repo, _, _ := newUserService(t)

		user, err := svc.Register(dto.RegisterRequest{Name: "A", Email: "a@x.com", Password: "P1secret"})
		require.NoError(t, err)

		require.NoError(t, svc.ForgotPassword("a@x.com"))
		first := repo.users[user.ID].ResetToken

		time.Sleep(1100 * time.Millisecond) // distinct iat
		require.NoError(t, svc.ForgotPassword("a@x.com"))
		second := repo.users[user.ID].ResetToken

		require.NotEqual(t, first, second)

		// the overwritten token is unusable even though unexpired
		err = svc.ResetPassword(first, "NewPass1")
		require.Error(t, err)
		assert.Equal(t, 400, helper.StatusOf(err))

		assert.NoError(t, svc.ResetPassword(second, "NewPass1"))
	})
}

func TestResetPassword(t *testing.T) {
	setup := func(t *testing.T) (services.UserService, *fakeUserRepo, uint, string) {
		svc, repo, _, _ := newUserService(t)
		user, err := svc.Register(dto.RegisterRequest{Name: "A", Email: "a@x.com", Password: "P1secret"})
		require.NoError(t, err)
		require.NoError(t, svc.ForgotPassword("a@x.com"))
		return svc, repo, user.ID, repo.users[user.ID].ResetToken
	}

	t.Run("valid token rotates the secret and clears the fields", func(t *testing.T) {
		svc, repo, userID, token := setup(t)

		require.NoError(t, svc.ResetPassword(token, "P2secret"))

		stored := repo.users[userID]
		assert.Empty(t, stored.ResetToken)
		assert.Nil(t, stored.ResetTokenExpiresAt)

		_, err := svc.Login(dto.UserLogin{Email: "a@x.com", Password: "P1secret"})
		assert.Error(t, err)
		_, err = svc.Login(dto.UserLogin{Email: "a@x.com", Password: "P2secret"})
		assert.NoError(t, err)
	})

	t.Run("token is single use", func(t *testing.T) {
		svc, _, _, token := setup(t)

		require.NoError(t, svc.ResetPassword(token, "P2secret"))
		err := svc.ResetPassword(token, "P3secret")
		require.Error(t, err)
		assert.Equal(t, 400, helper.StatusOf(err))
	})

	t.Run("expired token rejected", func(t *testing.T) {
		svc, repo, userID, token := setup(t)

		past := time.Now().Add(-time.Minute)
		repo.users[userID].ResetTokenExpiresAt = &past

		err := svc.ResetPassword(token, "P2secret")
		require.Error(t, err)
		assert.Equal(t, 400, helper.StatusOf(err))

		// old password still verifies, nothing was mutated
		_, err = svc.Login(dto.UserLogin{Email: "a@x.com", Password: "P1secret"})
		assert.NoError(t, err)
	})

	t.Run("non-matching token rejected", func(t *testing.T) {
		svc, _, _, _ := setup(t)

		err := svc.ResetPassword("no-such-token", "P2secret")
		require.Error(t, err)
		assert.Equal(t, 400, helper.StatusOf(err))
	})

	t.Run("missing password rejected", func(t *testing.T) {
		svc, _, _, token := setup(t)

		err := svc.ResetPassword(token, "")
		require.Error(t, err)
		assert.Equal(t, 400, helper.StatusOf(err))
	})
}

func TestUpdateUser(t *testing.T) {
	setup := func(t *testing.T) (services.UserService, uint, uint) {
		svc, _, _, _ := newUserService(t)
		alice, err := svc.Register(dto.RegisterRequest{Name: "Alice", Email: "alice@x.com", Password: "P1secret"})
		require.NoError(t, err)
		bob, err := svc.Register(dto.RegisterRequest{Name: "Bob", Email: "bob@x.com", Password: "P1secret"})
		require.NoError(t, err)
		return svc, alice.ID, bob.ID
	}

	t.Run("self update allowed", func(t *testing.T) {
		svc, aliceID, _ := setup(t)

		name := "Alice Updated"
		actor := helper.TokenClaims{UserID: aliceID, Role: domain.RoleUser}
		user, err := svc.UpdateUser(actor, aliceID, dto.UpdateUserRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Alice Updated", user.Name)
	})

	t.Run("updating another user is forbidden", func(t *testing.T) {
		svc, aliceID, bobID := setup(t)

		name := "hijacked"
		actor := helper.TokenClaims{UserID: aliceID, Role: domain.RoleUser}
		_, err := svc.UpdateUser(actor, bobID, dto.UpdateUserRequest{Name: &name})
		require.Error(t, err)
		assert.Equal(t, 403, helper.StatusOf(err))
	})

	t.Run("admin may update anyone", func(t *testing.T) {
		svc, aliceID, bobID := setup(t)

		name := "Bob Renamed"
		actor := helper.TokenClaims{UserID: aliceID, Role: domain.RoleAdmin}
		user, err := svc.UpdateUser(actor, bobID, dto.UpdateUserRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Bob Renamed", user.Name)
	})

	t.Run("role change requires admin", func(t *testing.T) {
		svc, aliceID, _ := setup(t)

		role := domain.RoleAdmin
		actor := helper.TokenClaims{UserID: aliceID, Role: domain.RoleUser}
		_, err := svc.UpdateUser(actor, aliceID, dto.UpdateUserRequest{Role: &role})
		require.Error(t, err)
		assert.Equal(t, 403, helper.StatusOf(err))
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		svc, aliceID, _ := setup(t)

		name := "x"
		actor := helper.TokenClaims{UserID: aliceID, Role: domain.RoleAdmin}
		_, err := svc.UpdateUser(actor, 999, dto.UpdateUserRequest{Name: &name})
		require.Error(t, err)
		assert.Equal(t, 404, helper.StatusOf(err))
	})
}

func TestDeleteUser(t *testing.T) {
	svc, _, _, _ := newUserService(t)

	user, err := svc.Register(dto.RegisterRequest{Name: "A", Email: "a@x.com", Password: "P1secret"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(user.ID))

	_, err = svc.GetUser(user.ID)
	require.Error(t, err)
	assert.Equal(t, 404, helper.StatusOf(err))

	err = svc.DeleteUser(999)
	require.Error(t, err)
	assert.Equal(t, 404, helper.StatusOf(err))
}
