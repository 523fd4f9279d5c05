package helper

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	// SessionTokenTTL bounds a login token.
	SessionTokenTTL = time.Hour
	// ResetTokenTTL bounds a password-reset token. The persisted
	// expiry on the user record uses the same value and is the only
	// authority when the token is redeemed.
	ResetTokenTTL = 30 * time.Minute
)

type Auth struct {
	Secret string
}

func SetupAuth(secret string) Auth {
	return Auth{Secret: secret}
}

// TokenClaims is what a session token carries.
type TokenClaims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// ResetClaims is what a password-reset token carries.
type ResetClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func (a Auth) HashPassword(plain string) (string, error) {
	if strings.TrimSpace(plain) == "" {
		return "", errors.New("password is required")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.New("failed to hash password")
	}
	return string(hashed), nil
}

func (a Auth) VerifyPassword(plain, hashed string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)); err != nil {
		return errors.New("invalid email or password")
	}
	return nil
}

func (a Auth) GenerateToken(userID uint, role string) (string, error) {
	if userID == 0 || role == "" {
		return "", errors.New("required inputs are missing to generate token")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, TokenClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTokenTTL)),
		},
	})

	tokenStr, err := token.SignedString([]byte(a.Secret))
	if err != nil {
		return "", errors.New("unable to sign the token")
	}
	return tokenStr, nil
}

func (a Auth) VerifyToken(tokenString string) (TokenClaims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return TokenClaims{}, errors.New("missing token")
	}

	// support both "Bearer <token>" and "<token>"
	if strings.HasPrefix(strings.ToLower(tokenString), "bearer ") {
		parts := strings.SplitN(tokenString, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
			return TokenClaims{}, errors.New("invalid token format")
		}
		tokenString = strings.TrimSpace(parts[1])
	}

	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(a.Secret), nil
	})
	if err != nil || !token.Valid {
		return TokenClaims{}, errors.New("invalid or expired token")
	}

	return *claims, nil
}

// GenerateResetToken signs a one-off token embedding the email claim.
// Redemption matches the stored token value and the stored expiry, so the
// embedded exp is informational for the mail link, not the authority.
func (a Auth) GenerateResetToken(email string) (string, error) {
	if strings.TrimSpace(email) == "" {
		return "", errors.New("email is required to generate reset token")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, ResetClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ResetTokenTTL)),
		},
	})

	tokenStr, err := token.SignedString([]byte(a.Secret))
	if err != nil {
		return "", errors.New("unable to sign the reset token")
	}
	return tokenStr, nil
}

func (a Auth) GetCurrentUser(ctx *fiber.Ctx) (TokenClaims, error) {
	u := ctx.Locals("user")
	claims, ok := u.(TokenClaims)
	if !ok {
		return TokenClaims{}, errors.New("missing auth user in context")
	}
	return claims, nil
}
