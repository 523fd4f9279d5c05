package notify

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/it22188236/Expense-Tracker-App/internal/domain"
	"github.com/it22188236/Expense-Tracker-App/internal/interfaces"
)

// Sender hands a reset link to the external mail-delivery collaborator.
type Sender interface {
	SendResetLink(user *domain.User, token string, expiresAt time.Time) error
}

// ResetMailEvent is the payload the mail service consumes.
type ResetMailEvent struct {
	UserID    uint   `json:"user_id"`
	Email     string `json:"email"`
	Link      string `json:"link"`
	ExpiresAt string `json:"expires_at"`
}

const resetMailKey = "user.reset_password"

type ResetMailer struct {
	producer interfaces.ProducerHandler
	baseURL  string
}

func NewResetMailer(producer interfaces.ProducerHandler, baseURL string) *ResetMailer {
	return &ResetMailer{
		producer: producer,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}
}

func (m *ResetMailer) SendResetLink(user *domain.User, token string, expiresAt time.Time) error {
	if m == nil || m.producer == nil {
		// mail outage must not fail the auth flow
		log.Println("reset mailer not ready - skip publish")
		return nil
	}

	event := ResetMailEvent{
		UserID:    user.ID,
		Email:     user.Email,
		Link:      fmt.Sprintf("%s/reset-password/%s", m.baseURL, url.PathEscape(token)),
		ExpiresAt: expiresAt.Format(time.RFC3339),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return m.producer.PublishMessage([]byte(resetMailKey), payload)
}
