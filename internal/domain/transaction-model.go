package domain

import (
	"time"

	"gorm.io/gorm"
)

// Transaction is a single income (positive amount) or expense (negative
// amount) entry. Creating one applies the amount to the owner's balance,
// deleting one reverses it.
type Transaction struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	Amount     float64   `gorm:"not null" json:"amount"`
	Category   string    `gorm:"not null" json:"category"`
	Note       string    `json:"note,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`

	gorm.Model
}
