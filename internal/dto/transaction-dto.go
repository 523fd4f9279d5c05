package dto

import "time"

type TransactionCreateRequest struct {
	Amount     float64    `json:"amount" validate:"required"`
	Category   string     `json:"category" validate:"required"`
	Note       string     `json:"note,omitempty"`
	OccurredAt *time.Time `json:"occurred_at,omitempty"`
}
