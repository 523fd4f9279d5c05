package domain

import "gorm.io/gorm"

// Budget caps spending for one category in one month. The unique index
// makes the store reject a second budget for the same user+category+month.
type Budget struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	UserID   uint    `gorm:"not null;uniqueIndex:uidx_budgets_user_category_month" json:"user_id"`
	Category string  `gorm:"not null;uniqueIndex:uidx_budgets_user_category_month" json:"category"`
	Month    string  `gorm:"type:varchar(7);not null;uniqueIndex:uidx_budgets_user_category_month" json:"month"`
	Limit    float64 `gorm:"not null" json:"limit"`

	gorm.Model
}
