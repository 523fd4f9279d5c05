package dto

type BudgetCreateRequest struct {
	Category string  `json:"category" validate:"required"`
	Month    string  `json:"month" validate:"required"`
	Limit    float64 `json:"limit" validate:"required,gt=0"`
}

type BudgetUpdateRequest struct {
	Limit *float64 `json:"limit,omitempty"`
}
