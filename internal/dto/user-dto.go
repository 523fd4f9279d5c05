package dto

type UpdateUserRequest struct {
	Name    *string  `json:"name,omitempty"`
	Email   *string  `json:"email,omitempty"`
	Balance *float64 `json:"balance,omitempty"`

	// Role changes are admin only.
	Role *string `json:"role,omitempty"`
}
