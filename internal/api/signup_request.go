package api

// swagger:model api.SignupRequest
type SignupRequest struct {
	Email           string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password        string `json:"password" validate:"required" example:"Secret123!"`
	ConfirmPassword string `json:"confirmPassword" validate:"required" example:"Secret123!"`
}
