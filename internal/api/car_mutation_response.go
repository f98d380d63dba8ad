package api

// swagger:model api.CarMutationResponse
type CarMutationResponse struct {
	Message string      `json:"message" example:"Car added successfully!"`
	Car     CarResponse `json:"car"`
}
