package api

// UpdateCarRequest 部分更新：未出現的欄位保持原值
// swagger:model api.UpdateCarRequest
type UpdateCarRequest struct {
	Title    *string `json:"title" validate:"omitempty,min=1" example:"2019 Honda Civic EX"`
	Price    *int64  `json:"price" validate:"omitempty,min=0" example:"17900"`
	Mileage  *int64  `json:"mileage" validate:"omitempty,min=0" example:"43200"`
	Color    *string `json:"color" validate:"omitempty,min=1" example:"blue"`
	ImageURL *string `json:"image_url" validate:"omitempty,url" example:"https://cdn.example.com/civic-ex.jpg"`
}
