package api

import "time"

// swagger:model api.CarResponse
type CarResponse struct {
	ID        int       `json:"id" example:"7"`
	Title     string    `json:"title" example:"2019 Honda Civic"`
	Price     int64     `json:"price" example:"18500"`
	Mileage   int64     `json:"mileage" example:"42000"`
	Color     string    `json:"color" example:"red"`
	ImageURL  string    `json:"image_url" example:"https://cdn.example.com/civic.jpg"`
	CreatedAt time.Time `json:"created_at"`
}
