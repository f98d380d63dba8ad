// File: internal/model/car.go
package model

import "time"

type Car struct {
	ID        int       `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Price     int64     `db:"price" json:"price"`
	Mileage   int64     `db:"mileage" json:"mileage"`
	Color     string    `db:"color" json:"color"`
	ImageURL  string    `db:"image_url" json:"image_url"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
