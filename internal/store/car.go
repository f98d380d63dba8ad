package store

import (
	"context"
	"fmt"
	"strings"

	"car-lot/internal/database"
	"car-lot/internal/model"

	"github.com/jackc/pgx/v5"
)

// CarFilter 查詢條件，nil 欄位表示不限制
// 數值為含上限 (<=)，Color 為完全相等
type CarFilter struct {
	MaxPrice   *int64
	MaxMileage *int64
	Color      *string
}

func CreateCar(ctx context.Context, db database.DB, car *model.Car) (*model.Car, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO cars (title, price, mileage, color, image_url)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		car.Title,
		car.Price,
		car.Mileage,
		car.Color,
		car.ImageURL,
	)
	if err := row.Scan(&car.ID, &car.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateCar: %w", err)
	}
	return car, nil
}

func GetCarByID(ctx context.Context, db database.DB, carID int) (*model.Car, error) {
	row := db.QueryRow(ctx,
		`SELECT id, title, price, mileage, color, image_url, created_at
		 FROM cars WHERE id = $1`,
		carID,
	)
	car := &model.Car{}
	if err := row.Scan(
		&car.ID,
		&car.Title,
		&car.Price,
		&car.Mileage,
		&car.Color,
		&car.ImageURL,
		&car.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetCarByID: %w", err)
	}
	return car, nil
}

func ListCars(ctx context.Context, db database.DB, filter CarFilter) ([]model.Car, error) {
	query := `SELECT id, title, price, mileage, color, image_url, created_at FROM cars`
	var conds []string
	var args []any
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		conds = append(conds, fmt.Sprintf("price <= $%d", len(args)))
	}
	if filter.MaxMileage != nil {
		args = append(args, *filter.MaxMileage)
		conds = append(conds, fmt.Sprintf("mileage <= $%d", len(args)))
	}
	if filter.Color != nil {
		args = append(args, *filter.Color)
		conds = append(conds, fmt.Sprintf("color = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id"

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListCars: %w", err)
	}
	defer rows.Close()

	var cars []model.Car
	for rows.Next() {
		var car model.Car
		if err := rows.Scan(
			&car.ID,
			&car.Title,
			&car.Price,
			&car.Mileage,
			&car.Color,
			&car.ImageURL,
			&car.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListCars: %w", err)
		}
		cars = append(cars, car)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListCars: %w", err)
	}
	return cars, nil
}

// CarPatch 部分更新內容，nil 欄位保持原值
type CarPatch struct {
	Title    *string
	Price    *int64
	Mileage  *int64
	Color    *string
	ImageURL *string
}

func UpdateCar(ctx context.Context, db database.DB, carID int, patch CarPatch) (*model.Car, error) {
	row := db.QueryRow(ctx,
		`UPDATE cars
		 SET title     = COALESCE($1, title),
		     price     = COALESCE($2, price),
		     mileage   = COALESCE($3, mileage),
		     color     = COALESCE($4, color),
		     image_url = COALESCE($5, image_url)
		 WHERE id = $6
		 RETURNING id, title, price, mileage, color, image_url, created_at`,
		patch.Title,
		patch.Price,
		patch.Mileage,
		patch.Color,
		patch.ImageURL,
		carID,
	)
	car := &model.Car{}
	if err := row.Scan(
		&car.ID,
		&car.Title,
		&car.Price,
		&car.Mileage,
		&car.Color,
		&car.ImageURL,
		&car.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("UpdateCar: %w", err)
	}
	return car, nil
}

func DeleteCar(ctx context.Context, db database.DB, carID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM cars WHERE id = $1`,
		carID,
	)
	if err != nil {
		return fmt.Errorf("DeleteCar: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteCar: %w", pgx.ErrNoRows)
	}
	return nil
}
