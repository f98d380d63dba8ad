// File: internal/handler/inventory/car.go
package inventory

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"car-lot/internal/api"
	"car-lot/internal/cache"
	"car-lot/internal/database"
	"car-lot/internal/model"
	"car-lot/internal/store"
	"car-lot/internal/worker"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

var (
	createCar = store.CreateCar
	listCars  = store.ListCars
	updateCar = store.UpdateCar
	deleteCar = store.DeleteCar
)

func toCarResponse(car *model.Car) api.CarResponse {
	return api.CarResponse{
		ID:        car.ID,
		Title:     car.Title,
		Price:     car.Price,
		Mileage:   car.Mileage,
		Color:     car.Color,
		ImageURL:  car.ImageURL,
		CreatedAt: car.CreatedAt,
	}
}

// CreateCarHandler 新增車輛至庫存
// @Summary     新增車輛
// @Description 接收完整車輛資料並建立庫存紀錄，五個欄位皆為必填
// @Tags        inventory
// @Accept      json
// @Produce     json
// @Param       request body api.CreateCarRequest true "車輛資料"
// @Success     200 {object} api.CarMutationResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /inventory [post]
func CreateCarHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateCarRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		car, err := createCar(c.Request().Context(), db, &model.Car{
			Title:    req.Title,
			Price:    *req.Price,
			Mileage:  *req.Mileage,
			Color:    req.Color,
			ImageURL: req.ImageURL,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Failed to add car"})
		}

		bumpListVersion(rdb, wp)
		return c.JSON(http.StatusOK, api.CarMutationResponse{
			Message: "Car added successfully!",
			Car:     toCarResponse(car),
		})
	}
}

// ListCarsHandler 依條件查詢庫存
// @Summary     查詢庫存
// @Description price/mileage 為含上限的數值條件，color 為完全比對，多條件取交集；無條件回傳全部
// @Tags        inventory
// @Produce     json
// @Param       price   query int    false "價格上限(含)"
// @Param       mileage query int    false "里程上限(含)"
// @Param       color   query string false "顏色(完全比對)"
// @Success     200 {array}  api.CarResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /inventory [get]
func ListCarsHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var filter store.CarFilter
		if v := c.QueryParam("price"); v != "" {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid price filter"})
			}
			filter.MaxPrice = &n
		}
		if v := c.QueryParam("mileage"); v != "" {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid mileage filter"})
			}
			filter.MaxMileage = &n
		}
		if v := c.QueryParam("color"); v != "" {
			filter.Color = &v
		}

		ver, useCache := listVersion(ctx, rdb)
		key := listCacheKey(ver, filter)
		if useCache {
			if raw, err := rdb.Get(ctx, key).Result(); err == nil {
				return c.JSONBlob(http.StatusOK, []byte(raw))
			}
		}

		cars, err := listCars(ctx, db, filter)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Failed to fetch cars"})
		}

		resp := make([]api.CarResponse, 0, len(cars))
		for i := range cars {
			resp = append(resp, toCarResponse(&cars[i]))
		}

		payload, err := json.Marshal(resp)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Failed to fetch cars"})
		}
		if useCache {
			_ = rdb.Set(ctx, key, payload, listCacheTTL).Err()
		}
		return c.JSONBlob(http.StatusOK, payload)
	}
}

// UpdateCarHandler 部分更新車輛資料
// @Summary     更新車輛
// @Description 僅更新請求中出現的欄位，其餘保持原值，回傳更新後完整紀錄
// @Tags        inventory
// @Accept      json
// @Produce     json
// @Param       id      path int                  true "車輛 ID"
// @Param       request body api.UpdateCarRequest true "異動欄位"
// @Success     200 {object} api.CarMutationResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /inventory/{id} [put]
func UpdateCarHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid car ID"})
		}

		var req api.UpdateCarRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		car, err := updateCar(c.Request().Context(), db, id, store.CarPatch{
			Title:    req.Title,
			Price:    req.Price,
			Mileage:  req.Mileage,
			Color:    req.Color,
			ImageURL: req.ImageURL,
		})
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "car not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Failed to update car"})
		}

		bumpListVersion(rdb, wp)
		return c.JSON(http.StatusOK, api.CarMutationResponse{
			Message: "Car updated successfully!",
			Car:     toCarResponse(car),
		})
	}
}

// DeleteCarHandler 自庫存移除車輛
// @Summary     刪除車輛
// @Description 依 ID 永久刪除庫存紀錄，重複刪除同一 ID 回 404
// @Tags        inventory
// @Produce     json
// @Param       id path int true "車輛 ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /inventory/{id} [delete]
func DeleteCarHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid car ID"})
		}

		if err := deleteCar(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "car not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Failed to delete car"})
		}

		bumpListVersion(rdb, wp)
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Car deleted successfully!"})
	}
}
