// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"car-lot/internal/cache"
	"car-lot/internal/config"
	"car-lot/internal/database"
	"car-lot/internal/handler"
	"car-lot/internal/handler/auth"
	"car-lot/internal/handler/inventory"
	"car-lot/internal/middleware"
	"car-lot/internal/worker"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, wp worker.Pool, cfg *config.Config) {
	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(db))

	// 註冊與登入
	api.POST("/signup", auth.SignupHandler(db))
	api.POST("/login", auth.LoginHandler(db, cfg.JWTSecret))

	// 庫存查詢開放匿名，異動需通過令牌驗證
	api.GET("/inventory", inventory.ListCarsHandler(db, rdb))

	requireAuth := middleware.RequireAuth(cfg.JWTSecret)
	api.POST("/inventory", inventory.CreateCarHandler(db, rdb, wp), requireAuth)
	api.PUT("/inventory/:id", inventory.UpdateCarHandler(db, rdb, wp), requireAuth)
	api.DELETE("/inventory/:id", inventory.DeleteCarHandler(db, rdb, wp), requireAuth)
}
