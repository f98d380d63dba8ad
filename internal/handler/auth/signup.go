// File: internal/handler/auth/signup.go
package auth

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"car-lot/internal/api"
	"car-lot/internal/database"
	"car-lot/internal/model"
	"car-lot/internal/service"
	"car-lot/internal/store"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
)

var (
	hashPassword   = service.HashPassword
	createUser     = store.CreateUser
	getUserByEmail = store.GetUserByEmail
)

// uniqueViolation Postgres 唯一鍵衝突
const uniqueViolation = "23505"

// SignupHandler 建立新帳號
// @Summary     註冊使用者
// @Description 接收 Email 與密碼建立新帳號 (Email 會自動轉小寫)，註冊不發放令牌，需另行登入
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.SignupRequest true "註冊資料"
// @Success     201 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /signup [post]
func SignupHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SignupRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		// 密碼確認不符時不進入任何儲存層操作
		if req.Password != req.ConfirmPassword {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Passwords do not match"})
		}

		req.Email = strings.ToLower(req.Email)
		if _, err := mail.ParseAddress(req.Email); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid email format"})
		}

		// 先行檢查僅供早期回報，同信箱併發註冊由 users.email 唯一索引把關
		if _, err := getUserByEmail(c.Request().Context(), db, req.Email); err == nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Email already in use"})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Failed to create user"})
		}

		if _, err := createUser(c.Request().Context(), db, &model.User{
			Email:        req.Email,
			PasswordHash: hash,
		}); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Email already in use"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Failed to create user"})
		}

		return c.JSON(http.StatusCreated, api.MessageResponse{Message: "User created successfully!"})
	}
}
