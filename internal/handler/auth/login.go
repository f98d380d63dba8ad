// File: internal/handler/auth/login.go
package auth

import (
	"net/http"
	"strings"

	"car-lot/internal/api"
	"car-lot/internal/database"
	"car-lot/internal/service"
	"car-lot/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	comparePassword  = service.ComparePassword
	issueAccessToken = service.IssueAccessToken
	loginGetUser     = store.GetUserByEmail
)

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description 使用 Email 與 Password 進行驗證，成功回傳有效一小時的存取令牌
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.LoginRequest true "登入資料"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /login [post]
func LoginHandler(db database.DB, secret string) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		// 撈使用者資料
		user, err := loginGetUser(c.Request().Context(), db, strings.ToLower(req.Email))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "User not found"})
		}

		// 驗證密碼
		if err := comparePassword(user.PasswordHash, req.Password); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Invalid credentials"})
		}

		// 發行存取令牌
		token, err := issueAccessToken(user.ID, secret, service.AccessTokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Login failed"})
		}

		return c.JSON(http.StatusOK, api.LoginResponse{Token: token})
	}
}
