package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"car-lot/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newContext(auth string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestExtractClaims(t *testing.T) {
	// missing header
	ctx, _ := newContext("")
	_, err := extractClaims(ctx, "testsecret")
	require.Error(t, err)

	// bad format
	ctx, _ = newContext("BadHeader")
	_, err = extractClaims(ctx, "testsecret")
	require.Error(t, err)

	// invalid token
	ctx, _ = newContext("Bearer invalid")
	_, err = extractClaims(ctx, "testsecret")
	require.Error(t, err)

	// expired token
	expired, err := service.IssueAccessToken(1, "testsecret", -time.Second)
	require.NoError(t, err)
	ctx, _ = newContext("Bearer " + expired)
	_, err = extractClaims(ctx, "testsecret")
	require.Error(t, err)

	// valid token
	tok, err := service.IssueAccessToken(1, "testsecret", time.Minute)
	require.NoError(t, err)
	ctx, _ = newContext("Bearer " + tok)
	claims, err := extractClaims(ctx, "testsecret")
	require.NoError(t, err)
	require.Equal(t, 1, claims.UserID)
}

func TestRequireAuth(t *testing.T) {
	tok, err := service.IssueAccessToken(2, "secret", time.Minute)
	require.NoError(t, err)

	// success path
	ctx, rec := newContext("Bearer " + tok)
	called := false
	handler := RequireAuth("secret")(func(c echo.Context) error {
		called = true
		cl := c.Get(ContextUserKey).(*service.CustomClaims)
		require.Equal(t, 2, cl.UserID)
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(ctx))
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)

	// missing token
	ctx, _ = newContext("")
	called = false
	err = RequireAuth("secret")(func(echo.Context) error { called = true; return nil })(ctx)
	require.Error(t, err)
	require.False(t, called)

	// token signed with another secret
	otherTok, err := service.IssueAccessToken(2, "other", time.Minute)
	require.NoError(t, err)
	ctx, _ = newContext("Bearer " + otherTok)
	err = RequireAuth("secret")(func(echo.Context) error { return nil })(ctx)
	require.Error(t, err)
}
