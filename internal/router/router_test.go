// File: internal/router/router_test.go
package router

import (
	"net/http"
	"testing"

	"car-lot/internal/cache"
	"car-lot/internal/config"
	"car-lot/internal/database"
	"car-lot/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	wp := worker.NewPool(1)
	defer wp.Stop()
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, wp, &config.Config{JWTSecret: "s"})

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /api/ping",
		http.MethodPost + " /api/signup",
		http.MethodPost + " /api/login",
		http.MethodGet + " /api/inventory",
		http.MethodPost + " /api/inventory",
		http.MethodPut + " /api/inventory/:id",
		http.MethodDelete + " /api/inventory/:id",
	}

	require.Equal(t, len(expected), len(got))
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}
