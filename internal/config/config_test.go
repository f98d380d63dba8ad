package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://user:pw@localhost:5432/carlot")
	t.Setenv("REDIS_ADDR", "127.0.0.1:6379")
	t.Setenv("JWT_SECRET", "s3cret")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "postgres://user:pw@localhost:5432/carlot", cfg.DatabaseURL)
	require.Equal(t, "127.0.0.1:6379", cfg.RedisAddr)
	require.Equal(t, "s3cret", cfg.JWTSecret)
	require.Equal(t, "", cfg.RedisPassword)
	require.Equal(t, 0, cfg.RedisDB)
	require.Equal(t, ":8080", cfg.ListenAddr)
	require.Equal(t, 1, cfg.WorkerCount)
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REDIS_PASSWORD", "pw")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("LISTEN_ADDR", ":9000")
	t.Setenv("WORKER_COUNT", "4")
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "pw", cfg.RedisPassword)
	require.Equal(t, 2, cfg.RedisDB)
	require.Equal(t, ":9000", cfg.ListenAddr)
	require.Equal(t, 4, cfg.WorkerCount)
}

func TestLoadMissingRequired(t *testing.T) {
	setRequiredEnv(t)
	os.Unsetenv("JWT_SECRET")
	_, err := Load()
	require.Error(t, err)
}

func TestLoadBadNumber(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REDIS_DB", "not-a-number")
	_, err := Load()
	require.Error(t, err)
}
