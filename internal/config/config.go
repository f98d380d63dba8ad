// File: internal/config/config.go
package config

import (
	"github.com/ilyakaznacheev/cleanenv"
)

// Config 服務啟動所需的全部設定，啟動時讀取一次並往下注入
type Config struct {
	DatabaseURL   string `env:"DATABASE_URL" env-required:"true"`
	RedisAddr     string `env:"REDIS_ADDR" env-required:"true"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" env-default:"0"`
	JWTSecret     string `env:"JWT_SECRET" env-required:"true"`
	ListenAddr    string `env:"LISTEN_ADDR" env-default:":8080"`
	WorkerCount   int    `env:"WORKER_COUNT" env-default:"1"`
}

// Load 從環境變數讀取設定
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
