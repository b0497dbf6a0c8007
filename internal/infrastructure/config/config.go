package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Upstream UpstreamConfig
	Redis    RedisConfig
	Session  SessionConfig
}

// UpstreamConfig locates the ERP backend every domain call is forwarded
// to. BaseURL falls back to the production origin, mirroring the
// frontend build default.
type UpstreamConfig struct {
	BaseURL       string        `env:"UPSTREAM_BASE_URL,       default=https://tidesight.cloud"`
	RedirectDelay time.Duration `env:"UPSTREAM_REDIRECT_DELAY, default=1s"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SessionConfig struct {
	// Secret signs the session cookie ticket. Required.
	Secret        string        `env:"SESSION_SECRET"`
	TTL           time.Duration `env:"SESSION_TTL,            default=24h"`
	RefreshLeeway time.Duration `env:"SESSION_REFRESH_LEEWAY, default=2m"`
	CookieName    string        `env:"SESSION_COOKIE,         default=tidesight_session"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
