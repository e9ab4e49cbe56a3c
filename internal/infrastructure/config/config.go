package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret has no fallback: the process refuses to start without it.
	JWTSecret       string `env:"JWT_SECRET, required"`
	TokenTTLMinutes int    `env:"TOKEN_TTL_MINUTES, default=60"`

	UploadDir            string `env:"UPLOAD_DIR, default=static/profile_pics"`
	RenderTimeoutSeconds int    `env:"RENDER_TIMEOUT_SECONDS, default=10"`

	DB DBConfig
}

type DBConfig struct {
	// Driver selects the gorm dialector: "postgres" or "sqlite".
	Driver string `env:"DB_DRIVER, default=postgres"`
	DSN    string `env:"DB_DSN,    default=host=localhost user=invoicing password=invoicing dbname=invoicing port=5432 sslmode=disable"`
}

// Load reads configuration from environment variables using go-envconfig.
// It returns an error (rather than panicking) so main can decide how to exit.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
