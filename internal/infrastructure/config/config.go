package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	// APIBaseURL is the backend API root, including the /api path segment.
	APIBaseURL string `env:"CRAFTLINK_API_URL, default=http://localhost:5000/api"`

	// SessionFile holds the persisted token and cached user record. When
	// empty, ~/.config/craftlink/session.json is used.
	SessionFile string `env:"CRAFTLINK_SESSION_FILE"`

	LogLevel    string        `env:"CRAFTLINK_LOG_LEVEL, default=info"`
	HTTPTimeout time.Duration `env:"CRAFTLINK_HTTP_TIMEOUT, default=30s"`
}

// Load reads configuration from the environment, after loading a local .env
// file when one exists.
func Load(ctx context.Context) (*Config, error) {
	// Missing .env is the normal case; only real parse errors matter.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	if cfg.SessionFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		cfg.SessionFile = filepath.Join(home, ".config", "craftlink", "session.json")
	}

	return &cfg, nil
}
