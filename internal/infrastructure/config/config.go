package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is the process configuration, loaded once at startup. A .env file in
// the working directory acts as an overlay on the real environment (loaded by
// main before Process runs).
type Config struct {
	Port       string `env:"PORT,        default=8080"`
	Env        string `env:"ENV,         default=development"`
	LogLevel   string `env:"LOG_LEVEL,   default=info"`
	JWTSecret  string `env:"JWT_SECRET"`
	BcryptCost int    `env:"BCRYPT_COST, default=12"`
	// SessionTimeoutMs is the inactivity window after which a login expires.
	SessionTimeoutMs int64 `env:"SESSION_TIMEOUT_MS, default=3600000"`
	// SeedOnStart populates default records when collections are empty.
	SeedOnStart bool `env:"SEED_ON_START, default=true"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=yacht_rental"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// SessionTimeout returns the session window as a duration.
func (c *Config) SessionTimeout() time.Duration {
	return time.Duration(c.SessionTimeoutMs) * time.Millisecond
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
