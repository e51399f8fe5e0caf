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

	JWTSecret   string        `env:"JWT_SECRET"`
	JWTLifetime time.Duration `env:"JWT_LIFETIME, default=24h"`
	// TestUserID is the principal excluded from profile mutations.
	TestUserID string `env:"TEST_USER_ID, default=6425dda09222784de0f5e6c0"`

	OTPTTL      time.Duration `env:"OTP_TTL,      default=4m"`
	OTPCooldown time.Duration `env:"OTP_COOLDOWN, default=60s"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=logistics"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// IsProduction reports whether the service is running in the production
// environment. Non-production deployments echo OTP codes in API responses.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
