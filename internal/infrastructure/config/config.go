package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// MongoConfig holds MongoDB connection settings.
type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=petcare"`
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// JWTConfig holds the shared token secret and expiry policy. The same
// secret is configured in every service so tokens verify without
// contacting the issuer.
type JWTConfig struct {
	Secret string        `env:"JWT_SECRET"`
	TTL    time.Duration `env:"JWT_TTL, default=24h"`
}

// AuthConfig configures the auth service.
type AuthConfig struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// UserServiceURL is the base URL of the user service, which owns
	// the credential and profile stores.
	UserServiceURL string        `env:"USER_SERVICE_URL, default=http://localhost:8081"`
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT, default=5s"`

	// Login throttling.
	MaxLoginFailures int64         `env:"MAX_LOGIN_FAILURES, default=5"`
	LoginWindow      time.Duration `env:"LOGIN_WINDOW,       default=15m"`

	JWT   JWTConfig
	Redis RedisConfig
}

// UserConfig configures the user service.
type UserConfig struct {
	Port     string `env:"PORT,      default=8081"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWT   JWTConfig
	Mongo MongoConfig
}

// PetConfig configures the pet service.
type PetConfig struct {
	Port     string `env:"PORT,      default=8082"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	UserServiceURL  string        `env:"USER_SERVICE_URL, default=http://localhost:8081"`
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT, default=5s"`

	JWT   JWTConfig
	Mongo MongoConfig
}

// LoadAuth reads the auth-service configuration from the environment.
func LoadAuth(ctx context.Context) (*AuthConfig, error) {
	var cfg AuthConfig
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// LoadUser reads the user-service configuration from the environment.
func LoadUser(ctx context.Context) (*UserConfig, error) {
	var cfg UserConfig
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// LoadPet reads the pet-service configuration from the environment.
func LoadPet(ctx context.Context) (*PetConfig, error) {
	var cfg PetConfig
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
