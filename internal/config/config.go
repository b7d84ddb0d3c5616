package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config is the process configuration, read from the environment.
type Config struct {
	DatabaseURL       string        `env:"DATABASE_URL,required"`
	DBMaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS,default=25"`
	DBMaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS,default=5"`
	DBConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME,default=5m"`

	Port            int           `env:"APP_PORT,default=8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT,default=15s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT,default=15s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT,default=60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`

	// Identity provider session token verification. One of the two keys is required.
	AuthPublicKeyPEM string `env:"AUTH_PUBLIC_KEY_PEM"`
	AuthHMACSecret   string `env:"AUTH_HMAC_SECRET"`
	AuthIssuer       string `env:"AUTH_ISSUER"`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS,default=20"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST,default=40"`
}

// loadEnvFiles reads the optional env files (".env" when none given) into the
// process environment. A missing env file is not an error.
func loadEnvFiles(envFiles ...string) error {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

// Load reads the env files and decodes the environment.
func Load(envFiles ...string) (*Config, error) {
	if err := loadEnvFiles(envFiles...); err != nil {
		return nil, err
	}

	var cfg Config
	if err := envdecode.StrictDecode(&cfg); err != nil {
		return nil, fmt.Errorf("decode environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDatabase reads only what the migrate command needs.
func LoadDatabase(envFiles ...string) (string, error) {
	if err := loadEnvFiles(envFiles...); err != nil {
		return "", err
	}
	var cfg struct {
		DatabaseURL string `env:"DATABASE_URL,required"`
	}
	if err := envdecode.StrictDecode(&cfg); err != nil {
		return "", fmt.Errorf("decode environment: %w", err)
	}
	return cfg.DatabaseURL, nil
}

// LoadLogLevel reads LOG_LEVEL after the env files, so the logger can be
// built before the rest of the configuration is decoded.
func LoadLogLevel(envFiles ...string) (string, error) {
	if err := loadEnvFiles(envFiles...); err != nil {
		return "", err
	}
	var cfg struct {
		LogLevel string `env:"LOG_LEVEL,default=info"`
	}
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return "", fmt.Errorf("decode environment: %w", err)
	}
	return cfg.LogLevel, nil
}

func (c *Config) validate() error {
	if c.AuthPublicKeyPEM == "" && c.AuthHMACSecret == "" {
		return errors.New("one of AUTH_PUBLIC_KEY_PEM or AUTH_HMAC_SECRET is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid APP_PORT %d", c.Port)
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string { return fmt.Sprintf(":%d", c.Port) }
