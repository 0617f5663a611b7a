package configs

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// AppConfig holds every setting the API and the database CLI read from the environment.
type AppConfig struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Port string `env:"APP_PORT" envDefault:"3000"`

	DB DatabaseConfig

	// ActiveEditionYear is the edition the backfill marks active.
	ActiveEditionYear int `env:"ACTIVE_EDITION_YEAR" envDefault:"2026"`

	AdminName     string `env:"ADMIN_NAME" envDefault:"RISTCON Admin"`
	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@ristcon.ruh.ac.lk"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	CORSAllowOrigins string `env:"CORS_ALLOW_ORIGINS" envDefault:"*"`
}

type DatabaseConfig struct {
	Host         string `env:"DB_HOST" envDefault:"localhost"`
	Port         string `env:"DB_PORT" envDefault:"5432"`
	User         string `env:"DB_USER" envDefault:"postgres"`
	Password     string `env:"DB_PASSWORD"`
	Name         string `env:"DB_NAME" envDefault:"ristcon"`
	SSLMode      string `env:"DB_SSLMODE" envDefault:"disable"`
	TimeZone     string `env:"DB_TIMEZONE" envDefault:"UTC"`
	MaxOpenConns int    `env:"DB_MAX_OPEN_CONNS" envDefault:"20"`
	MaxIdleConns int    `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`
}

// DSN returns the key/value connection string understood by pgx.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode, c.TimeZone)
}

var cfg *AppConfig

// Load reads .env (when present) and parses the environment into AppConfig.
// The result is cached; later calls return the same instance.
func Load() (*AppConfig, error) {
	if cfg != nil {
		return cfg, nil
	}
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("loading .env: %w", err)
		}
	}

	parsed := &AppConfig{}
	if err := env.Parse(parsed); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	cfg = parsed
	return cfg, nil
}

// Get returns the loaded config. It panics if Load has not succeeded yet.
func Get() *AppConfig {
	if cfg == nil {
		panic("configs: Get called before Load")
	}
	return cfg
}

func (c *AppConfig) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// AllowedOrigins splits CORS_ALLOW_ORIGINS for the fiber cors middleware.
func (c *AppConfig) AllowedOrigins() string {
	parts := strings.Split(c.CORSAllowOrigins, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return strings.Join(parts, ",")
}
