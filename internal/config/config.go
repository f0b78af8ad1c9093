// internal/config/config.go
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"finledger/pkg/db"
)

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	ServerPort string    `env:"SERVER_PORT" envDefault:"8080"`
	JWTSecret  string    `env:"JWT_SECRET" envDefault:"devsecret"`
	DB         db.Config `envPrefix:"DB_"`
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*AppConfig, error) {
	cfg := AppConfig{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
