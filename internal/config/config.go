package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// GameServer holds all configuration for the battle server.
type GameServer struct {
	// Identity
	ServerName string `yaml:"server_name" env:"BESTIA_SERVER_NAME"`

	// Logging: debug, info, warn, error
	LogLevel string `yaml:"log_level" env:"BESTIA_LOG_LEVEL"`

	// Database
	Database DatabaseConfig `yaml:"database"`

	// Telemetry. Empty endpoint disables the trace exporter.
	OTLPEndpoint string `yaml:"otlp_endpoint" env:"BESTIA_OTLP_ENDPOINT"`

	// Battle sessions
	SessionSweepSeconds int `yaml:"session_sweep_seconds" env:"BESTIA_SESSION_SWEEP_SECONDS"`
	SessionIdleSeconds  int `yaml:"session_idle_seconds" env:"BESTIA_SESSION_IDLE_SECONDS"`

	// Roster autosave interval. 0 disables the loop.
	AutosaveSeconds int `yaml:"autosave_seconds" env:"BESTIA_AUTOSAVE_SECONDS"`

	// Balance file path. Empty means built-in defaults.
	BalancePath string `yaml:"balance_path" env:"BESTIA_BALANCE_PATH"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host" env:"BESTIA_DB_HOST"`
	Port     int    `yaml:"port" env:"BESTIA_DB_PORT"`
	User     string `yaml:"user" env:"BESTIA_DB_USER"`
	Password string `yaml:"password" env:"BESTIA_DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"BESTIA_DB_NAME"`
	SSLMode  string `yaml:"sslmode" env:"BESTIA_DB_SSLMODE"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultGameServer returns GameServer config with sensible defaults.
func DefaultGameServer() GameServer {
	return GameServer{
		ServerName:          "bestia-1",
		LogLevel:            "info",
		SessionSweepSeconds: 60,
		SessionIdleSeconds:  600,
		AutosaveSeconds:     300,
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "bestia",
			Password: "bestia",
			DBName:   "bestia",
			SSLMode:  "disable",
		},
	}
}

// LoadGameServer loads server config from a YAML file, then applies
// environment overrides. A missing file yields defaults.
func LoadGameServer(path string) (GameServer, error) {
	cfg := DefaultGameServer()

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("applying env overrides: %w", err)
	}

	return cfg, nil
}
