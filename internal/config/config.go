package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Database
		Auth
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Path string
	}
	Auth struct {
		// Secret signs access tokens. Loaded once at startup; rotating it
		// invalidates every previously issued token.
		Secret string
		// TokenTTL bounds access token validity.
		TokenTTL time.Duration
		// PBKDF2Iterations is the work factor for password hashing.
		PBKDF2Iterations int
		// Maintainers may call the dev-only maintenance endpoints.
		Maintainers []string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

// DefaultDatabasePath is the default path for the application database.
const DefaultDatabasePath = "./miniblog.db"

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8000)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)

	// Auth defaults
	v.SetDefault("auth_secret", "")
	v.SetDefault("auth_token_ttl", "30m")
	v.SetDefault("auth_pbkdf2_iterations", 29000)
	v.SetDefault("auth_maintainers", "dim")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Auth: Auth{
			Secret:           v.GetString("AUTH_SECRET"),
			TokenTTL:         v.GetDuration("AUTH_TOKEN_TTL"),
			PBKDF2Iterations: v.GetInt("AUTH_PBKDF2_ITERATIONS"),
			Maintainers:      v.GetStringSlice("AUTH_MAINTAINERS"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}
