// Package config loads application settings from the environment and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"todo_backend/internal/platform/db"
)

// Config is the fully resolved application configuration.
type Config struct {
	Port     string
	LogLevel string
	GinMode  string
	DB       db.Config
	Redis    RedisConfig
	CacheTTL time.Duration
}

// RedisConfig holds the Redis connection settings.
// An empty Host disables caching.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

// Enabled reports whether a Redis host was configured.
func (r RedisConfig) Enabled() bool {
	return r.Host != ""
}

// Addr returns host:port for the Redis client.
func (r RedisConfig) Addr() string {
	return r.Host + ":" + r.Port
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("GIN_MODE", "release")

	v.SetDefault("DB_DRIVER", db.DriverSQLite)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "todo")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_PATH", "todo.db")
	v.SetDefault("DB_CONNECT_TIMEOUT", 60*time.Second)

	v.SetDefault("REDIS_HOST", "")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("CACHE_TTL", 5*time.Minute)
}

// Load resolves configuration from, in order of precedence: environment variables,
// a config.yml found in one of configPaths, and built-in defaults.
// A missing config file is not an error.
func Load(configPaths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range configPaths {
		v.AddConfigPath(p)
	}
	if len(configPaths) > 0 {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	return &Config{
		Port:     v.GetString("PORT"),
		LogLevel: v.GetString("LOG_LEVEL"),
		GinMode:  v.GetString("GIN_MODE"),
		DB: db.Config{
			Driver:         v.GetString("DB_DRIVER"),
			Host:           v.GetString("DB_HOST"),
			Port:           v.GetString("DB_PORT"),
			User:           v.GetString("DB_USER"),
			Password:       v.GetString("DB_PASSWORD"),
			Name:           v.GetString("DB_NAME"),
			SSLMode:        v.GetString("DB_SSLMODE"),
			Path:           v.GetString("DB_PATH"),
			ConnectTimeout: v.GetDuration("DB_CONNECT_TIMEOUT"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
		},
		CacheTTL: v.GetDuration("CACHE_TTL"),
	}, nil
}
