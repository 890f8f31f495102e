package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Data  DataConfig
	Cache CacheConfig
	HTTP  HTTPConfig
}

// DataConfig points at the directory holding the mongoexport JSON files.
type DataConfig struct {
	Dir string `validate:"required"`
}

type CacheConfig struct {
	Size int `validate:"gt=0"`
}

type HTTPConfig struct {
	Addr              string        `validate:"required"`
	ReadHeaderTimeout time.Duration `validate:"gt=0"`
	ReadTimeout       time.Duration `validate:"gt=0"`
	WriteTimeout      time.Duration `validate:"gt=0"`
	ShutdownTimeout   time.Duration `validate:"gt=0"`
}

func Load() (*Config, error) {
	cfg := &Config{
		Data: DataConfig{
			Dir: getEnvRequired("DATA_DIR"),
		},
		Cache: CacheConfig{
			Size: getEnvInt("CACHE_SIZE", 32),
		},
		HTTP: HTTPConfig{
			Addr:              getEnvOrDefault("HTTP_ADDR", ":8900"),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
			ShutdownTimeout:   10 * time.Second,
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		slog.Error("Invalid configuration", "error", err)
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	info, err := os.Stat(cfg.Data.Dir)
	if err != nil {
		return nil, fmt.Errorf("data directory %s: %w", cfg.Data.Dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("data directory %s is not a directory", cfg.Data.Dir)
	}

	slog.Info("Configuration loaded",
		"data_dir", cfg.Data.Dir,
		"cache_size", cfg.Cache.Size,
		"http_addr", cfg.HTTP.Addr,
	)

	return cfg, nil
}

func getEnvRequired(key string) string {
	// Check for _FILE suffix
	if fileValue := os.Getenv(key + "_FILE"); fileValue != "" {
		content, err := os.ReadFile(fileValue)
		if err == nil {
			return strings.TrimSpace(string(content))
		}
	}

	value := os.Getenv(key)
	if value == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return value
}

func getEnvOrDefault(key, defaultValue string) string {
	// Check for _FILE suffix
	if fileValue := os.Getenv(key + "_FILE"); fileValue != "" {
		content, err := os.ReadFile(fileValue)
		if err == nil {
			return strings.TrimSpace(string(content))
		}
	}

	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}
