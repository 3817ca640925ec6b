package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"go-image-quality/pkg/quality"
)

// Storage backends accepted by STORAGE_BACKEND.
const (
	BackendHTTP  = "http"
	BackendAzure = "azure"
)

type Config struct {
	Host               string
	Port               string
	RequestTimeout     time.Duration
	ImageFetchTimeout  time.Duration
	MaxRequestBodySize int64

	// StorageBackend selects where images are fetched from.
	StorageBackend   string
	AzureAccountName string
	AzureAccountKey  string

	// QualityPreset names the threshold bundle used when a request does
	// not pick one itself.
	QualityPreset string

	// BatchConcurrency bounds parallel fetches during batch validation.
	BatchConcurrency int
}

func (c *Config) ServerAddress() string {
	host := strings.TrimSpace(c.Host)
	port := strings.TrimSpace(c.Port)
	return net.JoinHostPort(host, port)
}

func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Host:               getEnvOrDefault("HOST", "0.0.0.0"),
		Port:               getEnvOrDefault("PORT", "8080"),
		RequestTimeout:     parseDurationOrDefault("REQUEST_TIMEOUT", 30*time.Second),
		ImageFetchTimeout:  parseDurationOrDefault("IMAGE_FETCH_TIMEOUT", 15*time.Second),
		MaxRequestBodySize: parseIntOrDefault("MAX_REQUEST_BODY_SIZE", 10*1024*1024), // 10MB
		StorageBackend:     getEnvOrDefault("STORAGE_BACKEND", BackendHTTP),
		AzureAccountName:   os.Getenv("AZURE_STORAGE_ACCOUNT"),
		AzureAccountKey:    os.Getenv("AZURE_STORAGE_KEY"),
		QualityPreset:      getEnvOrDefault("QUALITY_PRESET", quality.PresetDefault),
		BatchConcurrency:   int(parseIntOrDefault("BATCH_CONCURRENCY", 4)),
	}

	p, err := strconv.Atoi(strings.TrimSpace(cfg.Port))
	if err != nil || p < 1 || p > 65535 {
		return nil, fmt.Errorf("invalid PORT: %q", cfg.Port)
	}
	if cfg.MaxRequestBodySize <= 0 {
		return nil, fmt.Errorf("MAX_REQUEST_BODY_SIZE must be > 0 (got %d)", cfg.MaxRequestBodySize)
	}
	if cfg.RequestTimeout <= 0 || cfg.ImageFetchTimeout <= 0 {
		return nil, fmt.Errorf("timeouts must be > 0 (got request=%s, fetch=%s)",
			cfg.RequestTimeout, cfg.ImageFetchTimeout)
	}
	if cfg.BatchConcurrency <= 0 {
		return nil, fmt.Errorf("BATCH_CONCURRENCY must be > 0 (got %d)", cfg.BatchConcurrency)
	}
	switch cfg.StorageBackend {
	case BackendHTTP:
	case BackendAzure:
		if cfg.AzureAccountName == "" || cfg.AzureAccountKey == "" {
			return nil, fmt.Errorf("AZURE_STORAGE_ACCOUNT and AZURE_STORAGE_KEY are required for the azure backend")
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND: %q", cfg.StorageBackend)
	}
	if _, err := quality.Preset(cfg.QualityPreset); err != nil {
		return nil, fmt.Errorf("invalid QUALITY_PRESET: %w", err)
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(strings.TrimSpace(value)); err == nil && duration > 0 {
			return duration
		}
	}
	return defaultValue
}

func parseIntOrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
