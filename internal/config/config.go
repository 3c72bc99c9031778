// Package config loads service settings from environment variables.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all service settings, populated from environment variables.
// CLI flags layer on top of it; the struct itself is immutable after Load.
type Config struct {
	TemplateDir       string
	TemplateCacheSize int

	LogLevel  string
	LogFormat string

	// Watch mode settings.
	HTTPAddr        string
	ShutdownTimeout time.Duration
	WatchDebounce   time.Duration

	KafkaBrokers []string
	KafkaTopic   string
}

// KafkaEnabled reports whether extracted records should also be published to
// Kafka. The sink is on exactly when brokers are configured.
func (c *Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	debounce, err := parseDuration("WATCH_DEBOUNCE", 500*time.Millisecond)
	if err != nil {
		return nil, err
	}

	cacheSize, err := parseCacheSize()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		TemplateDir:       os.Getenv("TEMPLATE_DIR"),
		TemplateCacheSize: cacheSize,
		LogLevel:          envOrDefault("LOG_LEVEL", "info"),
		LogFormat:         envOrDefault("LOG_FORMAT", "text"),
		HTTPAddr:          envOrDefault("HTTP_ADDR", ":8080"),
		ShutdownTimeout:   shutdownTimeout,
		WatchDebounce:     debounce,
		KafkaBrokers:      parseBrokers(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:        envOrDefault("KAFKA_TOPIC", "hydrology-records"),
	}

	if cfg.TemplateDir != "" {
		info, err := os.Stat(cfg.TemplateDir)
		if err != nil {
			return nil, errors.New("TEMPLATE_DIR does not exist: " + cfg.TemplateDir)
		}
		if !info.IsDir() {
			return nil, errors.New("TEMPLATE_DIR is not a directory: " + cfg.TemplateDir)
		}
	}
	if cfg.KafkaEnabled() && cfg.KafkaTopic == "" {
		return nil, errors.New("KAFKA_BROKERS is set but KAFKA_TOPIC is empty")
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDuration(key string, def time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, errors.New("invalid " + key)
	}
	return d, nil
}

func parseCacheSize() (int, error) {
	s := os.Getenv("TEMPLATE_CACHE_SIZE")
	if s == "" {
		return 8, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, errors.New("invalid TEMPLATE_CACHE_SIZE")
	}
	return n, nil
}

func parseBrokers(s string) []string {
	if s == "" {
		return nil
	}
	var brokers []string
	for _, b := range strings.Split(s, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
