package config

import (
	"os"
	"strconv"
	"sync"
	"time"
)

type AppConfig struct {
	Name    string
	Env     string
	Port    string
	BaseURL string
	// RequestTimeout bounds the context handed to each request's DB calls.
	RequestTimeout time.Duration
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "development"
		}
		appConfig = &AppConfig{
			Name:           getEnv("APP_NAME", "recruit-admin"),
			Env:            env,
			Port:           getEnv("APP_PORT", ":8080"),
			BaseURL:        os.Getenv("APP_URL"),
			RequestTimeout: getDuration("APP_REQUEST_TIMEOUT", 5*time.Second),
		}
	})
	return appConfig
}

func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

type RateLimitConfig struct {
	Max        int
	Expiration time.Duration
}

var (
	rateLimitConfig *RateLimitConfig
	rateLimitOnce   sync.Once
)

func LoadRateLimitConfig() *RateLimitConfig {
	rateLimitOnce.Do(func() {
		rateLimitConfig = &RateLimitConfig{
			Max:        getInt("RATE_LIMIT_MAX", 50),
			Expiration: getDuration("RATE_LIMIT_EXPIRATION", time.Minute),
		}
	})
	return rateLimitConfig
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
