package config

import (
	"fmt"
	"sync"
	"time"
)

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	TimeZone string
	// SlowThreshold marks queries logged as slow.
	SlowThreshold time.Duration
}

var (
	dbConfig *DBConfig
	dbOnce   sync.Once
)

func LoadDBConfig() *DBConfig {
	dbOnce.Do(func() {
		dbConfig = &DBConfig{
			Host:          getEnv("DB_HOST", "localhost"),
			Port:          getEnv("DB_PORT", "5432"),
			User:          getEnv("DB_USER", "postgres"),
			Password:      getEnv("DB_PASSWORD", ""),
			Name:          getEnv("DB_NAME", "recruit"),
			SSLMode:       getEnv("DB_SSLMODE", "disable"),
			TimeZone:      getEnv("DB_TIMEZONE", "UTC"),
			SlowThreshold: getDuration("DB_SLOW_THRESHOLD", 200*time.Millisecond),
		}
	})
	return dbConfig
}

func (c *DBConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.Host,
		c.User,
		c.Password,
		c.Name,
		c.Port,
		c.SSLMode,
		c.TimeZone,
	)
}
