package main

import (
	"fmt"
	"time"

	"github.com/fadilmartias/recruit-admin/internal/config"
	"github.com/fadilmartias/recruit-admin/internal/logger"
	"github.com/fadilmartias/recruit-admin/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func ConnectDB() (*gorm.DB, error) {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	db, err := gorm.Open(postgres.Open(dbConfig.DSN()), &gorm.Config{
		Logger: logger.NewGormLogger(log, dbConfig.SlowThreshold),
	})
	if err != nil {
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("could not get database instance: %w", err)
	}
	if !appConfig.IsProduction() {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}
	return db, nil
}

// Migrate creates the uuid extension the id defaults rely on, then every table.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("create uuid-ossp: %w", err)
	}
	if err := db.AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
