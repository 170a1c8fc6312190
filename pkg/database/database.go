package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ramyasree-2705/multi-tenant-SaaS/pkg/config"
)

var DB *gorm.DB

// InitDB opens the PostgreSQL connection, configures the pool and
// migrates the given models.
func InitDB(cfg *config.Config, models ...interface{}) error {
	logLevel := cfg.DB.LogLevel
	if logLevel == 0 {
		logLevel = logger.Warn
	}

	// PreferSimpleProtocol avoids "prepared statement already exists"
	// errors behind connection poolers.
	pgConfig := postgres.Config{
		DSN:                  cfg.DB.GetDSN(),
		PreferSimpleProtocol: true,
	}

	db, err := gorm.Open(postgres.New(pgConfig), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	if cfg.DB.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	}
	if cfg.DB.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	}
	if cfg.DB.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)
	}

	if len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			return err
		}
	}

	DB = db
	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}

// SetDB replaces the database instance. Used by tests to point the
// handlers at an in-memory database.
func SetDB(db *gorm.DB) {
	DB = db
}
