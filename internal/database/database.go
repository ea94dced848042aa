package database

import (
	"context"
	"fmt"
	"time"

	"bistro/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open creates the process-wide store handle for driver ("postgres" or "sqlite").
// It does not contact the server; call Ping to check reachability.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:               newLogger(),
		DisableAutomaticPing: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}
	return db, nil
}

// gormWriter forwards GORM's trace lines to logrus.
type gormWriter struct {
	entry *logrus.Entry
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.entry.Warnf(format, args...)
}

// newLogger reports slow queries and failed statements. A missing row is an
// expected lookup result here and is not logged.
func newLogger() logger.Interface {
	return logger.New(
		gormWriter{entry: logrus.WithField("component", "gorm")},
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

// Migrate creates or updates the tables for every model.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Review{},
		&models.CartItem{},
		&models.Payment{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Ping checks that the store answers.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql handle: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql handle: %w", err)
	}
	return sqlDB.Close()
}
