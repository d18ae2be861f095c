package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// Open connects to the grocery database described by cfg. A postgres
// container often comes up after the service, so connection attempts
// are retried with doubling backoff before giving up.
func Open(cfg Config) (*gorm.DB, error) {
	connLog := log.WithFields(logrus.Fields{
		"service":  "grocery-budget-api",
		"driver":   cfg.driver(),
		"database": cfg.Name,
		"path":     cfg.Path,
	})
	connLog.Info("Connecting to grocery database")

	const maxAttempts = 5
	backoff := 1 * time.Second

	var db *gorm.DB
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err = open(cfg)
		if err == nil {
			connLog.WithField("attempt", attempt).Info("Grocery database ready")
			return db, nil
		}

		connLog.WithFields(logrus.Fields{
			"attempt": attempt,
			"error":   err.Error(),
		}).Warn("Database connection attempt failed")

		// Don't wait after the last attempt
		if attempt < maxAttempts {
			time.Sleep(backoff)
			backoff *= 2
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxAttempts, err)
}

// open performs a single connection attempt, verifies it with a ping
// and tunes the connection pool.
func open(cfg Config) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	switch cfg.driver() {
	case "postgres", "postgresql":
		db, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(cfg.DSN()), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported database driver: %s (supported: postgres, sqlite)", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	tunePool(sqlDB)
	return db, nil
}

// tunePool keeps the pool small: every request is one short round trip,
// so a handful of connections covers the whole API.
func tunePool(sqlDB *sql.DB) {
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	log.WithFields(logrus.Fields{
		"max_open_conns":    25,
		"max_idle_conns":    5,
		"conn_max_lifetime": "5m",
	}).Debug("Connection pool tuned")
}
