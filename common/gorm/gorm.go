package gorm

import (
	"fmt"
	"log/slog"
	"time"

	slogGorm "github.com/orandin/slog-gorm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitGorm(dsn string) (*gorm.DB, error) {
	lg := slogGorm.New(
		slogGorm.WithHandler(slog.Default().Handler()),
		slogGorm.WithSlowThreshold(100*time.Millisecond),
	)

	connector := postgres.New(
		postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		},
	)

	db, connectionErr := gorm.Open(connector, &gorm.Config{
		Logger: lg,
	})
	if connectionErr != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", connectionErr)
	}

	slog.Info("GORM Connected!")
	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		slog.Warn("Failed to get sql.DB for close", "error", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		slog.Warn("Failed to close database", "error", err)
	}
}
