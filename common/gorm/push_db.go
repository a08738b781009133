package gorm

import (
	"fmt"
	"log/slog"

	participantmodel "github.com/sunthewhat/cert-overlay-api/api/model/participantModel"
	"gorm.io/gorm"
)

// PushDB creates or updates the participant table.
func PushDB(db *gorm.DB, table string) error {
	if err := participantmodel.NewSQLRepository(db, table).Migrate(); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	slog.Info("Database migration completed successfully", "table", table)
	return nil
}
