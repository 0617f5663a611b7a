package migrations

import (
	"ristcon.api/configs/configslog"
	"ristcon.api/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateCommitteeTypesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating committee_types table...")
	if err := db.AutoMigrate(&models.CommitteeType{}); err != nil {
		configslog.Log.Error("Failed to migrate committee_types table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Committee_types table migrated successfully")
	return nil
}
