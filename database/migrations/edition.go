package migrations

import (
	"ristcon.api/configs/configslog"
	"ristcon.api/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateEditionsTable must run before any scoped table so their edition foreign keys can be created.
func MigrateEditionsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating conference_editions table...")
	if err := db.AutoMigrate(&models.Edition{}); err != nil {
		configslog.Log.Error("Failed to migrate conference_editions table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Conference_editions table migrated successfully")
	return nil
}

// MigrateConferencesTable creates the legacy table on fresh databases only.
// An existing legacy table is left exactly as it is.
func MigrateConferencesTable(db *gorm.DB) error {
	if db.Migrator().HasTable(&models.Conference{}) {
		configslog.SLog.Debugf("Legacy conferences table exists, leaving it untouched")
		return nil
	}
	configslog.SLog.Info("Creating legacy conferences table...")
	if err := db.Migrator().CreateTable(&models.Conference{}); err != nil {
		configslog.Log.Error("Failed to create conferences table", zap.Error(err))
		return err
	}
	return nil
}
