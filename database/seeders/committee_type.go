package seeders

import (
	"errors"

	"ristcon.api/configs/configslog"
	"ristcon.api/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultCommitteeTypes are the committees every edition can list members under.
var DefaultCommitteeTypes = []models.CommitteeType{
	{CommitteeName: "Advisory Board", DisplayOrder: 1},
	{CommitteeName: "Editorial Board", DisplayOrder: 2},
	{CommitteeName: "Organizing Committee", DisplayOrder: 3},
}

func SeedCommitteeTypes(db *gorm.DB) error {
	var createdCount int64
	errorOccurred := false

	configslog.SLog.Info("Seeding committee types...")

	for _, typeToSeed := range DefaultCommitteeTypes {
		var existing models.CommitteeType
		result := db.Where("committee_name = ?", typeToSeed.CommitteeName).First(&existing)

		if result.Error == nil {
			configslog.SLog.Debugf("Committee type '%s' already exists, skipping.", typeToSeed.CommitteeName)
			continue
		} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Committee type lookup failed",
				zap.String("committee_name", typeToSeed.CommitteeName),
				zap.Error(result.Error),
			)
			errorOccurred = true
			continue
		}

		if err := db.Create(&typeToSeed).Error; err != nil {
			configslog.Log.Error("Committee type could not be created",
				zap.String("committee_name", typeToSeed.CommitteeName),
				zap.Error(err),
			)
			errorOccurred = true
			continue
		}

		configslog.SLog.Infof("Committee type '%s' created (ID: %d).", typeToSeed.CommitteeName, typeToSeed.ID)
		createdCount++
	}

	if createdCount > 0 {
		configslog.SLog.Infof("%d committee type(s) seeded.", createdCount)
	} else if !errorOccurred {
		configslog.SLog.Info("All committee types already exist, nothing added.")
	}

	if errorOccurred {
		return errors.New("at least one committee type could not be seeded")
	}
	return nil
}
