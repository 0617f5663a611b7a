package services

import (
	"fmt"
	"testing"
	"time"

	"ristcon.api/database/migrations"
	"ristcon.api/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database with the full schema.
// One connection keeps every query on the same in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migrations.MigrateUsersTable(db))
	require.NoError(t, migrations.MigrateCommitteeTypesTable(db))
	require.NoError(t, migrations.MigrateEditionsTable(db))
	require.NoError(t, migrations.PrepareScopedTables(db))
	return db
}

func seedEdition(t *testing.T, db *gorm.DB, year int, status models.EditionStatus, active bool) *models.Edition {
	t.Helper()
	edition := &models.Edition{
		Year:            year,
		EditionNumber:   year - 2013,
		Name:            fmt.Sprintf("RISTCON %d", year),
		Slug:            models.SlugForYear(year),
		Status:          status,
		IsActiveEdition: active,
		ConferenceDate:  time.Date(year, time.January, 21, 0, 0, 0, 0, time.UTC),
		VenueType:       models.VenueTypePhysical,
		Theme:           "Research and innovation",
		GeneralEmail:    "ristcon@sci.ruh.ac.lk",
		CopyrightYear:   year,
		SiteVersion:     models.DefaultSiteVersion,
	}
	require.NoError(t, db.Create(edition).Error)
	return edition
}

func seedSpeaker(t *testing.T, db *gorm.DB, editionID uint, name string, order int) *models.Speaker {
	t.Helper()
	speaker := &models.Speaker{
		SpeakerType: models.SpeakerTypeKeynote,
		FullName:    name,
		Affiliation: "University of Ruhuna",
	}
	speaker.EditionID = editionID
	speaker.DisplayOrder = order
	require.NoError(t, db.Create(speaker).Error)
	return speaker
}

func seedCommitteeType(t *testing.T, db *gorm.DB, name string, order int) *models.CommitteeType {
	t.Helper()
	ct := &models.CommitteeType{CommitteeName: name, DisplayOrder: order}
	require.NoError(t, db.Create(ct).Error)
	return ct
}

func countRows(t *testing.T, db *gorm.DB, table string, editionID uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(table).Where("edition_id = ?", editionID).Count(&n).Error)
	return n
}
