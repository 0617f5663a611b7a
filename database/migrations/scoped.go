package migrations

import (
	"fmt"

	"ristcon.api/configs/configslog"
	"ristcon.api/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const editionColumn = "edition_id"

// PrepareScopedTables brings every scoped table to a state the backfill can work with.
// Missing tables are created with the final schema. Legacy tables get a nullable edition_id;
// they are fully migrated only once no row is left without an edition.
func PrepareScopedTables(db *gorm.DB) error {
	m := db.Migrator()
	for _, table := range models.ScopedTables() {
		switch {
		case !m.HasTable(table.Model):
			configslog.SLog.Infof("Creating %s table...", table.Name)
			if err := db.AutoMigrate(table.Model); err != nil {
				configslog.Log.Error("Failed to create scoped table", zap.String("table", table.Name), zap.Error(err))
				return err
			}

		case !m.HasColumn(table.Model, editionColumn):
			configslog.SLog.Infof("Adding nullable edition_id to legacy %s table...", table.Name)
			if err := addNullableEditionColumn(db, table.Name); err != nil {
				configslog.Log.Error("Failed to add edition_id", zap.String("table", table.Name), zap.Error(err))
				return err
			}

		default:
			pending, err := countWithoutEdition(db, table.Name)
			if err != nil {
				return err
			}
			if pending > 0 {
				configslog.SLog.Warnf("%s has %d rows without edition_id, run -backfill before migrating it", table.Name, pending)
				continue
			}
			if err := db.AutoMigrate(table.Model); err != nil {
				configslog.Log.Error("Failed to migrate scoped table", zap.String("table", table.Name), zap.Error(err))
				return err
			}
		}
	}
	return MigrateResearchAreasTable(db)
}

func MigrateResearchAreasTable(db *gorm.DB) error {
	if !db.Migrator().HasTable(&models.ResearchCategory{}) {
		return nil
	}
	if err := db.AutoMigrate(&models.ResearchArea{}); err != nil {
		configslog.Log.Error("Failed to migrate research_areas table", zap.Error(err))
		return err
	}
	return nil
}

// EnforceEditionConstraints runs after the backfill: edition_id becomes required and
// the legacy conference_id becomes optional so new rows need not carry it.
func EnforceEditionConstraints(db *gorm.DB) error {
	postgres := db.Dialector.Name() == "postgres"
	for _, table := range models.ScopedTables() {
		pending, err := countWithoutEdition(db, table.Name)
		if err != nil {
			return err
		}
		if pending > 0 {
			return fmt.Errorf("%s still has %d rows without edition_id", table.Name, pending)
		}
		if postgres {
			stmts := []string{fmt.Sprintf(`ALTER TABLE %q ALTER COLUMN edition_id SET NOT NULL`, table.Name)}
			if db.Migrator().HasColumn(table.Model, "conference_id") {
				stmts = append(stmts, fmt.Sprintf(`ALTER TABLE %q ALTER COLUMN conference_id DROP NOT NULL`, table.Name))
			}
			for _, stmt := range stmts {
				if err := db.Exec(stmt).Error; err != nil {
					configslog.Log.Error("Failed to tighten scoped table", zap.String("table", table.Name), zap.Error(err))
					return err
				}
			}
		}
		if err := db.AutoMigrate(table.Model); err != nil {
			configslog.Log.Error("Failed to migrate scoped table", zap.String("table", table.Name), zap.Error(err))
			return err
		}
		configslog.SLog.Infof(" -> %s now requires edition_id", table.Name)
	}
	return MigrateResearchAreasTable(db)
}

func addNullableEditionColumn(db *gorm.DB, table string) error {
	if err := db.Exec(fmt.Sprintf(`ALTER TABLE %q ADD COLUMN edition_id BIGINT NULL`, table)).Error; err != nil {
		return err
	}
	return db.Exec(fmt.Sprintf(`CREATE INDEX IF NOT EXISTS "idx_%s_edition_id" ON %q (edition_id)`, table, table)).Error
}

func countWithoutEdition(db *gorm.DB, table string) (int64, error) {
	var count int64
	err := db.Table(table).Where("edition_id IS NULL").Count(&count).Error
	return count, err
}
