package database

import (
	"context"
	"errors"

	"ristcon.api/configs"
	"ristcon.api/configs/configslog"
	"ristcon.api/database/migrations"
	"ristcon.api/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Options selects the steps Initialize runs. They always run in migrate, backfill, seed order.
type Options struct {
	Migrate  bool
	Backfill bool
	Seed     bool
}

// Initialize runs the selected steps in one transaction; any failure rolls all of them back.
func Initialize(ctx context.Context, db *gorm.DB, cfg *configs.AppConfig, opts Options) (err error) {
	if !opts.Migrate && !opts.Backfill && !opts.Seed {
		configslog.SLog.Info("No -migrate, -backfill or -seed flag given, nothing to do.")
		return nil
	}

	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		configslog.Log.Error("Could not begin database transaction", zap.Error(tx.Error))
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Error("Database initialization panicked, rolled back", zap.Any("panic_info", r))
			err = errors.New("database initialization panicked")
			return
		}
		if err != nil {
			configslog.SLog.Warn("Rolling back because initialization failed.")
			if rbErr := tx.Rollback().Error; rbErr != nil && !errors.Is(rbErr, gorm.ErrInvalidTransaction) {
				configslog.Log.Error("Rollback failed", zap.Error(rbErr))
			}
		}
	}()

	configslog.SLog.Info("Database initialization starting...")

	if opts.Migrate {
		configslog.SLog.Info("Running migrations...")
		if err = RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("Migrations failed", zap.Error(err))
			return err
		}
		configslog.SLog.Info("Migrations finished.")
	}

	if opts.Backfill {
		configslog.SLog.Infof("Running edition backfill (active edition %d)...", cfg.ActiveEditionYear)
		backfill := seeders.EditionBackfill{CurrentYear: cfg.ActiveEditionYear}
		if _, err = backfill.Run(ctx, tx); err != nil {
			return err
		}
		if err = migrations.EnforceEditionConstraints(tx); err != nil {
			configslog.Log.Error("Scoped table constraints could not be enforced", zap.Error(err))
			return err
		}
	}

	if opts.Seed {
		configslog.SLog.Info("Running seeders...")
		if err = CheckAndRunSeeders(tx, cfg); err != nil {
			configslog.Log.Error("Seeding failed", zap.Error(err))
			return err
		}
		configslog.SLog.Info("Seeders finished.")
	}

	if err = tx.Commit().Error; err != nil {
		configslog.Log.Error("Commit failed", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Database initialization completed successfully")
	return nil
}

func RunMigrationsInOrder(db *gorm.DB) error {
	steps := []struct {
		name string
		run  func(*gorm.DB) error
	}{
		{"users", migrations.MigrateUsersTable},
		{"committee_types", migrations.MigrateCommitteeTypesTable},
		{"conference_editions", migrations.MigrateEditionsTable},
		{"conferences", migrations.MigrateConferencesTable},
		{"scoped tables", migrations.PrepareScopedTables},
	}
	for _, step := range steps {
		configslog.SLog.Infof(" -> %s migrations running...", step.name)
		if err := step.run(db); err != nil {
			configslog.Log.Error("Migration step failed", zap.String("step", step.name), zap.Error(err))
			return err
		}
	}
	configslog.SLog.Info("All migrations ran successfully.")
	return nil
}

func CheckAndRunSeeders(db *gorm.DB, cfg *configs.AppConfig) error {
	configslog.SLog.Info(" -> Committee type seeder running...")
	if err := seeders.SeedCommitteeTypes(db); err != nil {
		return err
	}
	configslog.SLog.Info(" -> Admin user seeder running...")
	if err := seeders.SeedAdminUser(db, cfg); err != nil {
		return err
	}
	configslog.SLog.Info("All seeders checked.")
	return nil
}
