package main

import (
	"context"
	"flag"
	"os"

	"ristcon.api/configs"
	"ristcon.api/configs/configsdatabase"
	"ristcon.api/configs/configslog"
	"ristcon.api/database"

	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	migrateFlag := flag.Bool("migrate", false, "Create or update the database schema")
	backfillFlag := flag.Bool("backfill", false, "Move legacy single-conference rows onto editions")
	seedFlag := flag.Bool("seed", false, "Seed committee types and the admin user")
	flag.Parse()

	cfg, err := configs.Load()
	if err != nil {
		configslog.Log.Fatal("Configuration could not be loaded", zap.Error(err))
	}

	configsdatabase.InitDB(cfg)
	defer configsdatabase.CloseDB()

	opts := database.Options{Migrate: *migrateFlag, Backfill: *backfillFlag, Seed: *seedFlag}
	if err := database.Initialize(context.Background(), configsdatabase.GetDB(), cfg, opts); err != nil {
		configslog.Log.Error("Database initialization failed", zap.Error(err))
		configsdatabase.CloseDB()
		configslog.SyncLogger()
		os.Exit(1)
	}
}
