package configsdatabase

import (
	"time"

	"ristcon.api/configs"
	"ristcon.api/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

// InitDB opens the Postgres connection pool described by cfg.
func InitDB(cfg *configs.AppConfig) {
	conn, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DB.DSN(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: NewGormLogger(200 * time.Millisecond),
	})
	if err != nil {
		configslog.Log.Fatal("Failed to connect to database",
			zap.String("host", cfg.DB.Host),
			zap.String("database", cfg.DB.Name),
			zap.Error(err),
		)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		configslog.Log.Fatal("Failed to get sql.DB from gorm", zap.Error(err))
	}
	sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		configslog.Log.Fatal("Database ping failed", zap.Error(err))
	}

	db = conn
	configslog.SLog.Infof("Database connection established (%s@%s/%s)", cfg.DB.User, cfg.DB.Host, cfg.DB.Name)
}

func GetDB() *gorm.DB {
	if db == nil {
		configslog.Log.Fatal("GetDB called before InitDB")
	}
	return db
}

func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("Failed to get sql.DB while closing", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("Failed to close database connection", zap.Error(err))
		return
	}
	configslog.SLog.Info("Database connection closed")
}
