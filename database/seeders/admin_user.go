package seeders

import (
	"errors"
	"strings"

	"ristcon.api/configs"
	"ristcon.api/configs/configslog"
	"ristcon.api/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdminUser creates the admin account from ADMIN_EMAIL/ADMIN_PASSWORD when it does not exist yet.
// An existing account is never overwritten.
func SeedAdminUser(db *gorm.DB, cfg *configs.AppConfig) error {
	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))
	if email == "" || cfg.AdminPassword == "" {
		configslog.SLog.Warn("ADMIN_EMAIL or ADMIN_PASSWORD not set, admin user seeding skipped.")
		return nil
	}

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		configslog.SLog.Debugf("Admin user '%s' already exists, skipping.", email)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Admin user lookup failed", zap.Error(err))
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("Admin password could not be hashed", zap.Error(err))
		return err
	}
	user := models.User{
		Name:         cfg.AdminName,
		Email:        email,
		PasswordHash: string(hash),
		IsAdmin:      true,
	}
	if err := db.Create(&user).Error; err != nil {
		configslog.Log.Error("Admin user could not be created", zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Admin user '%s' created (ID: %d).", email, user.ID)
	return nil
}
