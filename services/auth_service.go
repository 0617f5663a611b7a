package services

import (
	"context"
	"errors"
	"sync"

	"ristcon.api/configs/configslog"
	"ristcon.api/models"
	"ristcon.api/repositories"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

var compareHashAndPassword = bcrypt.CompareHashAndPassword

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// dummyPasswordHash is compared against when no admin matches the email, so a miss
// costs the same bcrypt work as a wrong password. It uses the seeder's cost.
func dummyPasswordHash() []byte {
	dummyHashOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte("ristcon-no-such-admin"), bcrypt.DefaultCost)
		if err != nil {
			configslog.Log.Error("AuthService: dummy hash generation failed", zap.Error(err))
			return
		}
		dummyHash = hash
	})
	return dummyHash
}

// IAuthService checks admin panel credentials.
type IAuthService interface {
	AuthenticateAdmin(ctx context.Context, email, password string) (*models.User, error)
}

// AuthService implements IAuthService on top of the users table.
type AuthService struct {
	repo repositories.IUserRepository
}

// NewAuthService creates an AuthService reading users through db.
func NewAuthService(db *gorm.DB) IAuthService {
	return &AuthService{repo: repositories.NewUserRepository(db)}
}

// AuthenticateAdmin returns the admin user matching the credentials, or ErrInvalidCredentials.
// Every path that rejects an email still runs one bcrypt comparison.
func (s *AuthService) AuthenticateAdmin(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			configslog.Log.Error("AuthService.AuthenticateAdmin: user lookup failed", zap.Error(err))
		}
		_ = compareHashAndPassword(dummyPasswordHash(), []byte(password))
		return nil, ErrInvalidCredentials
	}
	if !user.IsAdmin {
		_ = compareHashAndPassword(dummyPasswordHash(), []byte(password))
		return nil, ErrInvalidCredentials
	}
	if err := compareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

var _ IAuthService = (*AuthService)(nil)
