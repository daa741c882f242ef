package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/rahulkure2004/rahul-portfolio/internal/config"
	"github.com/rahulkure2004/rahul-portfolio/internal/domain"
	"github.com/rahulkure2004/rahul-portfolio/internal/metrics"
	"github.com/rahulkure2004/rahul-portfolio/internal/util"
	apperrors "github.com/rahulkure2004/rahul-portfolio/pkg/errors"
)

// AuthService implements the admin auth gate
type AuthService struct {
	db *gorm.DB
}

// NewAuthService creates a new auth service
func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Login verifies the admin credentials and issues a bearer token. Unknown
// username and wrong password produce the same error so the response never
// reveals which field was wrong.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)

	log.Printf("[AUTH] Login attempt for user: %s", username)

	var user domain.AdminUser
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[AUTH] Login failed: user '%s' not found", username)
			metrics.RecordAuthAttempt(false)
			return "", apperrors.New(apperrors.ErrCodeInvalidCredentials, "Invalid credentials")
		}
		log.Printf("[AUTH] Login failed: database error for user '%s': %v", username, err)
		metrics.RecordAuthAttempt(false)
		return "", err
	}

	if !util.CheckPasswordHash(password, user.HashedPassword) {
		log.Printf("[AUTH] Login failed: invalid password for user '%s'", username)
		metrics.RecordAuthAttempt(false)
		return "", apperrors.New(apperrors.ErrCodeInvalidCredentials, "Invalid credentials")
	}

	// Update last login
	now := time.Now().UTC()
	user.LastLogin = &now
	s.db.WithContext(ctx).Save(&user)

	token, err := util.GenerateToken(&user)
	if err != nil {
		log.Printf("[AUTH] Login failed: token generation error for user '%s': %v", username, err)
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	log.Printf("[AUTH] Login successful for user '%s' (id=%d)", username, user.ID)
	metrics.RecordAuthAttempt(true)

	return token, nil
}

// SyncAdminAccount upserts the admin account from the configured
// credentials. The stored hash is overwritten on every call, so the
// environment always wins over whatever is in the database. Creating once
// and never overwriting would be safer if passwords ever became editable
// through another path; today the environment is the only source of truth.
func (s *AuthService) SyncAdminAccount(cfg *config.AdminConfig) error {
	hashed, err := util.HashPassword(cfg.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	var existing domain.AdminUser
	err = s.db.Where("username = ?", cfg.Username).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user := domain.AdminUser{
			Username:       cfg.Username,
			HashedPassword: hashed,
			Role:           domain.RoleAdmin,
		}
		if err := s.db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}
		log.Printf("[AUTH] Admin user created: %s", cfg.Username)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}

	existing.HashedPassword = hashed
	if err := s.db.Save(&existing).Error; err != nil {
		return fmt.Errorf("failed to sync admin password: %w", err)
	}
	log.Printf("[AUTH] Admin password synchronized for: %s", cfg.Username)
	return nil
}
