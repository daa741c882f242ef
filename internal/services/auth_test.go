package services

import (
	"context"
	"testing"

	"github.com/rahulkure2004/rahul-portfolio/internal/config"
	"github.com/rahulkure2004/rahul-portfolio/internal/domain"
	"github.com/rahulkure2004/rahul-portfolio/internal/util"
	apperrors "github.com/rahulkure2004/rahul-portfolio/pkg/errors"
)

func adminConfig(password string) *config.AdminConfig {
	return &config.AdminConfig{Username: "admin", Password: password}
}

func TestSyncAdminAccountCreates(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	if err := svc.SyncAdminAccount(adminConfig("first-password")); err != nil {
		t.Fatalf("SyncAdminAccount: %v", err)
	}

	var user domain.AdminUser
	if err := db.Where("username = ?", "admin").First(&user).Error; err != nil {
		t.Fatalf("admin user not created: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Errorf("role = %q, want %q", user.Role, domain.RoleAdmin)
	}
	if !util.CheckPasswordHash("first-password", user.HashedPassword) {
		t.Error("stored hash does not match the configured password")
	}

	var count int64
	db.Model(&domain.AdminUser{}).Count(&count)
	if count != 1 {
		t.Errorf("user count = %d, want 1", count)
	}
}

func TestSyncAdminAccountOverwritesPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	if err := svc.SyncAdminAccount(adminConfig("first-password")); err != nil {
		t.Fatalf("initial sync: %v", err)
	}
	if err := svc.SyncAdminAccount(adminConfig("rotated-password")); err != nil {
		t.Fatalf("second sync: %v", err)
	}

	var count int64
	db.Model(&domain.AdminUser{}).Count(&count)
	if count != 1 {
		t.Fatalf("user count = %d, want 1 after re-sync", count)
	}

	if _, err := svc.Login(context.Background(), "admin", "first-password"); err == nil {
		t.Error("old password still accepted after re-sync")
	}
	if _, err := svc.Login(context.Background(), "admin", "rotated-password"); err != nil {
		t.Errorf("new password rejected after re-sync: %v", err)
	}
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	if err := svc.SyncAdminAccount(adminConfig("correct-horse")); err != nil {
		t.Fatalf("SyncAdminAccount: %v", err)
	}

	token, err := svc.Login(context.Background(), "admin", "correct-horse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	claims, err := util.ValidateToken(token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.Username != "admin" || claims.Role != domain.RoleAdmin {
		t.Errorf("claims = %q/%q, want admin/%q", claims.Username, claims.Role, domain.RoleAdmin)
	}
	if claims.ID == 0 {
		t.Error("claims carry no user id")
	}

	var user domain.AdminUser
	db.Where("username = ?", "admin").First(&user)
	if user.LastLogin == nil {
		t.Error("lastLogin not recorded")
	}
}

// Wrong password and unknown username must be indistinguishable to the caller.
func TestLoginUniformFailure(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	if err := svc.SyncAdminAccount(adminConfig("correct-horse")); err != nil {
		t.Fatalf("SyncAdminAccount: %v", err)
	}

	_, errPass := svc.Login(context.Background(), "admin", "wrong")
	_, errUser := svc.Login(context.Background(), "nobody", "correct-horse")

	for name, err := range map[string]error{"wrong password": errPass, "unknown user": errUser} {
		if apperrors.CodeOf(err) != apperrors.ErrCodeInvalidCredentials {
			t.Errorf("%s: error = %v, want invalid credentials", name, err)
		}
	}
	if errPass == nil || errUser == nil || errPass.Error() != errUser.Error() {
		t.Errorf("failure messages differ: %v vs %v", errPass, errUser)
	}
}
