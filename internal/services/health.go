package services

import (
	"context"

	"gorm.io/gorm"
)

// HealthService reports service liveness
type HealthService struct {
	db *gorm.DB
}

// NewHealthService creates a new health service
func NewHealthService(db *gorm.DB) *HealthService {
	return &HealthService{db: db}
}

// Check pings the store. A reachable database is the only dependency the
// health endpoint reports on.
func (s *HealthService) Check(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
