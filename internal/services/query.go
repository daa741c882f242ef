package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/rahulkure2004/rahul-portfolio/internal/domain"
	apperrors "github.com/rahulkure2004/rahul-portfolio/pkg/errors"
)

const dateLayout = "2006-01-02"

// TypeCount is one row of the per-projectType breakdown. A nil ProjectType
// groups the inquiries submitted without one.
type TypeCount struct {
	ProjectType *string `json:"projectType"`
	Count       int64   `json:"count"`
}

// StatusCount is one row of the per-status breakdown
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// DashboardStats aggregates the admin dashboard counters
type DashboardStats struct {
	TotalLeads      int64         `json:"totalLeads"`
	ThisMonthLeads  int64         `json:"thisMonthLeads"`
	TodayLeads      int64         `json:"todayLeads"`
	TypeBreakdown   []TypeCount   `json:"typeBreakdown"`
	StatusBreakdown []StatusCount `json:"statusBreakdown"`
}

// QueryService is the read-only search, filter and stats surface over stored
// inquiries.
type QueryService struct {
	db *gorm.DB
}

// NewQueryService creates a new query service
func NewQueryService(db *gorm.DB) *QueryService {
	return &QueryService{db: db}
}

// List returns all inquiries ordered by creation time. sortOrder is "asc" or
// "desc"; anything else falls back to newest first.
func (s *QueryService) List(ctx context.Context, sortOrder string) ([]domain.Inquiry, error) {
	order := "created_at DESC"
	if strings.EqualFold(sortOrder, "asc") {
		order = "created_at ASC"
	}

	var inquiries []domain.Inquiry
	if err := s.db.WithContext(ctx).Order(order).Find(&inquiries).Error; err != nil {
		log.Printf("[QUERY] List failed: database error: %v", err)
		return nil, fmt.Errorf("failed to fetch inquiries: %w", err)
	}

	log.Printf("[QUERY] List successful: returned %d inquiries", len(inquiries))
	return inquiries, nil
}

// Search returns inquiries whose fullName, email or description contains
// keyword, case-insensitively, newest first.
func (s *QueryService) Search(ctx context.Context, keyword string) ([]domain.Inquiry, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(keyword)) + "%"

	var inquiries []domain.Inquiry
	err := s.db.WithContext(ctx).
		Where("LOWER(full_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern, pattern).
		Order("created_at DESC").
		Find(&inquiries).Error
	if err != nil {
		log.Printf("[QUERY] Search failed: database error: %v", err)
		return nil, fmt.Errorf("failed to search inquiries: %w", err)
	}

	log.Printf("[QUERY] Search successful: keyword=%q, returned %d inquiries", keyword, len(inquiries))
	return inquiries, nil
}

// Filter returns inquiries matching all provided criteria. An empty or "All"
// projectType means no filter on that field; fromDate and toDate (YYYY-MM-DD)
// are inclusive bounds on createdAt.
func (s *QueryService) Filter(ctx context.Context, projectType, fromDate, toDate string) ([]domain.Inquiry, error) {
	query := s.db.WithContext(ctx).Model(&domain.Inquiry{})

	if projectType != "" && projectType != "All" {
		query = query.Where("project_type = ?", projectType)
	}
	if fromDate != "" {
		from, err := time.Parse(dateLayout, fromDate)
		if err != nil {
			return nil, apperrors.New(apperrors.ErrCodeValidation, "fromDate must be YYYY-MM-DD")
		}
		query = query.Where("created_at >= ?", from)
	}
	if toDate != "" {
		to, err := time.Parse(dateLayout, toDate)
		if err != nil {
			return nil, apperrors.New(apperrors.ErrCodeValidation, "toDate must be YYYY-MM-DD")
		}
		// Inclusive upper bound: everything up to the end of that day.
		query = query.Where("created_at < ?", to.AddDate(0, 0, 1))
	}

	var inquiries []domain.Inquiry
	if err := query.Order("created_at DESC").Find(&inquiries).Error; err != nil {
		log.Printf("[QUERY] Filter failed: database error: %v", err)
		return nil, fmt.Errorf("failed to filter inquiries: %w", err)
	}

	log.Printf("[QUERY] Filter successful: type=%q, from=%q, to=%q, returned %d", projectType, fromDate, toDate, len(inquiries))
	return inquiries, nil
}

// Stats returns the aggregate dashboard counters
func (s *QueryService) Stats(ctx context.Context) (*DashboardStats, error) {
	now := time.Now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	stats := &DashboardStats{}
	model := func() *gorm.DB {
		return s.db.WithContext(ctx).Model(&domain.Inquiry{})
	}

	if err := model().Count(&stats.TotalLeads).Error; err != nil {
		return nil, fmt.Errorf("failed to count inquiries: %w", err)
	}
	if err := model().Where("created_at >= ?", startOfMonth).Count(&stats.ThisMonthLeads).Error; err != nil {
		return nil, fmt.Errorf("failed to count this month's inquiries: %w", err)
	}
	if err := model().Where("created_at >= ?", startOfDay).Count(&stats.TodayLeads).Error; err != nil {
		return nil, fmt.Errorf("failed to count today's inquiries: %w", err)
	}
	if err := model().
		Select("project_type, COUNT(*) as count").
		Group("project_type").
		Scan(&stats.TypeBreakdown).Error; err != nil {
		return nil, fmt.Errorf("failed to group by project type: %w", err)
	}
	if err := model().
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&stats.StatusBreakdown).Error; err != nil {
		return nil, fmt.Errorf("failed to group by status: %w", err)
	}

	log.Printf("[QUERY] Stats successful: total=%d, month=%d, today=%d", stats.TotalLeads, stats.ThisMonthLeads, stats.TodayLeads)
	return stats, nil
}
