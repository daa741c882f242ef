package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/rahulkure2004/rahul-portfolio/internal/domain"
	"github.com/rahulkure2004/rahul-portfolio/internal/metrics"
	apperrors "github.com/rahulkure2004/rahul-portfolio/pkg/errors"
)

// SubmitInput carries the public contact form fields. FullName, Email and
// Description are required; the rest is optional free text.
type SubmitInput struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ProjectType string `json:"projectType"`
	BudgetRange string `json:"budgetRange"`
	Deadline    string `json:"deadline"`
	Description string `json:"description"`
}

// InquiryService implements the inquiry lifecycle: submission, status
// transitions and deletion.
type InquiryService struct {
	db       *gorm.DB
	notifier Notifier
}

// NewInquiryService creates a new inquiry service
func NewInquiryService(db *gorm.DB, notifier Notifier) *InquiryService {
	return &InquiryService{
		db:       db,
		notifier: notifier,
	}
}

// Submit validates and persists a contact form submission, then fires the
// notification channels. Submission success is decided solely by the
// database write; notification outcomes never affect the returned record.
func (s *InquiryService) Submit(ctx context.Context, in SubmitInput) (*domain.Inquiry, error) {
	fullName := strings.TrimSpace(in.FullName)
	email := strings.TrimSpace(in.Email)
	description := strings.TrimSpace(in.Description)

	log.Printf("[INQUIRY] Submit request: name=%s, email=%s", fullName, email)

	if fullName == "" || email == "" || description == "" {
		log.Printf("[INQUIRY] Submit failed: required fields missing")
		return nil, apperrors.New(apperrors.ErrCodeValidation, "Required fields missing")
	}

	inquiry := &domain.Inquiry{
		FullName:    fullName,
		Email:       strings.ToLower(email),
		Phone:       optional(in.Phone),
		ProjectType: optional(in.ProjectType),
		BudgetRange: optional(in.BudgetRange),
		Deadline:    optional(in.Deadline),
		Description: description,
		Status:      domain.StatusNew,
	}

	if err := s.db.WithContext(ctx).Create(inquiry).Error; err != nil {
		log.Printf("[INQUIRY] Submit failed: database error: %v", err)
		return nil, fmt.Errorf("failed to save inquiry: %w", err)
	}

	log.Printf("[INQUIRY] Submit successful: id=%d, name=%s, email=%s", inquiry.ID, inquiry.FullName, inquiry.Email)
	metrics.RecordInquirySubmission()

	// Fire-and-forget: a broken mail relay must never block inquiry capture.
	if s.notifier != nil {
		snapshot := *inquiry
		go s.notifier.InquiryReceived(&snapshot)
	}

	return inquiry, nil
}

// UpdateStatus moves an existing inquiry to newStatus and refreshes its
// updatedAt timestamp. The submitter is notified best-effort.
func (s *InquiryService) UpdateStatus(ctx context.Context, id uint, newStatus string) (string, error) {
	log.Printf("[INQUIRY] UpdateStatus request: id=%d, status=%s", id, newStatus)

	if !domain.ValidStatus(newStatus) {
		log.Printf("[INQUIRY] UpdateStatus failed: unknown status %q", newStatus)
		return "", apperrors.New(apperrors.ErrCodeValidation, fmt.Sprintf("unknown status: %s", newStatus))
	}

	var inquiry domain.Inquiry
	if err := s.db.WithContext(ctx).First(&inquiry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[INQUIRY] UpdateStatus failed: inquiry id=%d not found", id)
			return "", apperrors.New(apperrors.ErrCodeNotFound, "Inquiry not found")
		}
		log.Printf("[INQUIRY] UpdateStatus failed: database error: %v", err)
		return "", err
	}

	inquiry.Status = newStatus
	if err := s.db.WithContext(ctx).Save(&inquiry).Error; err != nil {
		log.Printf("[INQUIRY] UpdateStatus failed: database error: %v", err)
		return "", fmt.Errorf("failed to update status: %w", err)
	}

	log.Printf("[INQUIRY] UpdateStatus successful: id=%d, status=%s", inquiry.ID, inquiry.Status)
	metrics.RecordStatusUpdate(newStatus)

	if s.notifier != nil {
		snapshot := inquiry
		go s.notifier.StatusChanged(&snapshot, newStatus)
	}

	return inquiry.Status, nil
}

// Delete removes an inquiry unconditionally. Deleting an absent id is not an
// error.
func (s *InquiryService) Delete(ctx context.Context, id uint) error {
	log.Printf("[INQUIRY] Delete request: id=%d", id)

	if err := s.db.WithContext(ctx).Delete(&domain.Inquiry{}, id).Error; err != nil {
		log.Printf("[INQUIRY] Delete failed: database error: %v", err)
		return fmt.Errorf("failed to delete inquiry: %w", err)
	}

	log.Printf("[INQUIRY] Delete successful: id=%d", id)
	return nil
}

// optional trims s and returns nil for the empty string
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
