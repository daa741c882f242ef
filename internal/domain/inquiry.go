package domain

import (
	"time"

	"gorm.io/gorm"
)

// Inquiry status values. An inquiry always holds exactly one of these.
const (
	StatusNew          = "NEW"
	StatusContacted    = "CONTACTED"
	StatusInDiscussion = "IN_DISCUSSION"
	StatusClosed       = "CLOSED"
)

// ValidStatus reports whether s is one of the known inquiry statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusContacted, StatusInDiscussion, StatusClosed:
		return true
	}
	return false
}

// Inquiry represents a contact form submission from a prospective client.
type Inquiry struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FullName    string    `gorm:"not null" json:"fullName"`
	Email       string    `gorm:"not null;index" json:"email"`
	Phone       *string   `json:"phone"`
	ProjectType *string   `gorm:"index" json:"projectType"`
	BudgetRange *string   `json:"budgetRange"`
	Deadline    *string   `json:"deadline"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Status      string    `gorm:"default:'NEW';index" json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName specifies the table name for Inquiry
func (Inquiry) TableName() string {
	return "messages"
}

// BeforeCreate hook
func (i *Inquiry) BeforeCreate(tx *gorm.DB) error {
	now := time.Now().UTC()
	i.CreatedAt = now
	i.UpdatedAt = now
	if i.Status == "" {
		i.Status = StatusNew
	}
	return nil
}

// BeforeUpdate hook
func (i *Inquiry) BeforeUpdate(tx *gorm.DB) error {
	i.UpdatedAt = time.Now().UTC()
	return nil
}
