package model

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionModel mirrors the 'subscriptions' table.
// Version backs optimistic locking of status transitions.
type SubscriptionModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	StudentID    uuid.UUID `gorm:"type:uuid;not null;index"`
	VendorID     uuid.UUID `gorm:"type:uuid;not null;index"`
	DurationDays int       `gorm:"not null;check:duration_days > 0"`
	StartDate    time.Time `gorm:"type:date;not null"`
	EndDate      time.Time `gorm:"type:date;not null;index"`
	Status       string    `gorm:"type:varchar(10);not null;default:'active';index"`
	TotalAmount  float64   `gorm:"type:numeric(12,2);not null"`
	MealsPerDay  int       `gorm:"not null;default:2"`
	PausedAt     *time.Time
	PauseDate    *time.Time
	ResumeDate   *time.Time
	PauseReason  string `gorm:"type:varchar(255)"`
	PauseNotes   string `gorm:"type:text"`
	CancelledAt  *time.Time
	Version      int `gorm:"not null;default:1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

// SubscriptionRequestModel mirrors the 'subscription_requests' table.
type SubscriptionRequestModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	StudentID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	VendorID        uuid.UUID  `gorm:"type:uuid;not null;index:idx_request_vendor_status"`
	DurationDays    int        `gorm:"not null"`
	StartDate       time.Time  `gorm:"type:date;not null"`
	Message         string     `gorm:"type:text"`
	Source          string     `gorm:"type:varchar(10);not null;default:'direct'"`
	Status          string     `gorm:"type:varchar(10);not null;default:'pending';index:idx_request_vendor_status"`
	RejectionReason string     `gorm:"type:text"`
	SubscriptionID  *uuid.UUID `gorm:"type:uuid"`
	DecidedAt       *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionRequestModel) TableName() string {
	return "subscription_requests"
}
