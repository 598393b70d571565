package model

import (
	"time"

	"tiffin/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationModel mirrors the 'notifications' table. Rows past expires_at
// are hidden from every query.
type NotificationModel struct {
	ID          uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID         `gorm:"type:uuid;not null;index:idx_notification_user_created"`
	Type        string            `gorm:"type:varchar(20);not null"`
	Category    string            `gorm:"type:varchar(20);not null;index"`
	Title       string            `gorm:"type:varchar(200);not null"`
	Message     string            `gorm:"type:text;not null"`
	ActionURL   string            `gorm:"type:varchar(500)"`
	ActionLabel string            `gorm:"type:varchar(100)"`
	Metadata    datatypes.JSONMap `gorm:"type:jsonb"`
	Priority    int               `gorm:"not null;default:3;check:priority BETWEEN 1 AND 5"`
	IsImportant bool              `gorm:"not null;default:false"`
	IsRead      bool              `gorm:"not null;default:false"`
	ReadAt      *time.Time
	ExpiresAt   time.Time `gorm:"not null;index"`
	CreatedAt   time.Time `gorm:"index:idx_notification_user_created"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// MessageModel mirrors the 'messages' table.
type MessageModel struct {
	ID                    uuid.UUID                              `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ThreadID              uuid.UUID                              `gorm:"type:uuid;not null;index"`
	IsThreadStart         bool                                   `gorm:"not null;default:false"`
	StudentID             uuid.UUID                              `gorm:"type:uuid;not null;index"`
	VendorID              uuid.UUID                              `gorm:"type:uuid;not null;index"`
	Direction             string                                 `gorm:"type:varchar(20);not null"`
	Subject               string                                 `gorm:"type:varchar(200)"`
	Body                  string                                 `gorm:"type:text;not null"`
	Attachments           datatypes.JSONSlice[entity.Attachment] `gorm:"type:jsonb"`
	Priority              string                                 `gorm:"type:varchar(10);not null;default:'normal'"`
	IsRead                bool                                   `gorm:"not null;default:false"`
	ReadAt                *time.Time
	RelatedSubscriptionID *uuid.UUID `gorm:"type:uuid"`
	RelatedOrderID        *uuid.UUID `gorm:"type:uuid"`
	CreatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}
