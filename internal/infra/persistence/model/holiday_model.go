package model

import (
	"time"

	"tiffin/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// HolidayModel mirrors the 'holidays' table. A NULL vendor_id covers all
// vendors; uniqueness over (student, vendor, date) is created in migrations
// with COALESCE so that NULLs collide.
type HolidayModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	StudentID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	VendorID    *uuid.UUID `gorm:"type:uuid"`
	Date        time.Time  `gorm:"type:date;not null;index"`
	ServiceType string     `gorm:"type:varchar(10);not null;default:'both'"`
	Reason      string     `gorm:"type:varchar(255);not null;default:'Holiday'"`
	Status      string     `gorm:"type:varchar(10);not null;default:'scheduled'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (HolidayModel) TableName() string {
	return "holidays"
}

// VendorHolidayModel mirrors the 'vendor_holidays' table.
type VendorHolidayModel struct {
	ID          uuid.UUID                              `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	VendorID    uuid.UUID                              `gorm:"type:uuid;not null;uniqueIndex:idx_vendor_holiday_date"`
	Date        time.Time                              `gorm:"type:date;not null;uniqueIndex:idx_vendor_holiday_date"`
	Type        string                                 `gorm:"type:varchar(20);not null;default:'All Day'"`
	Description string                                 `gorm:"type:varchar(255)"`
	Recurring   datatypes.JSONType[entity.Recurrence] `gorm:"type:jsonb"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (VendorHolidayModel) TableName() string {
	return "vendor_holidays"
}
