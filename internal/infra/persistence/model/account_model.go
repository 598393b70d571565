// Package model holds the GORM table mappings used by the repositories and AutoMigrate.
package model

import (
	"time"

	"tiffin/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// StudentModel mirrors the 'students' table.
type StudentModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FirstName    string    `gorm:"type:varchar(100);not null"`
	LastName     string    `gorm:"type:varchar(100)"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Phone        string    `gorm:"type:varchar(20)"`
	Address      datatypes.JSONType[entity.StudentAddress]     `gorm:"type:jsonb"`
	Preferences  datatypes.JSONType[entity.StudentPreferences] `gorm:"type:jsonb"`
	Settings     datatypes.JSONType[entity.StudentSettings]    `gorm:"type:jsonb"`
	IsActive     bool                                          `gorm:"not null;default:true"`
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (StudentModel) TableName() string {
	return "students"
}

// VendorModel mirrors the 'vendors' table. Personal, business and pricing
// details are flattened into columns so listings can filter on them.
type VendorModel struct {
	ID                  uuid.UUID                  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email               string                     `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash        string                     `gorm:"type:varchar(255);not null"`
	FullName            string                     `gorm:"type:varchar(150);not null"`
	Phone               string                     `gorm:"type:varchar(20)"`
	YearsExperience     int                        `gorm:"not null;default:0"`
	ServiceName         string                     `gorm:"type:varchar(150);not null;index"`
	Description         string                     `gorm:"type:text"`
	FoodType            string                     `gorm:"type:varchar(10);not null;default:'both'"`
	Cuisines            datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Address             string                     `gorm:"type:text"`
	Pincode             string                     `gorm:"type:varchar(10)"`
	DeliveryLocations   datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Latitude            *float64
	Longitude           *float64
	MonthlyRate         float64 `gorm:"type:numeric(12,2);not null;default:0"`
	OneTimeRate         float64 `gorm:"type:numeric(12,2);not null;default:0"`
	WeeklyHoliday       string  `gorm:"type:varchar(10);not null;default:'none'"`
	MinSubscriptionDays int     `gorm:"not null;default:15"`
	DeliveryRadiusKm    float64 `gorm:"not null;default:5"`
	Status              string  `gorm:"type:varchar(10);not null;default:'pending';index"`
	Rating              float64 `gorm:"type:numeric(2,1);not null;default:0"`
	TotalOrders         int     `gorm:"not null;default:0"`
	TotalRevenue        float64 `gorm:"type:numeric(14,2);not null;default:0"`
	IsVerified          bool    `gorm:"not null;default:false"`
	IsActive            bool    `gorm:"not null;default:true"`
	LastLogin           *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (VendorModel) TableName() string {
	return "vendors"
}
