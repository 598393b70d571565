package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	VendorID            uuid.UUID  `gorm:"type:uuid;not null;index:idx_order_vendor_date"`
	CustomerID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	StudentID           *uuid.UUID `gorm:"type:uuid;index"`
	SubscriptionID      *uuid.UUID `gorm:"type:uuid"`
	CustomerName        string     `gorm:"type:varchar(150)"`
	DeliveryDate        time.Time  `gorm:"type:date;not null;index:idx_order_vendor_date"`
	OrderType           string     `gorm:"type:varchar(10);not null;default:'regular'"`
	MealSlot            string     `gorm:"type:varchar(10);not null"`
	DietType            string     `gorm:"type:varchar(10);not null"`
	Hostel              string     `gorm:"type:varchar(10);not null"`
	Room                string     `gorm:"type:varchar(20)"`
	Price               float64    `gorm:"type:numeric(10,2);not null"`
	SpecialInstructions string     `gorm:"type:text"`
	Status              string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	RejectionReason     string     `gorm:"type:varchar(255)"`
	RejectedBy          string     `gorm:"type:varchar(10)"`
	RejectedAt          *time.Time
	RejectionNotes      string `gorm:"type:text"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
