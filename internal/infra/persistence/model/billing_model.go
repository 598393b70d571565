package model

import (
	"time"

	"tiffin/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CustomerModel mirrors the 'customers' table, a vendor's delivery ledger.
type CustomerModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	VendorID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	StudentID        *uuid.UUID `gorm:"type:uuid"`
	Name             string     `gorm:"type:varchar(150);not null"`
	Phone            string     `gorm:"type:varchar(20)"`
	Email            string     `gorm:"type:varchar(255)"`
	Hostel           string     `gorm:"type:varchar(10)"`
	Room             string     `gorm:"type:varchar(20)"`
	PlanType         string     `gorm:"type:varchar(50)"`
	MonthlyAmount    float64    `gorm:"type:numeric(12,2);not null;default:0"`
	PaymentStatus    string     `gorm:"type:varchar(10);not null;default:'pending';index"`
	LastPaymentDate  *time.Time
	NextPaymentDate  *time.Time
	OverdueDays      int `gorm:"not null;default:0"`
	ReminderCount    int `gorm:"not null;default:0"`
	ReminderLastSent *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}

// PaymentModel mirrors the 'payments' table.
type PaymentModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	VendorID      uuid.UUID `gorm:"type:uuid;not null;index:idx_payment_vendor_date"`
	CustomerID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount        float64   `gorm:"type:numeric(12,2);not null;check:amount > 0"`
	Method        string    `gorm:"type:varchar(20);not null"`
	Status        string    `gorm:"type:varchar(10);not null;default:'completed'"`
	PaymentDate   time.Time `gorm:"not null;index:idx_payment_vendor_date"`
	TransactionID string    `gorm:"type:varchar(100)"`
	BillingMonth  string    `gorm:"type:varchar(20)"`
	BillingStart  time.Time
	BillingEnd    time.Time
	ReceiptNumber string `gorm:"type:varchar(40);not null;uniqueIndex"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}

// AnnouncementModel mirrors the 'announcements' table.
type AnnouncementModel struct {
	ID             uuid.UUID                                 `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	VendorID       uuid.UUID                                 `gorm:"type:uuid;not null;index"`
	Title          string                                    `gorm:"type:varchar(200);not null"`
	Content        string                                    `gorm:"type:text;not null"`
	TargetAudience datatypes.JSONType[entity.TargetAudience] `gorm:"type:jsonb"`
	Status         string                                    `gorm:"type:varchar(10);not null;default:'draft';index"`
	ScheduleDate   *time.Time
	SentAt         *time.Time
	ReadCount      int `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (AnnouncementModel) TableName() string {
	return "announcements"
}
