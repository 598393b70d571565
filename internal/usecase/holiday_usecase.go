package usecase

import (
	"context"
	"time"

	"tiffin/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateHolidayInput schedules one holiday per date.
type CreateHolidayInput struct {
	VendorID    *uuid.UUID
	Dates       []time.Time
	ServiceType entity.ServiceType
	Reason      string
}

// UpdateHolidayInput is a partial holiday update. Nil fields are kept.
type UpdateHolidayInput struct {
	Date        *time.Time
	ServiceType *entity.ServiceType
	Reason      *string
}

// HolidayDateError explains why one date of a batch was not scheduled.
type HolidayDateError struct {
	Date    string `json:"date"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HolidayBatchResult reports a multi-date create. Partial success is allowed.
type HolidayBatchResult struct {
	Created []*entity.Holiday  `json:"created"`
	Errors  []HolidayDateError `json:"errors,omitempty"`
}

// HolidayUsecase manages the days a student skips deliveries.
type HolidayUsecase interface {
	ListHolidays(ctx context.Context, studentID uuid.UUID) ([]*entity.Holiday, error)
	ListMonth(ctx context.Context, studentID uuid.UUID, year int, month time.Month) ([]*entity.Holiday, error)
	CreateHolidays(ctx context.Context, studentID uuid.UUID, input CreateHolidayInput) (*HolidayBatchResult, error)
	UpdateHoliday(ctx context.Context, studentID, holidayID uuid.UUID, input UpdateHolidayInput) (*entity.Holiday, error)
	DeleteHoliday(ctx context.Context, studentID, holidayID uuid.UUID) error
}

type CreateVendorHolidayInput struct {
	Date        time.Time
	Type        entity.VendorHolidayType
	Description string
	Recurring   *entity.Recurrence
}

// UpdateVendorHolidayInput is a partial update. Nil fields are kept.
type UpdateVendorHolidayInput struct {
	Date        *time.Time
	Type        *entity.VendorHolidayType
	Description *string
	Recurring   *entity.Recurrence
}

// VendorHolidayCalendar is the vendor's holidays plus their calendar rendering.
type VendorHolidayCalendar struct {
	Holidays []*entity.VendorHoliday `json:"holidays"`
	Events   []entity.CalendarEvent  `json:"events"`
}

// HolidayCheck tells whether the vendor is closed on a date.
type HolidayCheck struct {
	Date      string                `json:"date"`
	IsHoliday bool                  `json:"isHoliday"`
	Holiday   *entity.VendorHoliday `json:"holiday"`
}

// VendorHolidayUsecase manages the days a vendor does not deliver.
type VendorHolidayUsecase interface {
	ListVendorHolidays(ctx context.Context, vendorID uuid.UUID) (*VendorHolidayCalendar, error)
	CheckHoliday(ctx context.Context, vendorID uuid.UUID, date time.Time) (*HolidayCheck, error)
	CreateVendorHoliday(ctx context.Context, vendorID uuid.UUID, input CreateVendorHolidayInput) (*entity.VendorHoliday, error)
	UpdateVendorHoliday(ctx context.Context, vendorID, holidayID uuid.UUID, input UpdateVendorHolidayInput) (*entity.VendorHoliday, error)
	DeleteVendorHoliday(ctx context.Context, vendorID, holidayID uuid.UUID) error
}
