package repository

import (
	"context"
	"time"

	"tiffin/internal/domain/entity"
	"tiffin/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrHolidayNotFound is returned when a holiday is not found.
	ErrHolidayNotFound = errors.New("holiday not found")
	// ErrDuplicateHoliday is returned when the (student, vendor, date) key already exists.
	ErrDuplicateHoliday = errors.New("holiday already exists")
)

// HolidayRepository stores student holidays.
type HolidayRepository interface {
	// CreateHoliday persists a holiday. The storage enforces one row per (student, vendor, date).
	CreateHoliday(ctx context.Context, holiday *entity.Holiday) error

	FindHolidayByID(ctx context.Context, id uuid.UUID) (*entity.Holiday, error)

	// FindHolidaysByStudent lists holidays in [from, to) ordered by date. Zero bounds are open.
	FindHolidaysByStudent(ctx context.Context, studentID uuid.UUID, from, to time.Time) ([]*entity.Holiday, error)

	// FindHolidaysOnDate returns the student's holidays on that day, for any vendor.
	FindHolidaysOnDate(ctx context.Context, studentID uuid.UUID, date time.Time) ([]*entity.Holiday, error)

	UpdateHoliday(ctx context.Context, holiday *entity.Holiday) error

	DeleteHoliday(ctx context.Context, id uuid.UUID) error
}

var (
	// ErrVendorHolidayNotFound is returned when a vendor holiday is not found.
	ErrVendorHolidayNotFound = errors.New("vendor holiday not found")
	// ErrDuplicateVendorHoliday is returned when the vendor already has a holiday on that date.
	ErrDuplicateVendorHoliday = errors.New("vendor holiday already exists")
)

// VendorHolidayRepository stores vendor closures.
type VendorHolidayRepository interface {
	CreateVendorHoliday(ctx context.Context, holiday *entity.VendorHoliday) error

	FindVendorHolidayByID(ctx context.Context, id uuid.UUID) (*entity.VendorHoliday, error)

	// FindVendorHolidays lists every holiday of the vendor, ordered by date.
	FindVendorHolidays(ctx context.Context, vendorID uuid.UUID) ([]*entity.VendorHoliday, error)

	// FindVendorHolidaysUntil lists holidays starting on or before date, the candidates for recurrence checks.
	FindVendorHolidaysUntil(ctx context.Context, vendorID uuid.UUID, date time.Time) ([]*entity.VendorHoliday, error)

	UpdateVendorHoliday(ctx context.Context, holiday *entity.VendorHoliday) error

	DeleteVendorHoliday(ctx context.Context, id uuid.UUID) error
}
