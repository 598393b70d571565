package entity

import (
	"fmt"
	"time"

	domainerrors "tiffin/internal/domain/errors"

	"github.com/google/uuid"
)

// ServiceType selects which meals a holiday skips.
type ServiceType string

const (
	ServiceLunch  ServiceType = "lunch"
	ServiceDinner ServiceType = "dinner"
	ServiceBoth   ServiceType = "both"
)

// HolidayStatus is derived from the holiday date relative to today.
type HolidayStatus string

const (
	HolidayScheduled HolidayStatus = "scheduled"
	HolidayActive    HolidayStatus = "active"
	HolidayCompleted HolidayStatus = "completed"
)

// DefaultHolidayReason is used when the student gives none.
const DefaultHolidayReason = "Holiday"

// Holiday is a day on which a student skips deliveries.
// A nil VendorID covers every vendor the student subscribes to.
type Holiday struct {
	ID          uuid.UUID     `json:"id"`
	StudentID   uuid.UUID     `json:"studentId"`
	VendorID    *uuid.UUID    `json:"vendorId"`
	Date        time.Time     `json:"date"`
	ServiceType ServiceType   `json:"serviceType"`
	Reason      string        `json:"reason"`
	Status      HolidayStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// NewHoliday builds a holiday with defaults applied.
func NewHoliday(studentID uuid.UUID, vendorID *uuid.UUID, date time.Time, serviceType ServiceType, reason string) *Holiday {
	if serviceType == "" {
		serviceType = ServiceBoth
	}

	if reason == "" {
		reason = DefaultHolidayReason
	}

	return &Holiday{
		StudentID:   studentID,
		VendorID:    vendorID,
		Date:        DateOnly(date),
		ServiceType: serviceType,
		Reason:      reason,
		Status:      HolidayScheduled,
	}
}

// IsAllServices reports whether the holiday applies to every vendor.
func (h *Holiday) IsAllServices() bool {
	return h.VendorID == nil || *h.VendorID == uuid.Nil
}

// EffectiveStatus compares the holiday date with today.
func (h *Holiday) EffectiveStatus(now time.Time) HolidayStatus {
	today := DateOnly(now)
	date := DateOnly(h.Date)

	switch {
	case date.After(today):
		return HolidayScheduled
	case date.Equal(today):
		return HolidayActive
	default:
		return HolidayCompleted
	}
}

// ConflictsWith reports whether the two holidays cover the same student, day and service.
// An all-services holiday overlaps every holiday on the same day.
func (h *Holiday) ConflictsWith(other *Holiday) bool {
	if h.ID != uuid.Nil && h.ID == other.ID {
		return false
	}

	if h.StudentID != other.StudentID || !SameDay(h.Date, other.Date) {
		return false
	}

	if h.IsAllServices() || other.IsAllServices() {
		return true
	}

	return *h.VendorID == *other.VendorID
}

// CheckHolidayNotice rejects dates closer than notice to now.
func CheckHolidayNotice(date, now time.Time, notice time.Duration) error {
	if HasAdvanceNotice(DateOnly(date), now, notice) {
		return nil
	}

	return domainerrors.ErrHolidayNoticePeriod.WithMessage(
		fmt.Sprintf("Holiday must be at least %d hours in advance", int(notice.Hours())))
}
