package entity

import (
	"time"

	"github.com/google/uuid"
)

// VendorHolidayType is the part of the day a vendor is closed.
type VendorHolidayType string

const (
	VendorHolidayAllDay    VendorHolidayType = "All Day"
	VendorHolidayAfternoon VendorHolidayType = "Afternoon"
	VendorHolidayNight     VendorHolidayType = "Night"
)

// Color is the calendar colour used for the holiday type.
func (t VendorHolidayType) Color() string {
	switch t {
	case VendorHolidayAllDay:
		return "#ef4444"
	case VendorHolidayAfternoon:
		return "#f59e0b"
	case VendorHolidayNight:
		return "#2563eb"
	default:
		return "#6b7280"
	}
}

// IsValid checks if the type is a known value.
func (t VendorHolidayType) IsValid() bool {
	switch t {
	case VendorHolidayAllDay, VendorHolidayAfternoon, VendorHolidayNight:
		return true
	default:
		return false
	}
}

// RecurrenceFrequency is how often a recurring holiday repeats.
type RecurrenceFrequency string

const (
	RecurWeekly  RecurrenceFrequency = "weekly"
	RecurMonthly RecurrenceFrequency = "monthly"
	RecurYearly  RecurrenceFrequency = "yearly"
)

type Recurrence struct {
	IsRecurring bool                `json:"isRecurring"`
	Frequency   RecurrenceFrequency `json:"frequency,omitempty"`
	EndDate     *time.Time          `json:"endDate,omitempty"`
}

// VendorHoliday is a day on which a vendor does not deliver.
type VendorHoliday struct {
	ID          uuid.UUID         `json:"id"`
	VendorID    uuid.UUID         `json:"vendorId"`
	Date        time.Time         `json:"date"`
	Type        VendorHolidayType `json:"type"`
	Description string            `json:"description"`
	Recurring   Recurrence        `json:"recurring"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// OccursOn reports whether the holiday falls on the given day, honouring recurrence.
func (h *VendorHoliday) OccursOn(t time.Time) bool {
	date := DateOnly(h.Date)
	target := DateOnly(t)

	if target.Equal(date) {
		return true
	}

	if !h.Recurring.IsRecurring || target.Before(date) {
		return false
	}

	if h.Recurring.EndDate != nil && target.After(DateOnly(*h.Recurring.EndDate)) {
		return false
	}

	switch h.Recurring.Frequency {
	case RecurWeekly:
		return target.Weekday() == date.Weekday()
	case RecurMonthly:
		return target.Day() == date.Day()
	case RecurYearly:
		return target.Day() == date.Day() && target.Month() == date.Month()
	default:
		return false
	}
}

// CalendarEvent is the calendar widget representation of a vendor holiday.
type CalendarEvent struct {
	ID              uuid.UUID      `json:"id"`
	Title           string         `json:"title"`
	Start           string         `json:"start"`
	AllDay          bool           `json:"allDay"`
	BackgroundColor string         `json:"backgroundColor"`
	BorderColor     string         `json:"borderColor"`
	TextColor       string         `json:"textColor"`
	ExtendedProps   map[string]any `json:"extendedProps"`
}

// CalendarEvent renders the holiday for the vendor calendar.
func (h *VendorHoliday) CalendarEvent() CalendarEvent {
	color := h.Type.Color()

	return CalendarEvent{
		ID:              h.ID,
		Title:           string(h.Type) + " Holiday",
		Start:           FormatDate(h.Date),
		AllDay:          true,
		BackgroundColor: color,
		BorderColor:     color,
		TextColor:       "white",
		ExtendedProps: map[string]any{
			"type":        h.Type,
			"description": h.Description,
			"recurring":   h.Recurring,
		},
	}
}
