package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	domainerrors "tiffin/internal/domain/errors"
)

func TestHoliday_ConflictsWith(t *testing.T) {
	student := uuid.New()
	vendorA := uuid.New()
	vendorB := uuid.New()
	date := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		a, b  *Holiday
		clash bool
	}{
		{"same vendor same day", NewHoliday(student, &vendorA, date, "", ""), NewHoliday(student, &vendorA, date, ServiceLunch, ""), true},
		{"different vendors", NewHoliday(student, &vendorA, date, "", ""), NewHoliday(student, &vendorB, date, "", ""), false},
		{"all services blocks vendor", NewHoliday(student, nil, date, "", ""), NewHoliday(student, &vendorB, date, "", ""), true},
		{"vendor blocked by all services", NewHoliday(student, &vendorA, date, "", ""), NewHoliday(student, nil, date, "", ""), true},
		{"different day", NewHoliday(student, nil, date, "", ""), NewHoliday(student, nil, date.AddDate(0, 0, 1), "", ""), false},
		{"different student", NewHoliday(student, nil, date, "", ""), NewHoliday(uuid.New(), nil, date, "", ""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.clash, tt.a.ConflictsWith(tt.b))
		})
	}
}

func TestNewHoliday_Defaults(t *testing.T) {
	h := NewHoliday(uuid.New(), nil, time.Date(2025, 5, 1, 13, 0, 0, 0, time.UTC), "", "")

	assert.Equal(t, ServiceBoth, h.ServiceType)
	assert.Equal(t, DefaultHolidayReason, h.Reason)
	assert.True(t, h.IsAllServices())
	assert.Equal(t, 0, h.Date.Hour())
}

func TestHoliday_EffectiveStatus(t *testing.T) {
	now := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)
	h := NewHoliday(uuid.New(), nil, now, "", "")

	assert.Equal(t, HolidayActive, h.EffectiveStatus(now))
	assert.Equal(t, HolidayScheduled, h.EffectiveStatus(now.AddDate(0, 0, -1)))
	assert.Equal(t, HolidayCompleted, h.EffectiveStatus(now.AddDate(0, 0, 1)))
}

func TestCheckHolidayNotice(t *testing.T) {
	now := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)
	notice := 24 * time.Hour

	assert.NoError(t, CheckHolidayNotice(time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC), now, notice))

	err := CheckHolidayNotice(time.Date(2025, 5, 11, 0, 0, 0, 0, time.UTC), now, notice)
	assert.ErrorIs(t, err, domainerrors.ErrHolidayNoticePeriod)
	assert.Contains(t, err.Error(), "24 hours")
}

func TestVendorHoliday_OccursOn(t *testing.T) {
	base := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC) // Monday
	end := base.AddDate(0, 2, 0)

	weekly := &VendorHoliday{Date: base, Recurring: Recurrence{IsRecurring: true, Frequency: RecurWeekly, EndDate: &end}}
	monthly := &VendorHoliday{Date: base, Recurring: Recurrence{IsRecurring: true, Frequency: RecurMonthly}}
	yearly := &VendorHoliday{Date: base, Recurring: Recurrence{IsRecurring: true, Frequency: RecurYearly}}
	once := &VendorHoliday{Date: base}

	assert.True(t, weekly.OccursOn(base.AddDate(0, 0, 14)))
	assert.False(t, weekly.OccursOn(base.AddDate(0, 0, 15)))
	assert.False(t, weekly.OccursOn(base.AddDate(0, 3, 0)))
	assert.False(t, weekly.OccursOn(base.AddDate(0, 0, -7)))
	assert.True(t, monthly.OccursOn(time.Date(2025, 4, 6, 18, 0, 0, 0, time.UTC)))
	assert.True(t, yearly.OccursOn(time.Date(2027, 1, 6, 0, 0, 0, 0, time.UTC)))
	assert.False(t, yearly.OccursOn(time.Date(2027, 2, 6, 0, 0, 0, 0, time.UTC)))
	assert.True(t, once.OccursOn(base.Add(5*time.Hour)))
	assert.False(t, once.OccursOn(base.AddDate(0, 0, 7)))
}

func TestVendorHoliday_CalendarEvent(t *testing.T) {
	h := &VendorHoliday{ID: uuid.New(), Date: time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC), Type: VendorHolidayNight}

	ev := h.CalendarEvent()

	assert.Equal(t, "Night Holiday", ev.Title)
	assert.Equal(t, "2025-02-03", ev.Start)
	assert.Equal(t, "#2563eb", ev.BackgroundColor)
	assert.Equal(t, ev.BackgroundColor, ev.BorderColor)
	assert.Equal(t, "#6b7280", VendorHolidayType("Other").Color())
}
