package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "tiffin/internal/domain/errors"
)

func newTestSubscription(now time.Time) *Subscription {
	vendor := &Vendor{ID: uuid.New(), Pricing: VendorPricing{MonthlyRate: 3000}}

	return NewSubscription(uuid.New(), vendor, 30, now)
}

func TestNewSubscription_DerivesEndDateAndPrice(t *testing.T) {
	start := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)
	vendor := &Vendor{ID: uuid.New(), Pricing: VendorPricing{MonthlyRate: 2500}}

	sub := NewSubscription(uuid.New(), vendor, 20, start)

	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), sub.StartDate)
	assert.Equal(t, time.Date(2025, 3, 30, 0, 0, 0, 0, time.UTC), sub.EndDate)
	assert.Equal(t, float64(1667), sub.TotalAmount)
	assert.Equal(t, SubscriptionActive, sub.Status)
	assert.Equal(t, DefaultMealsPerDay, sub.MealsPerDay)
}

func TestSubscription_PauseResume(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	sub := newTestSubscription(now)
	resume := now.Add(72 * time.Hour)

	require.NoError(t, sub.Pause(now, time.Time{}, &resume, "exams", ""))
	assert.Equal(t, SubscriptionPaused, sub.Status)
	require.NotNil(t, sub.PauseDetails)
	assert.Equal(t, now, sub.PauseDetails.PauseDate)
	assert.Equal(t, "exams", sub.PauseDetails.Reason)

	err := sub.Pause(now, time.Time{}, nil, "", "")
	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionNotActive)

	require.NoError(t, sub.Resume(now.Add(time.Hour)))
	assert.Equal(t, SubscriptionActive, sub.Status)
	assert.Nil(t, sub.PauseDetails)
}

func TestSubscription_ResumeRequiresPaused(t *testing.T) {
	now := time.Now()
	sub := newTestSubscription(now)

	err := sub.Resume(now)

	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionNotPaused)
	assert.Equal(t, SubscriptionActive, sub.Status)
}

func TestSubscription_PauseRejectsResumeBeforePause(t *testing.T) {
	now := time.Now()
	sub := newTestSubscription(now)
	resume := now.Add(-time.Hour)

	err := sub.Pause(now, now, &resume, "", "")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidPauseWindow)
	assert.Equal(t, SubscriptionActive, sub.Status)
}

func TestSubscription_Cancel(t *testing.T) {
	now := time.Now()
	sub := newTestSubscription(now)

	require.NoError(t, sub.Cancel(now))
	assert.Equal(t, SubscriptionCancelled, sub.Status)
	require.NotNil(t, sub.CancelledAt)

	err := sub.Cancel(now)
	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionAlreadyCancelled)

	err = sub.Resume(now)
	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionNotPaused)
}

func TestSubscription_LazyExpiry(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	sub := newTestSubscription(start)
	after := sub.EndDate.Add(time.Minute)

	assert.Equal(t, SubscriptionActive, sub.EffectiveStatus(start))
	assert.Equal(t, SubscriptionExpired, sub.EffectiveStatus(after))
	assert.Equal(t, SubscriptionActive, sub.Status)

	err := sub.Cancel(after)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidSubscriptionTransition)
	assert.Equal(t, SubscriptionExpired, sub.Status)
	assert.False(t, sub.Expire(after))
}

func TestSubscription_DayCounters(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	sub := newTestSubscription(start)
	now := start.Add(10*24*time.Hour + 6*time.Hour)

	assert.Equal(t, 10, sub.DaysCompleted(now))
	assert.Equal(t, 20, sub.DaysRemaining(now))
	assert.Equal(t, 0, sub.DaysCompleted(start.Add(-time.Hour)))
	assert.Equal(t, 30, sub.DaysCompleted(sub.EndDate.Add(48*time.Hour)))
	assert.Equal(t, 0, sub.DaysRemaining(sub.EndDate))
}

func TestSubscriptionStatus_Transitions(t *testing.T) {
	tests := []struct {
		from, to SubscriptionStatus
		want     bool
	}{
		{SubscriptionActive, SubscriptionPaused, true},
		{SubscriptionActive, SubscriptionCancelled, true},
		{SubscriptionPaused, SubscriptionActive, true},
		{SubscriptionPaused, SubscriptionExpired, true},
		{SubscriptionCancelled, SubscriptionActive, false},
		{SubscriptionExpired, SubscriptionActive, false},
		{SubscriptionActive, SubscriptionActive, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}
