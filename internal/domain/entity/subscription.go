package entity

import (
	"math"
	"slices"
	"time"

	domainerrors "tiffin/internal/domain/errors"

	"github.com/google/uuid"
)

// SubscriptionStatus is a state of the subscription lifecycle.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionPaused    SubscriptionStatus = "paused"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
	SubscriptionExpired   SubscriptionStatus = "expired"
)

// DefaultMealsPerDay is lunch plus dinner.
const DefaultMealsPerDay = 2

var subscriptionTransitions = map[SubscriptionStatus][]SubscriptionStatus{
	SubscriptionActive: {SubscriptionPaused, SubscriptionCancelled, SubscriptionExpired},
	SubscriptionPaused: {SubscriptionActive, SubscriptionCancelled, SubscriptionExpired},
}

// IsValid checks if the status is a known value.
func (s SubscriptionStatus) IsValid() bool {
	switch s {
	case SubscriptionActive, SubscriptionPaused, SubscriptionCancelled, SubscriptionExpired:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are possible.
func (s SubscriptionStatus) IsTerminal() bool {
	return len(subscriptionTransitions[s]) == 0
}

// CanTransitionTo reports whether next is reachable from s in one step.
func (s SubscriptionStatus) CanTransitionTo(next SubscriptionStatus) bool {
	return slices.Contains(subscriptionTransitions[s], next)
}

// PauseDetails records why and for how long a subscription is paused.
type PauseDetails struct {
	PausedAt   time.Time  `json:"pausedAt"`
	PauseDate  time.Time  `json:"pauseDate"`
	ResumeDate *time.Time `json:"resumeDate,omitempty"`
	Reason     string     `json:"reason,omitempty"`
	Notes      string     `json:"notes,omitempty"`
}

// Subscription is a student's prepaid meal plan with one vendor.
type Subscription struct {
	ID           uuid.UUID          `json:"id"`
	StudentID    uuid.UUID          `json:"studentId"`
	VendorID     uuid.UUID          `json:"vendorId"`
	DurationDays int                `json:"durationDays"`
	StartDate    time.Time          `json:"startDate"`
	EndDate      time.Time          `json:"endDate"`
	Status       SubscriptionStatus `json:"status"`
	TotalAmount  float64            `json:"totalAmount"`
	MealsPerDay  int                `json:"mealsPerDay"`
	PauseDetails *PauseDetails      `json:"pauseDetails,omitempty"`
	CancelledAt  *time.Time         `json:"cancelledAt,omitempty"`
	Version      int                `json:"-"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

// SubscriptionEndDate is start plus the given number of days.
func SubscriptionEndDate(start time.Time, durationDays int) time.Time {
	return start.AddDate(0, 0, durationDays)
}

// NewSubscription creates an active subscription priced from the vendor's monthly rate.
func NewSubscription(studentID uuid.UUID, vendor *Vendor, durationDays int, start time.Time) *Subscription {
	start = DateOnly(start)

	return &Subscription{
		StudentID:    studentID,
		VendorID:     vendor.ID,
		DurationDays: durationDays,
		StartDate:    start,
		EndDate:      SubscriptionEndDate(start, durationDays),
		Status:       SubscriptionActive,
		TotalAmount:  vendor.SubscriptionPrice(durationDays),
		MealsPerDay:  DefaultMealsPerDay,
	}
}

// IsOwnedBy reports whether the subscription belongs to the student.
func (s *Subscription) IsOwnedBy(studentID uuid.UUID) bool {
	return s.StudentID == studentID
}

// HasLapsed reports whether the end date has been reached.
func (s *Subscription) HasLapsed(now time.Time) bool {
	return !now.Before(s.EndDate)
}

// EffectiveStatus is the stored status with lazy expiry applied.
func (s *Subscription) EffectiveStatus(now time.Time) SubscriptionStatus {
	if s.Status.CanTransitionTo(SubscriptionExpired) && s.HasLapsed(now) {
		return SubscriptionExpired
	}

	return s.Status
}

// Expire moves a lapsed subscription to expired. It reports whether anything changed.
func (s *Subscription) Expire(now time.Time) bool {
	if s.EffectiveStatus(now) != SubscriptionExpired || s.Status == SubscriptionExpired {
		return false
	}

	s.Status = SubscriptionExpired
	s.PauseDetails = nil

	return true
}

// Pause suspends deliveries from pauseDate. A zero pauseDate means now.
func (s *Subscription) Pause(now, pauseDate time.Time, resumeDate *time.Time, reason, notes string) error {
	s.Expire(now)

	if s.Status != SubscriptionActive {
		if s.Status == SubscriptionPaused {
			return domainerrors.ErrSubscriptionNotActive.WithDetails("subscription is already paused")
		}

		return domainerrors.ErrSubscriptionNotActive
	}

	if pauseDate.IsZero() {
		pauseDate = now
	}

	if resumeDate != nil && !resumeDate.After(pauseDate) {
		return domainerrors.ErrInvalidPauseWindow
	}

	s.Status = SubscriptionPaused
	s.PauseDetails = &PauseDetails{
		PausedAt:   now,
		PauseDate:  pauseDate,
		ResumeDate: resumeDate,
		Reason:     reason,
		Notes:      notes,
	}

	return nil
}

// Resume reactivates a paused subscription and clears its pause details.
func (s *Subscription) Resume(now time.Time) error {
	s.Expire(now)

	if s.Status != SubscriptionPaused {
		return domainerrors.ErrSubscriptionNotPaused
	}

	s.Status = SubscriptionActive
	s.PauseDetails = nil

	return nil
}

// Cancel ends the subscription permanently.
func (s *Subscription) Cancel(now time.Time) error {
	if s.Status == SubscriptionCancelled {
		return domainerrors.ErrSubscriptionAlreadyCancelled
	}

	s.Expire(now)

	if !s.Status.CanTransitionTo(SubscriptionCancelled) {
		return domainerrors.ErrInvalidSubscriptionTransition.WithDetails(
			"cannot cancel a subscription that is " + string(s.Status))
	}

	s.Status = SubscriptionCancelled
	s.CancelledAt = &now

	return nil
}

// DaysCompleted counts whole days elapsed since the start, capped at the duration.
func (s *Subscription) DaysCompleted(now time.Time) int {
	if now.Before(s.StartDate) {
		return 0
	}

	days := int(now.Sub(s.StartDate) / day)

	return min(days, s.DurationDays)
}

// DaysRemaining counts the days left until the end date, rounded up.
func (s *Subscription) DaysRemaining(now time.Time) int {
	if !now.Before(s.EndDate) {
		return 0
	}

	return int(math.Ceil(s.EndDate.Sub(now).Hours() / 24))
}
