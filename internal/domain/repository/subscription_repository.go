package repository

import (
	"context"
	"time"

	"tiffin/internal/domain/entity"
	"tiffin/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for subscription persistence.
var (
	// ErrSubscriptionNotFound is returned when a subscription is not found.
	ErrSubscriptionNotFound = errors.New("subscription not found")
	// ErrSubscriptionVersionConflict is returned when the stored version moved on since the read.
	ErrSubscriptionVersionConflict = errors.New("subscription version conflict")
)

// SubscriptionRepository defines the interface for subscription-related database operations.
type SubscriptionRepository interface {
	// CreateSubscription persists a new subscription at version 1.
	CreateSubscription(ctx context.Context, subscription *entity.Subscription) error

	// FindSubscriptionByID retrieves a subscription by its unique ID.
	FindSubscriptionByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error)

	// FindSubscriptionsByStudent lists a student's subscriptions, newest first.
	FindSubscriptionsByStudent(ctx context.Context, studentID uuid.UUID) ([]*entity.Subscription, error)

	// UpdateSubscriptionState writes status, pause details and cancellation time
	// if the stored version equals subscription.Version, then bumps the version.
	// It returns ErrSubscriptionVersionConflict when another writer got there first.
	UpdateSubscriptionState(ctx context.Context, subscription *entity.Subscription) error

	// CountActiveByVendor counts active or paused subscriptions that have not lapsed.
	CountActiveByVendor(ctx context.Context, vendorID uuid.UUID, now time.Time) (int64, error)

	// CountActiveByStudent counts the student's running subscriptions.
	CountActiveByStudent(ctx context.Context, studentID uuid.UUID, now time.Time) (int64, error)

	// FindLapsedSubscriptions returns active or paused subscriptions whose end date is not after now.
	FindLapsedSubscriptions(ctx context.Context, now time.Time, limit int) ([]*entity.Subscription, error)
}
