package repository

import (
	"context"

	"tiffin/internal/domain/entity"
	"tiffin/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrRequestNotFound is returned when a subscription request is not found.
	ErrRequestNotFound = errors.New("subscription request not found")
	// ErrRequestNotPending is returned when a decision races with another one.
	ErrRequestNotPending = errors.New("subscription request is no longer pending")
)

// SubscriptionRequestRepository stores students' applications to vendors.
type SubscriptionRequestRepository interface {
	CreateRequest(ctx context.Context, request *entity.SubscriptionRequest) error

	FindRequestByID(ctx context.Context, id uuid.UUID) (*entity.SubscriptionRequest, error)

	// FindRequestsByVendor lists requests newest first. A nil status returns all.
	FindRequestsByVendor(ctx context.Context, vendorID uuid.UUID, status *entity.RequestStatus) ([]*entity.SubscriptionRequest, error)

	FindRequestsByStudent(ctx context.Context, studentID uuid.UUID) ([]*entity.SubscriptionRequest, error)

	// HasPendingRequest reports whether the student already waits on this vendor.
	HasPendingRequest(ctx context.Context, studentID, vendorID uuid.UUID) (bool, error)

	// SaveDecision stores an accept or reject decision only while the stored row is still pending.
	SaveDecision(ctx context.Context, request *entity.SubscriptionRequest) error

	CountPendingByVendor(ctx context.Context, vendorID uuid.UUID) (int64, error)
}
