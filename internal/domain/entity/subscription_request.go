package entity

import (
	"time"

	domainerrors "tiffin/internal/domain/errors"

	"github.com/google/uuid"
)

// RequestStatus is the vendor's decision on a subscription request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestRejected RequestStatus = "rejected"
)

// RequestSource tells how the student reached the vendor.
type RequestSource string

const (
	RequestSourceDirect RequestSource = "direct"
	RequestSourceQR     RequestSource = "qr"
)

// SubscriptionRequest is a student's application to subscribe to a vendor.
type SubscriptionRequest struct {
	ID              uuid.UUID     `json:"id"`
	StudentID       uuid.UUID     `json:"studentId"`
	VendorID        uuid.UUID     `json:"vendorId"`
	DurationDays    int           `json:"durationDays"`
	StartDate       time.Time     `json:"startDate"`
	Message         string        `json:"message,omitempty"`
	Source          RequestSource `json:"source"`
	Status          RequestStatus `json:"status"`
	RejectionReason string        `json:"rejectionReason,omitempty"`
	SubscriptionID  *uuid.UUID    `json:"subscriptionId,omitempty"`
	DecidedAt       *time.Time    `json:"decidedAt,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// Accept links the request to the subscription created for it.
func (r *SubscriptionRequest) Accept(subscriptionID uuid.UUID, now time.Time) error {
	if r.Status != RequestPending {
		return domainerrors.ErrRequestAlreadyDecided
	}

	r.Status = RequestAccepted
	r.SubscriptionID = &subscriptionID
	r.DecidedAt = &now

	return nil
}

// Reject records the vendor's refusal.
func (r *SubscriptionRequest) Reject(reason string, now time.Time) error {
	if r.Status != RequestPending {
		return domainerrors.ErrRequestAlreadyDecided
	}

	r.Status = RequestRejected
	r.RejectionReason = reason
	r.DecidedAt = &now

	return nil
}
