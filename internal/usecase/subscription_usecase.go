package usecase

import (
	"context"
	"time"

	"tiffin/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateSubscriptionInput starts a subscription. A nil StartDate means today.
type CreateSubscriptionInput struct {
	VendorID     uuid.UUID
	DurationDays int
	StartDate    *time.Time
}

// PauseSubscriptionInput suspends deliveries. A nil PauseDate means now.
type PauseSubscriptionInput struct {
	PauseDate  *time.Time
	ResumeDate *time.Time
	Reason     string
	Notes      string
}

// SubscriptionView is a subscription with progress figures computed at read time.
// Status shadows the stored status with the effective one.
type SubscriptionView struct {
	*entity.Subscription
	Status        entity.SubscriptionStatus `json:"status"`
	VendorName    string                    `json:"vendorName"`
	DaysCompleted int                       `json:"daysCompleted"`
	DaysRemaining int                       `json:"daysRemaining"`
}

// SubscriptionUsecase manages a student's subscription lifecycle.
type SubscriptionUsecase interface {
	CreateSubscription(ctx context.Context, studentID uuid.UUID, input CreateSubscriptionInput) (*SubscriptionView, error)

	// ListSubscriptions returns the student's subscriptions, newest first.
	ListSubscriptions(ctx context.Context, studentID uuid.UUID) ([]*SubscriptionView, error)

	GetSubscription(ctx context.Context, studentID, subscriptionID uuid.UUID) (*SubscriptionView, error)
	PauseSubscription(ctx context.Context, studentID, subscriptionID uuid.UUID, input PauseSubscriptionInput) (*SubscriptionView, error)
	ResumeSubscription(ctx context.Context, studentID, subscriptionID uuid.UUID) (*SubscriptionView, error)
	CancelSubscription(ctx context.Context, studentID, subscriptionID uuid.UUID) (*SubscriptionView, error)
}

// CreateRequestInput applies to a vendor for a subscription.
type CreateRequestInput struct {
	VendorID     uuid.UUID
	DurationDays int
	StartDate    *time.Time
	Message      string
}

// QRRequestInput applies to the vendor encoded in a scanned QR code.
type QRRequestInput struct {
	QRData       string
	DurationDays int
	StartDate    *time.Time
	Message      string
}

// RequestFilter values accepted by the vendor request list.
const (
	RequestFilterAll      = "all"
	RequestFilterPending  = "pending"
	RequestFilterAccepted = "accepted"
	RequestFilterRejected = "rejected"
)

// RequestView is a subscription request with the applicant's contact details.
type RequestView struct {
	*entity.SubscriptionRequest
	StudentName  string `json:"studentName,omitempty"`
	StudentEmail string `json:"studentEmail,omitempty"`
	StudentPhone string `json:"studentPhone,omitempty"`
	VendorName   string `json:"vendorName,omitempty"`
}

// RequestDecision is the outcome of accepting a request.
type RequestDecision struct {
	Request      *entity.SubscriptionRequest `json:"request"`
	Subscription *entity.Subscription        `json:"subscription,omitempty"`
	Customer     *entity.Customer            `json:"customer,omitempty"`
}

// SubscriptionRequestUsecase handles students applying to vendors and vendors deciding.
type SubscriptionRequestUsecase interface {
	CreateRequest(ctx context.Context, studentID uuid.UUID, input CreateRequestInput) (*entity.SubscriptionRequest, error)
	CreateRequestFromQR(ctx context.Context, studentID uuid.UUID, input QRRequestInput) (*entity.SubscriptionRequest, error)
	ListVendorRequests(ctx context.Context, vendorID uuid.UUID, filter string) ([]*RequestView, error)
	ListStudentRequests(ctx context.Context, studentID uuid.UUID) ([]*RequestView, error)

	// AcceptRequest creates the subscription and customer record in one transaction.
	AcceptRequest(ctx context.Context, vendorID, requestID uuid.UUID) (*RequestDecision, error)

	RejectRequest(ctx context.Context, vendorID, requestID uuid.UUID, reason string) (*entity.SubscriptionRequest, error)

	// VendorQRCode renders the PNG students scan to apply.
	VendorQRCode(ctx context.Context, vendorID uuid.UUID) ([]byte, error)
}
