package usecase

import (
	"context"

	"tiffin/internal/domain/service"
	"tiffin/internal/errors"
)

// retryableError marks a failure the transport should redeliver.
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return e.err.Error()
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// Retryable marks err as transient. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}

	return &retryableError{err: err}
}

// IsRetryable reports whether err, or anything it wraps, was marked transient.
func IsRetryable(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// DeliveryResult counts the push outcome of one event.
type DeliveryResult struct {
	NotificationID string `json:"notificationId"`
	Devices        int    `json:"devices"`
	Sent           int    `json:"sent"`
	Failed         int    `json:"failed"`
	InvalidRemoved int64  `json:"invalidRemoved"`
}

// EventUsecase turns domain events into inbox notifications and pushes.
type EventUsecase interface {
	// ProcessEvent returns an error wrapped by Retryable when redelivery may succeed.
	ProcessEvent(ctx context.Context, event *service.DomainEvent) (*DeliveryResult, error)
}

// SweepResult counts what one maintenance pass changed.
type SweepResult struct {
	ExpiredSubscriptions   int `json:"expiredSubscriptions"`
	Conflicts              int `json:"conflicts"`
	DeliveredAnnouncements int `json:"deliveredAnnouncements"`
}

// SweepUsecase performs the worker's periodic maintenance.
type SweepUsecase interface {
	// Sweep persists lapsed subscriptions as expired and delivers due announcements.
	Sweep(ctx context.Context) (*SweepResult, error)
}
