package service

import (
	"context"
	"time"
)

// EventType names a domain event routed to the worker.
type EventType string

const (
	EventSubscriptionCreated  EventType = "subscription.created"
	EventSubscriptionChanged  EventType = "subscription.status_changed"
	EventSubscriptionExpired  EventType = "subscription.expired"
	EventRequestCreated       EventType = "subscription_request.created"
	EventRequestDecided       EventType = "subscription_request.decided"
	EventOrderStatusChanged   EventType = "order.status_changed"
	EventPaymentRecorded      EventType = "payment.recorded"
	EventPaymentReminder      EventType = "payment.reminder"
	EventAnnouncementSent     EventType = "announcement.sent"
	EventMessageReceived      EventType = "message.received"
	EventHolidayScheduled     EventType = "holiday.scheduled"
	EventVendorHolidayCreated EventType = "vendor_holiday.created"
)

// DomainEvent is something a recipient should be told about.
// The worker turns every event into one inbox notification plus a push.
type DomainEvent struct {
	ID               string            `json:"id"`
	Type             EventType         `json:"type"`
	RequestID        string            `json:"request_id,omitempty"` // For distributed tracing
	RecipientID      string            `json:"recipient_id"`
	RecipientRole    string            `json:"recipient_role"`
	NotificationType string            `json:"notification_type"`
	Title            string            `json:"title"`
	Message          string            `json:"message"`
	ActionURL        string            `json:"action_url,omitempty"`
	Important        bool              `json:"important,omitempty"`
	Data             map[string]string `json:"data,omitempty"`
	OccurredAt       time.Time         `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishEvent hands an event over for async processing
	PublishEvent(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
