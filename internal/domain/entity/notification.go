package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType is the source of a notification.
type NotificationType string

const (
	NotifyOrder        NotificationType = "order"
	NotifyPayment      NotificationType = "payment"
	NotifySubscription NotificationType = "subscription"
	NotifyMessage      NotificationType = "message"
	NotifySystem       NotificationType = "system"
	NotifyPromotion    NotificationType = "promotion"
	NotifyHoliday      NotificationType = "holiday"
	NotifyVendor       NotificationType = "vendor"
)

// NotificationCategory groups notifications in the inbox.
type NotificationCategory string

const (
	CategoryOrders     NotificationCategory = "orders"
	CategoryPayments   NotificationCategory = "payments"
	CategorySystem     NotificationCategory = "system"
	CategoryMessages   NotificationCategory = "messages"
	CategoryPromotions NotificationCategory = "promotions"
)

// NotificationCategories lists inbox categories in display order.
var NotificationCategories = []NotificationCategory{
	CategoryOrders, CategoryPayments, CategorySystem, CategoryMessages, CategoryPromotions,
}

// Category maps a notification type onto its inbox category.
func (t NotificationType) Category() NotificationCategory {
	switch t {
	case NotifyOrder, NotifySubscription, NotifyHoliday:
		return CategoryOrders
	case NotifyPayment:
		return CategoryPayments
	case NotifyMessage, NotifyVendor:
		return CategoryMessages
	case NotifyPromotion:
		return CategoryPromotions
	default:
		return CategorySystem
	}
}

const (
	// DefaultNotificationTTL is how long a notification stays visible.
	DefaultNotificationTTL = 30 * 24 * time.Hour
	// DefaultNotificationPriority sits in the middle of the 1-5 scale.
	DefaultNotificationPriority = 3
)

// Notification is an inbox entry for a student or vendor.
type Notification struct {
	ID          uuid.UUID            `json:"id"`
	UserID      uuid.UUID            `json:"userId"`
	Type        NotificationType     `json:"type"`
	Category    NotificationCategory `json:"category"`
	Title       string               `json:"title"`
	Message     string               `json:"message"`
	ActionURL   string               `json:"actionUrl,omitempty"`
	ActionLabel string               `json:"actionLabel,omitempty"`
	Metadata    map[string]string    `json:"metadata,omitempty"`
	Priority    int                  `json:"priority"`
	IsImportant bool                 `json:"isImportant"`
	IsRead      bool                 `json:"isRead"`
	ReadAt      *time.Time           `json:"readAt,omitempty"`
	ExpiresAt   time.Time            `json:"expiresAt"`
	CreatedAt   time.Time            `json:"createdAt"`
}

// NewNotification applies category, priority and expiry defaults.
func NewNotification(userID uuid.UUID, typ NotificationType, title, message string, now time.Time) *Notification {
	return &Notification{
		UserID:    userID,
		Type:      typ,
		Category:  typ.Category(),
		Title:     title,
		Message:   message,
		Priority:  DefaultNotificationPriority,
		Metadata:  map[string]string{},
		ExpiresAt: now.Add(DefaultNotificationTTL),
		CreatedAt: now,
	}
}

// IsExpired reports whether the notification has outlived its TTL.
func (n *Notification) IsExpired(now time.Time) bool {
	return !now.Before(n.ExpiresAt)
}

// NotificationStats summarises an inbox.
type NotificationStats struct {
	Total  int64 `json:"total"`
	Unread int64 `json:"unread"`
	Read   int64 `json:"read"`
}

// CategoryCount is the number of notifications in one category.
type CategoryCount struct {
	Category NotificationCategory `json:"category"`
	Count    int64                `json:"count"`
	Unread   int64                `json:"unread"`
}
