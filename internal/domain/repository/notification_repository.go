package repository

import (
	"context"
	"time"

	"tiffin/internal/domain/entity"
	"tiffin/internal/errors"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found or belongs to another user.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationFilter narrows an inbox listing. Expired rows are always excluded.
type NotificationFilter struct {
	UserID   uuid.UUID
	Category entity.NotificationCategory
	IsRead   *bool
	Now      time.Time
	Page     entity.PageQuery
}

// NotificationRepository stores inbox notifications.
type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// ListNotifications pages unexpired notifications newest first.
	ListNotifications(ctx context.Context, filter NotificationFilter) ([]*entity.Notification, int64, error)

	GetStats(ctx context.Context, userID uuid.UUID, now time.Time) (*entity.NotificationStats, error)

	CountByCategory(ctx context.Context, userID uuid.UUID, now time.Time) ([]entity.CategoryCount, error)

	// MarkRead flags one of the user's notifications as read.
	MarkRead(ctx context.Context, id, userID uuid.UUID, at time.Time) error

	// MarkAllRead flags every unread notification of the user and returns how many changed.
	MarkAllRead(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error)

	DeleteNotification(ctx context.Context, id, userID uuid.UUID) error

	// DeleteReadNotifications clears the user's read notifications.
	DeleteReadNotifications(ctx context.Context, userID uuid.UUID) (int64, error)
}
