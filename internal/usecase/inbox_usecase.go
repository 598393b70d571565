package usecase

import (
	"context"

	"tiffin/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Notifications ---

type NotificationQuery struct {
	Category entity.NotificationCategory
	IsRead   *bool
	Page     entity.PageQuery
}

type NotificationList struct {
	Notifications []*entity.Notification   `json:"notifications"`
	Stats         entity.NotificationStats `json:"stats"`
	Pagination    entity.Pagination        `json:"pagination"`
}

type MarkAllReadOutput struct {
	ModifiedCount int64 `json:"modifiedCount"`
	UnreadCount   int64 `json:"unreadCount"`
}

// NotificationUsecase serves the caller's inbox.
type NotificationUsecase interface {
	ListNotifications(ctx context.Context, userID uuid.UUID, query NotificationQuery) (*NotificationList, error)
	GetCategories(ctx context.Context, userID uuid.UUID) ([]entity.CategoryCount, error)
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (*MarkAllReadOutput, error)
	DeleteNotification(ctx context.Context, userID, notificationID uuid.UUID) error

	// ClearRead deletes the read notifications and returns how many were removed.
	ClearRead(ctx context.Context, userID uuid.UUID) (int64, error)
}

// --- Messages ---

// SendMessageInput addresses a message to the counterpart of the sender.
// A nil ThreadID starts a new thread.
type SendMessageInput struct {
	CounterpartID         uuid.UUID
	ThreadID              *uuid.UUID
	Subject               string
	Body                  string
	Priority              entity.MessagePriority
	Attachments           []entity.Attachment
	RelatedSubscriptionID *uuid.UUID
	RelatedOrderID        *uuid.UUID
}

// MessageUsecase handles student-vendor conversations.
type MessageUsecase interface {
	SendMessage(ctx context.Context, sender entity.Principal, input SendMessageInput) (*entity.Message, error)

	// ListThreads returns one summary per thread, most recent first.
	ListThreads(ctx context.Context, participant entity.Principal) ([]*entity.MessageThread, error)

	// GetThread returns the thread oldest first and marks incoming messages read.
	GetThread(ctx context.Context, participant entity.Principal, threadID uuid.UUID) ([]*entity.Message, error)

	MarkMessageRead(ctx context.Context, participant entity.Principal, messageID uuid.UUID) error
}
