package repository

import (
	"context"
	"time"

	"tiffin/internal/domain/entity"
	"tiffin/internal/errors"

	"github.com/google/uuid"
)

// ErrMessageNotFound is returned when a message is not found.
var ErrMessageNotFound = errors.New("message not found")

// MessageRepository stores conversation messages.
type MessageRepository interface {
	CreateMessage(ctx context.Context, message *entity.Message) error

	FindMessageByID(ctx context.Context, id uuid.UUID) (*entity.Message, error)

	// FindThreadMessages returns the thread oldest first.
	FindThreadMessages(ctx context.Context, threadID uuid.UUID) ([]*entity.Message, error)

	// FindMessagesByParticipant returns every message the principal sent or received, newest first.
	FindMessagesByParticipant(ctx context.Context, participant entity.Principal) ([]*entity.Message, error)

	MarkMessageRead(ctx context.Context, id uuid.UUID, at time.Time) error

	// MarkThreadRead flags unread messages in the thread travelling in direction.
	MarkThreadRead(ctx context.Context, threadID uuid.UUID, direction entity.MessageDirection, at time.Time) (int64, error)
}
