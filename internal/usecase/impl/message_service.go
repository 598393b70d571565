package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "tiffin/internal/delivery/context"
	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/domain/repository"
	"tiffin/internal/domain/service"
	"tiffin/internal/errors"
	"tiffin/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type messageService struct {
	messageRepo repository.MessageRepository
	studentRepo repository.StudentRepository
	vendorRepo  repository.VendorRepository
	events      eventPublisher
	logger      *slog.Logger
	now         func() time.Time
}

// MessageServiceParams holds dependencies for MessageService, injected by Fx.
type MessageServiceParams struct {
	fx.In

	MessageRepo repository.MessageRepository
	StudentRepo repository.StudentRepository
	VendorRepo  repository.VendorRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewMessageService creates a new message service instance
func NewMessageService(params MessageServiceParams) usecase.MessageUsecase {
	logger := loggerOrDefault(params.Logger)

	return &messageService{
		messageRepo: params.MessageRepo,
		studentRepo: params.StudentRepo,
		vendorRepo:  params.VendorRepo,
		events:      eventPublisher{publisher: params.Publisher, logger: logger},
		logger:      logger,
		now:         systemClock,
	}
}

func (s *messageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// SendMessage starts a thread or replies to one the sender takes part in.
func (s *messageService) SendMessage(ctx context.Context, sender entity.Principal, input usecase.SendMessageInput) (*entity.Message, error) {
	body := strings.TrimSpace(input.Body)
	if body == "" {
		return nil, domainerrors.NewValidationError("", domainerrors.FieldError{Field: "body", Message: "is required"})
	}

	message := &entity.Message{
		Direction:             entity.DirectionFrom(sender.Role),
		Subject:               strings.TrimSpace(input.Subject),
		Body:                  body,
		Attachments:           input.Attachments,
		Priority:              input.Priority,
		RelatedSubscriptionID: input.RelatedSubscriptionID,
		RelatedOrderID:        input.RelatedOrderID,
		CreatedAt:             s.now(),
	}
	if message.Priority == "" {
		message.Priority = entity.PriorityNormal
	}

	if input.ThreadID == nil {
		if err := s.startThread(ctx, sender, input.CounterpartID, message); err != nil {
			return nil, err
		}
	} else {
		if err := s.joinThread(ctx, sender, *input.ThreadID, message); err != nil {
			return nil, err
		}
	}

	if err := s.messageRepo.CreateMessage(ctx, message); err != nil {
		return nil, errors.Wrap(err, "failed to create message")
	}

	s.log(ctx).Info("Message sent",
		slog.Any("messageID", message.ID),
		slog.Any("threadID", message.ThreadID),
		slog.String("direction", string(message.Direction)),
	)

	event := newEvent(service.EventMessageReceived,
		message.Recipient(),
		entity.NotifyMessage,
		"New message: "+message.Subject,
		truncate(message.Body, 120),
	)
	event.ActionURL = "/messages/threads/" + message.ThreadID.String()
	event.Important = message.Priority == entity.PriorityUrgent || message.Priority == entity.PriorityHigh
	event.Data["thread_id"] = message.ThreadID.String()
	event.Data["message_id"] = message.ID.String()
	s.events.publish(ctx, event)

	return message, nil
}

func (s *messageService) startThread(ctx context.Context, sender entity.Principal, counterpartID uuid.UUID, message *entity.Message) error {
	if message.Subject == "" {
		return domainerrors.NewValidationError("", domainerrors.FieldError{Field: "subject", Message: "is required to start a thread"})
	}

	switch sender.Role {
	case entity.RoleStudent:
		if _, err := s.vendorRepo.FindVendorByID(ctx, counterpartID); err != nil {
			return mapNotFound(err, repository.ErrVendorNotFound, domainerrors.ErrVendorNotFound, "failed to find vendor")
		}
		message.StudentID, message.VendorID = sender.ID, counterpartID
	case entity.RoleVendor:
		if _, err := s.studentRepo.FindStudentByID(ctx, counterpartID); err != nil {
			return mapNotFound(err, repository.ErrStudentNotFound, domainerrors.ErrStudentNotFound, "failed to find student")
		}
		message.StudentID, message.VendorID = counterpartID, sender.ID
	default:
		return errors.WithStack(domainerrors.ErrForbidden)
	}

	message.ThreadID = uuid.New()
	message.IsThreadStart = true

	return nil
}

func (s *messageService) joinThread(ctx context.Context, sender entity.Principal, threadID uuid.UUID, message *entity.Message) error {
	thread, err := s.loadThread(ctx, sender, threadID)
	if err != nil {
		return err
	}

	first := thread[0]
	message.ThreadID = threadID
	message.StudentID = first.StudentID
	message.VendorID = first.VendorID
	if message.Subject == "" {
		message.Subject = first.Subject
	}

	return nil
}

// loadThread returns the thread oldest first if the participant belongs to it.
func (s *messageService) loadThread(ctx context.Context, participant entity.Principal, threadID uuid.UUID) ([]*entity.Message, error) {
	thread, err := s.messageRepo.FindThreadMessages(ctx, threadID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find thread messages")
	}

	if len(thread) == 0 {
		return nil, errors.WithStack(domainerrors.ErrThreadNotFound)
	}

	if !thread[0].Involves(participant) {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	return thread, nil
}

// ListThreads folds the participant's messages into one summary per thread.
func (s *messageService) ListThreads(ctx context.Context, participant entity.Principal) ([]*entity.MessageThread, error) {
	messages, err := s.messageRepo.FindMessagesByParticipant(ctx, participant)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find messages")
	}

	threads := make([]*entity.MessageThread, 0)
	byID := make(map[uuid.UUID]*entity.MessageThread)

	// messages arrive newest first, so the first one seen is the thread's latest
	for _, m := range messages {
		thread, ok := byID[m.ThreadID]
		if !ok {
			thread = &entity.MessageThread{
				ThreadID:      m.ThreadID,
				Subject:       m.Subject,
				StudentID:     m.StudentID,
				VendorID:      m.VendorID,
				LastMessage:   m,
				LastMessageAt: m.CreatedAt,
			}
			byID[m.ThreadID] = thread
			threads = append(threads, thread)
		}

		if m.IsThreadStart && m.Subject != "" {
			thread.Subject = m.Subject
		}

		if !m.IsRead && m.Recipient() == participant {
			thread.UnreadCount++
		}
	}

	return threads, nil
}

// GetThread returns the conversation and marks what the participant received as read.
func (s *messageService) GetThread(ctx context.Context, participant entity.Principal, threadID uuid.UUID) ([]*entity.Message, error) {
	thread, err := s.loadThread(ctx, participant, threadID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	incoming := entity.StudentToVendor
	if participant.Role == entity.RoleStudent {
		incoming = entity.VendorToStudent
	}

	marked, err := s.messageRepo.MarkThreadRead(ctx, threadID, incoming, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to mark thread read")
	}

	if marked > 0 {
		for _, m := range thread {
			if m.Direction == incoming && !m.IsRead {
				m.IsRead = true
				m.ReadAt = &now
			}
		}
	}

	return thread, nil
}

// MarkMessageRead flags a single message. Only its recipient may do so.
func (s *messageService) MarkMessageRead(ctx context.Context, participant entity.Principal, messageID uuid.UUID) error {
	message, err := s.messageRepo.FindMessageByID(ctx, messageID)
	if err != nil {
		return mapNotFound(err, repository.ErrMessageNotFound, domainerrors.ErrMessageNotFound, "failed to find message")
	}

	if message.Recipient() != participant {
		return errors.WithStack(domainerrors.ErrForbidden)
	}

	if message.IsRead {
		return nil
	}

	if err := s.messageRepo.MarkMessageRead(ctx, messageID, s.now()); err != nil {
		return mapNotFound(err, repository.ErrMessageNotFound, domainerrors.ErrMessageNotFound, "failed to mark message read")
	}

	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return string(r[:n]) + "..."
}
