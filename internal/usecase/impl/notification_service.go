package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"tiffin/config"
	"tiffin/internal/domain/constants"
	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/domain/repository"
	"tiffin/internal/errors"
	"tiffin/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	config           *config.Config
	logger           *slog.Logger
	now              func() time.Time
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	Config           *config.Config
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		config:           params.Config,
		logger:           loggerOrDefault(params.Logger),
		now:              systemClock,
	}
}

// ListNotifications pages the caller's unexpired notifications with inbox totals.
func (s *notificationService) ListNotifications(ctx context.Context, userID uuid.UUID, query usecase.NotificationQuery) (*usecase.NotificationList, error) {
	page := normalizePage(query.Page, s.config, constants.DefaultNotifLimit)
	now := s.now()

	if query.Category != "" && !slices.Contains(entity.NotificationCategories, query.Category) {
		return nil, domainerrors.NewValidationError("", domainerrors.FieldError{Field: "category", Message: "is not a known category"})
	}

	notifications, total, err := s.notificationRepo.ListNotifications(ctx, repository.NotificationFilter{
		UserID:   userID,
		Category: query.Category,
		IsRead:   query.IsRead,
		Now:      now,
		Page:     page,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	stats, err := s.notificationRepo.GetStats(ctx, userID, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get notification stats")
	}

	return &usecase.NotificationList{
		Notifications: notifications,
		Stats:         *stats,
		Pagination:    entity.NewPagination(page, total),
	}, nil
}

// GetCategories returns a count for every category, including empty ones.
func (s *notificationService) GetCategories(ctx context.Context, userID uuid.UUID) ([]entity.CategoryCount, error) {
	counts, err := s.notificationRepo.CountByCategory(ctx, userID, s.now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to count notifications by category")
	}

	byCategory := make(map[entity.NotificationCategory]entity.CategoryCount, len(counts))
	for _, c := range counts {
		byCategory[c.Category] = c
	}

	out := make([]entity.CategoryCount, 0, len(entity.NotificationCategories))
	for _, category := range entity.NotificationCategories {
		c, ok := byCategory[category]
		if !ok {
			c = entity.CategoryCount{Category: category}
		}
		out = append(out, c)
	}

	return out, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	if err := s.notificationRepo.MarkRead(ctx, notificationID, userID, s.now()); err != nil {
		return mapNotFound(err, repository.ErrNotificationNotFound, domainerrors.ErrNotificationNotFound, "failed to mark notification read")
	}

	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) (*usecase.MarkAllReadOutput, error) {
	modified, err := s.notificationRepo.MarkAllRead(ctx, userID, s.now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to mark all notifications read")
	}

	return &usecase.MarkAllReadOutput{ModifiedCount: modified, UnreadCount: 0}, nil
}

func (s *notificationService) DeleteNotification(ctx context.Context, userID, notificationID uuid.UUID) error {
	if err := s.notificationRepo.DeleteNotification(ctx, notificationID, userID); err != nil {
		return mapNotFound(err, repository.ErrNotificationNotFound, domainerrors.ErrNotificationNotFound, "failed to delete notification")
	}

	return nil
}

func (s *notificationService) ClearRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	deleted, err := s.notificationRepo.DeleteReadNotifications(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to clear read notifications")
	}

	s.logger.DebugContext(ctx, "Read notifications cleared", slog.Any("userID", userID), slog.Int64("deleted", deleted))

	return deleted, nil
}
