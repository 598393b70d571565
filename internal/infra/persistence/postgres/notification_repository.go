package postgres

import (
	"context"
	"time"

	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/domain/repository"
	"tiffin/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// notificationRepository hides expired rows from every read.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		return createError(err, domainerrors.ErrConflict, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

func (repo *notificationRepository) inbox(ctx context.Context, userID uuid.UUID, now time.Time) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND expires_at > ?", userID, now)
}

func (repo *notificationRepository) ListNotifications(ctx context.Context, filter repository.NotificationFilter) ([]*entity.Notification, int64, error) {
	query := repo.inbox(ctx, filter.UserID, filter.Now)

	if filter.Category != "" {
		query = query.Where("category = ?", string(filter.Category))
	}

	if filter.IsRead != nil {
		query = query.Where("is_read = ?", *filter.IsRead)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count notifications")
	}

	var notificationModels []*model.NotificationModel
	if err := query.
		Order("created_at DESC").
		Scopes(paginate(filter.Page)).
		Find(&notificationModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list notifications")
	}

	return mapModels(notificationModels, toNotificationDomain), total, nil
}

func (repo *notificationRepository) GetStats(ctx context.Context, userID uuid.UUID, now time.Time) (*entity.NotificationStats, error) {
	var stats entity.NotificationStats

	if err := repo.inbox(ctx, userID, now).
		Select("COUNT(*) AS total, " +
			"COUNT(*) FILTER (WHERE NOT is_read) AS unread, " +
			"COUNT(*) FILTER (WHERE is_read) AS \"read\"").
		Scan(&stats).Error; err != nil {
		return nil, errors.Wrap(err, "failed to get notification stats")
	}

	return &stats, nil
}

// CountByCategory returns one entry per known category, zero-filled.
func (repo *notificationRepository) CountByCategory(ctx context.Context, userID uuid.UUID, now time.Time) ([]entity.CategoryCount, error) {
	var rows []struct {
		Category string
		Count    int64
		Unread   int64
	}

	if err := repo.inbox(ctx, userID, now).
		Select("category, COUNT(*) AS count, COUNT(*) FILTER (WHERE NOT is_read) AS unread").
		Group("category").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count notifications by category")
	}

	byCategory := make(map[entity.NotificationCategory]entity.CategoryCount, len(rows))
	for _, row := range rows {
		category := entity.NotificationCategory(row.Category)
		byCategory[category] = entity.CategoryCount{Category: category, Count: row.Count, Unread: row.Unread}
	}

	counts := make([]entity.CategoryCount, 0, len(entity.NotificationCategories))
	for _, category := range entity.NotificationCategories {
		count, ok := byCategory[category]
		if !ok {
			count = entity.CategoryCount{Category: category}
		}

		counts = append(counts, count)
	}

	return counts, nil
}

func (repo *notificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{"is_read": true, "read_at": at})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification read")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

func (repo *notificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]any{"is_read": true, "read_at": at})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to mark all notifications read")
	}

	return result.RowsAffected, nil
}

func (repo *notificationRepository) DeleteNotification(ctx context.Context, id, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.NotificationModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete notification")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

func (repo *notificationRepository) DeleteReadNotifications(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_read = ?", userID, true).
		Delete(&model.NotificationModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete read notifications")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	metadata := make(map[string]string, len(data.Metadata))
	for k, v := range data.Metadata {
		if s, ok := v.(string); ok {
			metadata[k] = s
		}
	}

	return &entity.Notification{
		ID:          data.ID,
		UserID:      data.UserID,
		Type:        entity.NotificationType(data.Type),
		Category:    entity.NotificationCategory(data.Category),
		Title:       data.Title,
		Message:     data.Message,
		ActionURL:   data.ActionURL,
		ActionLabel: data.ActionLabel,
		Metadata:    metadata,
		Priority:    data.Priority,
		IsImportant: data.IsImportant,
		IsRead:      data.IsRead,
		ReadAt:      data.ReadAt,
		ExpiresAt:   data.ExpiresAt,
		CreatedAt:   data.CreatedAt,
	}
}

func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	metadata := make(datatypes.JSONMap, len(data.Metadata))
	for k, v := range data.Metadata {
		metadata[k] = v
	}

	return &model.NotificationModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Type:        string(data.Type),
		Category:    string(data.Category),
		Title:       data.Title,
		Message:     data.Message,
		ActionURL:   data.ActionURL,
		ActionLabel: data.ActionLabel,
		Metadata:    metadata,
		Priority:    data.Priority,
		IsImportant: data.IsImportant,
		IsRead:      data.IsRead,
		ReadAt:      data.ReadAt,
		ExpiresAt:   data.ExpiresAt,
		CreatedAt:   data.CreatedAt,
	}
}
