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

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (repo *messageRepository) CreateMessage(ctx context.Context, message *entity.Message) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		return createError(err, domainerrors.ErrConflict, "failed to create message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	return nil
}

func (repo *messageRepository) FindMessageByID(ctx context.Context, id uuid.UUID) (*entity.Message, error) {
	var messageM model.MessageModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&messageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMessageNotFound
		}

		return nil, errors.Wrap(err, "failed to find message by id")
	}

	return toMessageDomain(&messageM), nil
}

func (repo *messageRepository) FindThreadMessages(ctx context.Context, threadID uuid.UUID) ([]*entity.Message, error) {
	var messageModels []*model.MessageModel

	if err := repo.db.WithContext(ctx).
		Where("thread_id = ?", threadID).
		Order("created_at ASC").
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find thread messages")
	}

	return mapModels(messageModels, toMessageDomain), nil
}

func (repo *messageRepository) FindMessagesByParticipant(ctx context.Context, participant entity.Principal) ([]*entity.Message, error) {
	column := "student_id"
	if participant.Role == entity.RoleVendor {
		column = "vendor_id"
	}

	var messageModels []*model.MessageModel
	if err := repo.db.WithContext(ctx).
		Where(column+" = ?", participant.ID).
		Order("created_at DESC").
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find messages by participant")
	}

	return mapModels(messageModels, toMessageDomain), nil
}

func (repo *messageRepository) MarkMessageRead(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_read": true, "read_at": at})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark message read")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMessageNotFound
	}

	return nil
}

func (repo *messageRepository) MarkThreadRead(ctx context.Context, threadID uuid.UUID, direction entity.MessageDirection, at time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("thread_id = ? AND direction = ? AND is_read = ?", threadID, string(direction), false).
		Updates(map[string]any{"is_read": true, "read_at": at})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to mark thread read")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toMessageDomain(data *model.MessageModel) *entity.Message {
	if data == nil {
		return nil
	}

	return &entity.Message{
		ID:                    data.ID,
		ThreadID:              data.ThreadID,
		IsThreadStart:         data.IsThreadStart,
		StudentID:             data.StudentID,
		VendorID:              data.VendorID,
		Direction:             entity.MessageDirection(data.Direction),
		Subject:               data.Subject,
		Body:                  data.Body,
		Attachments:           []entity.Attachment(data.Attachments),
		Priority:              entity.MessagePriority(data.Priority),
		IsRead:                data.IsRead,
		ReadAt:                data.ReadAt,
		RelatedSubscriptionID: data.RelatedSubscriptionID,
		RelatedOrderID:        data.RelatedOrderID,
		CreatedAt:             data.CreatedAt,
	}
}

func fromMessageDomain(data *entity.Message) *model.MessageModel {
	if data == nil {
		return nil
	}

	return &model.MessageModel{
		ID:                    data.ID,
		ThreadID:              data.ThreadID,
		IsThreadStart:         data.IsThreadStart,
		StudentID:             data.StudentID,
		VendorID:              data.VendorID,
		Direction:             string(data.Direction),
		Subject:               data.Subject,
		Body:                  data.Body,
		Attachments:           datatypes.NewJSONSlice(data.Attachments),
		Priority:              string(data.Priority),
		IsRead:                data.IsRead,
		ReadAt:                data.ReadAt,
		RelatedSubscriptionID: data.RelatedSubscriptionID,
		RelatedOrderID:        data.RelatedOrderID,
		CreatedAt:             data.CreatedAt,
	}
}
