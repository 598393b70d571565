package postgres

import (
	"context"

	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/domain/repository"
	"tiffin/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type subscriptionRequestRepository struct {
	db *gorm.DB
}

// NewSubscriptionRequestRepository is the constructor for subscriptionRequestRepository.
func NewSubscriptionRequestRepository(db *gorm.DB) repository.SubscriptionRequestRepository {
	return &subscriptionRequestRepository{db: db}
}

func (repo *subscriptionRequestRepository) CreateRequest(ctx context.Context, request *entity.SubscriptionRequest) error {
	requestM := fromRequestDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		return createError(err, domainerrors.ErrConflict, "failed to create subscription request")
	}

	request.ID = requestM.ID
	request.CreatedAt = requestM.CreatedAt
	request.UpdatedAt = requestM.UpdatedAt

	return nil
}

func (repo *subscriptionRequestRepository) FindRequestByID(ctx context.Context, id uuid.UUID) (*entity.SubscriptionRequest, error) {
	var requestM model.SubscriptionRequestModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription request by id")
	}

	return toRequestDomain(&requestM), nil
}

func (repo *subscriptionRequestRepository) FindRequestsByVendor(ctx context.Context, vendorID uuid.UUID, status *entity.RequestStatus) ([]*entity.SubscriptionRequest, error) {
	query := repo.db.WithContext(ctx).Where("vendor_id = ?", vendorID)
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	var requestModels []*model.SubscriptionRequestModel
	if err := query.Order("created_at DESC").Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find subscription requests by vendor")
	}

	return mapModels(requestModels, toRequestDomain), nil
}

func (repo *subscriptionRequestRepository) FindRequestsByStudent(ctx context.Context, studentID uuid.UUID) ([]*entity.SubscriptionRequest, error) {
	var requestModels []*model.SubscriptionRequestModel

	if err := repo.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find subscription requests by student")
	}

	return mapModels(requestModels, toRequestDomain), nil
}

func (repo *subscriptionRequestRepository) HasPendingRequest(ctx context.Context, studentID, vendorID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.SubscriptionRequestModel{}).
		Where("student_id = ? AND vendor_id = ? AND status = ?", studentID, vendorID, string(entity.RequestPending)).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check pending requests")
	}

	return count > 0, nil
}

func (repo *subscriptionRequestRepository) SaveDecision(ctx context.Context, request *entity.SubscriptionRequest) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SubscriptionRequestModel{}).
		Where("id = ? AND status = ?", request.ID, string(entity.RequestPending)).
		Updates(map[string]any{
			"status":           string(request.Status),
			"rejection_reason": request.RejectionReason,
			"subscription_id":  request.SubscriptionID,
			"decided_at":       request.DecidedAt,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to save subscription request decision")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRequestNotPending
	}

	return nil
}

func (repo *subscriptionRequestRepository) CountPendingByVendor(ctx context.Context, vendorID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.SubscriptionRequestModel{}).
		Where("vendor_id = ? AND status = ?", vendorID, string(entity.RequestPending)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count pending requests")
	}

	return count, nil
}

// --- Mapper Functions ---

func toRequestDomain(data *model.SubscriptionRequestModel) *entity.SubscriptionRequest {
	if data == nil {
		return nil
	}

	return &entity.SubscriptionRequest{
		ID:              data.ID,
		StudentID:       data.StudentID,
		VendorID:        data.VendorID,
		DurationDays:    data.DurationDays,
		StartDate:       data.StartDate,
		Message:         data.Message,
		Source:          entity.RequestSource(data.Source),
		Status:          entity.RequestStatus(data.Status),
		RejectionReason: data.RejectionReason,
		SubscriptionID:  data.SubscriptionID,
		DecidedAt:       data.DecidedAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromRequestDomain(data *entity.SubscriptionRequest) *model.SubscriptionRequestModel {
	if data == nil {
		return nil
	}

	return &model.SubscriptionRequestModel{
		ID:              data.ID,
		StudentID:       data.StudentID,
		VendorID:        data.VendorID,
		DurationDays:    data.DurationDays,
		StartDate:       data.StartDate,
		Message:         data.Message,
		Source:          string(data.Source),
		Status:          string(data.Status),
		RejectionReason: data.RejectionReason,
		SubscriptionID:  data.SubscriptionID,
		DecidedAt:       data.DecidedAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
