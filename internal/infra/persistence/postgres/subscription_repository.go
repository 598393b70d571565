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
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

var runningSubscriptionStatuses = []string{
	string(entity.SubscriptionActive),
	string(entity.SubscriptionPaused),
}

type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (repo *subscriptionRepository) CreateSubscription(ctx context.Context, subscription *entity.Subscription) error {
	subscriptionM := fromSubscriptionDomain(subscription)
	subscriptionM.Version = 1

	if err := repo.db.WithContext(ctx).Create(subscriptionM).Error; err != nil {
		return createError(err, domainerrors.ErrConflict, "failed to create subscription")
	}

	subscription.ID = subscriptionM.ID
	subscription.Version = subscriptionM.Version
	subscription.CreatedAt = subscriptionM.CreatedAt
	subscription.UpdatedAt = subscriptionM.UpdatedAt

	return nil
}

// FindSubscriptionByID reads from the primary so a following versioned write sees the latest row.
func (repo *subscriptionRepository) FindSubscriptionByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	var subscriptionM model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&subscriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription by id")
	}

	return toSubscriptionDomain(&subscriptionM), nil
}

func (repo *subscriptionRepository) FindSubscriptionsByStudent(ctx context.Context, studentID uuid.UUID) ([]*entity.Subscription, error) {
	var subscriptionModels []*model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find subscriptions by student")
	}

	return mapModels(subscriptionModels, toSubscriptionDomain), nil
}

func (repo *subscriptionRepository) UpdateSubscriptionState(ctx context.Context, subscription *entity.Subscription) error {
	updates := map[string]any{
		"status":       string(subscription.Status),
		"cancelled_at": subscription.CancelledAt,
		"paused_at":    nil,
		"pause_date":   nil,
		"resume_date":  nil,
		"pause_reason": "",
		"pause_notes":  "",
		"version":      gorm.Expr("version + 1"),
	}

	if p := subscription.PauseDetails; p != nil {
		updates["paused_at"] = p.PausedAt
		updates["pause_date"] = p.PauseDate
		updates["resume_date"] = p.ResumeDate
		updates["pause_reason"] = p.Reason
		updates["pause_notes"] = p.Notes
	}

	result := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("id = ? AND version = ?", subscription.ID, subscription.Version).
		Updates(updates)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update subscription state")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).
			Clauses(dbresolver.Write).
			Model(&model.SubscriptionModel{}).
			Where("id = ?", subscription.ID).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check subscription existence")
		}

		if count == 0 {
			return repository.ErrSubscriptionNotFound
		}

		return repository.ErrSubscriptionVersionConflict
	}

	subscription.Version++

	return nil
}

func (repo *subscriptionRepository) CountActiveByVendor(ctx context.Context, vendorID uuid.UUID, now time.Time) (int64, error) {
	return repo.countRunning(ctx, "vendor_id = ?", vendorID, now)
}

func (repo *subscriptionRepository) CountActiveByStudent(ctx context.Context, studentID uuid.UUID, now time.Time) (int64, error) {
	return repo.countRunning(ctx, "student_id = ?", studentID, now)
}

func (repo *subscriptionRepository) countRunning(ctx context.Context, cond string, id uuid.UUID, now time.Time) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where(cond, id).
		Where("status IN ? AND end_date > ?", runningSubscriptionStatuses, now).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count active subscriptions")
	}

	return count, nil
}

func (repo *subscriptionRepository) FindLapsedSubscriptions(ctx context.Context, now time.Time, limit int) ([]*entity.Subscription, error) {
	var subscriptionModels []*model.SubscriptionModel

	query := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("status IN ? AND end_date <= ?", runningSubscriptionStatuses, now).
		Order("end_date")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find lapsed subscriptions")
	}

	return mapModels(subscriptionModels, toSubscriptionDomain), nil
}

// --- Mapper Functions ---

func toSubscriptionDomain(data *model.SubscriptionModel) *entity.Subscription {
	if data == nil {
		return nil
	}

	subscription := &entity.Subscription{
		ID:           data.ID,
		StudentID:    data.StudentID,
		VendorID:     data.VendorID,
		DurationDays: data.DurationDays,
		StartDate:    data.StartDate,
		EndDate:      data.EndDate,
		Status:       entity.SubscriptionStatus(data.Status),
		TotalAmount:  data.TotalAmount,
		MealsPerDay:  data.MealsPerDay,
		CancelledAt:  data.CancelledAt,
		Version:      data.Version,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	if data.PausedAt != nil {
		subscription.PauseDetails = &entity.PauseDetails{
			PausedAt:   *data.PausedAt,
			ResumeDate: data.ResumeDate,
			Reason:     data.PauseReason,
			Notes:      data.PauseNotes,
		}
		if data.PauseDate != nil {
			subscription.PauseDetails.PauseDate = *data.PauseDate
		}
	}

	return subscription
}

func fromSubscriptionDomain(data *entity.Subscription) *model.SubscriptionModel {
	if data == nil {
		return nil
	}

	subscriptionM := &model.SubscriptionModel{
		ID:           data.ID,
		StudentID:    data.StudentID,
		VendorID:     data.VendorID,
		DurationDays: data.DurationDays,
		StartDate:    data.StartDate,
		EndDate:      data.EndDate,
		Status:       string(data.Status),
		TotalAmount:  data.TotalAmount,
		MealsPerDay:  data.MealsPerDay,
		CancelledAt:  data.CancelledAt,
		Version:      data.Version,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	if p := data.PauseDetails; p != nil {
		pausedAt, pauseDate := p.PausedAt, p.PauseDate
		subscriptionM.PausedAt = &pausedAt
		subscriptionM.PauseDate = &pauseDate
		subscriptionM.ResumeDate = p.ResumeDate
		subscriptionM.PauseReason = p.Reason
		subscriptionM.PauseNotes = p.Notes
	}

	return subscriptionM
}
