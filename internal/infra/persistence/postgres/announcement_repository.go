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

type announcementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository is the constructor for announcementRepository.
func NewAnnouncementRepository(db *gorm.DB) repository.AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (repo *announcementRepository) CreateAnnouncement(ctx context.Context, announcement *entity.Announcement) error {
	announcementM := fromAnnouncementDomain(announcement)

	if err := repo.db.WithContext(ctx).Create(announcementM).Error; err != nil {
		return createError(err, domainerrors.ErrConflict, "failed to create announcement")
	}

	announcement.ID = announcementM.ID
	announcement.CreatedAt = announcementM.CreatedAt
	announcement.UpdatedAt = announcementM.UpdatedAt

	return nil
}

func (repo *announcementRepository) FindAnnouncementByID(ctx context.Context, id uuid.UUID) (*entity.Announcement, error) {
	var announcementM model.AnnouncementModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&announcementM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAnnouncementNotFound
		}

		return nil, errors.Wrap(err, "failed to find announcement by id")
	}

	return toAnnouncementDomain(&announcementM), nil
}

func (repo *announcementRepository) ListAnnouncements(ctx context.Context, vendorID uuid.UUID, status entity.AnnouncementStatus, page entity.PageQuery) ([]*entity.Announcement, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.AnnouncementModel{}).Where("vendor_id = ?", vendorID)
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count announcements")
	}

	var announcementModels []*model.AnnouncementModel
	if err := query.
		Order("created_at DESC").
		Scopes(paginate(page)).
		Find(&announcementModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list announcements")
	}

	return mapModels(announcementModels, toAnnouncementDomain), total, nil
}

func (repo *announcementRepository) UpdateAnnouncement(ctx context.Context, announcement *entity.Announcement) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AnnouncementModel{}).
		Where("id = ?", announcement.ID).
		Updates(map[string]any{
			"title":           announcement.Title,
			"content":         announcement.Content,
			"target_audience": datatypes.NewJSONType(announcement.TargetAudience),
			"status":          string(announcement.Status),
			"schedule_date":   announcement.ScheduleDate,
			"sent_at":         announcement.SentAt,
			"read_count":      announcement.ReadCount,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update announcement")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAnnouncementNotFound
	}

	return nil
}

func (repo *announcementRepository) DeleteAnnouncement(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AnnouncementModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete announcement")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAnnouncementNotFound
	}

	return nil
}

func (repo *announcementRepository) GetStats(ctx context.Context, vendorID uuid.UUID, monthStart, monthEnd time.Time) (*repository.AnnouncementStats, error) {
	var stats repository.AnnouncementStats

	if err := repo.db.WithContext(ctx).
		Model(&model.AnnouncementModel{}).
		Select(
			"COUNT(*) AS total, "+
				"COUNT(*) FILTER (WHERE status = ? AND sent_at >= ? AND sent_at < ?) AS sent_this_month, "+
				"COUNT(*) FILTER (WHERE status = ?) AS scheduled",
			string(entity.AnnouncementSent), monthStart, monthEnd, string(entity.AnnouncementScheduled),
		).
		Where("vendor_id = ?", vendorID).
		Scan(&stats).Error; err != nil {
		return nil, errors.Wrap(err, "failed to get announcement stats")
	}

	return &stats, nil
}

func (repo *announcementRepository) FindDueAnnouncements(ctx context.Context, now time.Time, limit int) ([]*entity.Announcement, error) {
	query := repo.db.WithContext(ctx).
		Where("status = ? AND schedule_date <= ?", string(entity.AnnouncementScheduled), now).
		Order("schedule_date")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var announcementModels []*model.AnnouncementModel
	if err := query.Find(&announcementModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find due announcements")
	}

	return mapModels(announcementModels, toAnnouncementDomain), nil
}

// --- Mapper Functions ---

func toAnnouncementDomain(data *model.AnnouncementModel) *entity.Announcement {
	if data == nil {
		return nil
	}

	return &entity.Announcement{
		ID:             data.ID,
		VendorID:       data.VendorID,
		Title:          data.Title,
		Content:        data.Content,
		TargetAudience: data.TargetAudience.Data(),
		Status:         entity.AnnouncementStatus(data.Status),
		ScheduleDate:   data.ScheduleDate,
		SentAt:         data.SentAt,
		ReadCount:      data.ReadCount,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromAnnouncementDomain(data *entity.Announcement) *model.AnnouncementModel {
	if data == nil {
		return nil
	}

	return &model.AnnouncementModel{
		ID:             data.ID,
		VendorID:       data.VendorID,
		Title:          data.Title,
		Content:        data.Content,
		TargetAudience: datatypes.NewJSONType(data.TargetAudience),
		Status:         string(data.Status),
		ScheduleDate:   data.ScheduleDate,
		SentAt:         data.SentAt,
		ReadCount:      data.ReadCount,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
