package postgres

import (
	"context"
	"time"

	"tiffin/internal/domain/entity"
	"tiffin/internal/domain/repository"
	"tiffin/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type holidayRepository struct {
	db *gorm.DB
}

// NewHolidayRepository is the constructor for holidayRepository.
func NewHolidayRepository(db *gorm.DB) repository.HolidayRepository {
	return &holidayRepository{db: db}
}

func (repo *holidayRepository) CreateHoliday(ctx context.Context, holiday *entity.Holiday) error {
	holidayM := fromHolidayDomain(holiday)

	if err := repo.db.WithContext(ctx).Create(holidayM).Error; err != nil {
		return createError(err, repository.ErrDuplicateHoliday, "failed to create holiday")
	}

	holiday.ID = holidayM.ID
	holiday.CreatedAt = holidayM.CreatedAt
	holiday.UpdatedAt = holidayM.UpdatedAt

	return nil
}

func (repo *holidayRepository) FindHolidayByID(ctx context.Context, id uuid.UUID) (*entity.Holiday, error) {
	var holidayM model.HolidayModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&holidayM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHolidayNotFound
		}

		return nil, errors.Wrap(err, "failed to find holiday by id")
	}

	return toHolidayDomain(&holidayM), nil
}

func (repo *holidayRepository) FindHolidaysByStudent(ctx context.Context, studentID uuid.UUID, from, to time.Time) ([]*entity.Holiday, error) {
	query := repo.db.WithContext(ctx).Where("student_id = ?", studentID)
	if !from.IsZero() {
		query = query.Where("date >= ?", entity.DateOnly(from))
	}

	if !to.IsZero() {
		query = query.Where("date < ?", entity.DateOnly(to))
	}

	var holidayModels []*model.HolidayModel
	if err := query.Order("date ASC").Find(&holidayModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find holidays by student")
	}

	return mapModels(holidayModels, toHolidayDomain), nil
}

func (repo *holidayRepository) FindHolidaysOnDate(ctx context.Context, studentID uuid.UUID, date time.Time) ([]*entity.Holiday, error) {
	var holidayModels []*model.HolidayModel

	if err := repo.db.WithContext(ctx).
		Where("student_id = ? AND date = ?", studentID, entity.DateOnly(date)).
		Find(&holidayModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find holidays on date")
	}

	return mapModels(holidayModels, toHolidayDomain), nil
}

func (repo *holidayRepository) UpdateHoliday(ctx context.Context, holiday *entity.Holiday) error {
	result := repo.db.WithContext(ctx).
		Model(&model.HolidayModel{}).
		Where("id = ?", holiday.ID).
		Updates(map[string]any{
			"date":         entity.DateOnly(holiday.Date),
			"service_type": string(holiday.ServiceType),
			"reason":       holiday.Reason,
			"status":       string(holiday.Status),
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateHoliday
		}

		return errors.Wrap(result.Error, "failed to update holiday")
	}

	if result.RowsAffected == 0 {
		return repository.ErrHolidayNotFound
	}

	return nil
}

func (repo *holidayRepository) DeleteHoliday(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.HolidayModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete holiday")
	}

	if result.RowsAffected == 0 {
		return repository.ErrHolidayNotFound
	}

	return nil
}

type vendorHolidayRepository struct {
	db *gorm.DB
}

// NewVendorHolidayRepository is the constructor for vendorHolidayRepository.
func NewVendorHolidayRepository(db *gorm.DB) repository.VendorHolidayRepository {
	return &vendorHolidayRepository{db: db}
}

func (repo *vendorHolidayRepository) CreateVendorHoliday(ctx context.Context, holiday *entity.VendorHoliday) error {
	holidayM := fromVendorHolidayDomain(holiday)

	if err := repo.db.WithContext(ctx).Create(holidayM).Error; err != nil {
		return createError(err, repository.ErrDuplicateVendorHoliday, "failed to create vendor holiday")
	}

	holiday.ID = holidayM.ID
	holiday.CreatedAt = holidayM.CreatedAt
	holiday.UpdatedAt = holidayM.UpdatedAt

	return nil
}

func (repo *vendorHolidayRepository) FindVendorHolidayByID(ctx context.Context, id uuid.UUID) (*entity.VendorHoliday, error) {
	var holidayM model.VendorHolidayModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&holidayM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorHolidayNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor holiday by id")
	}

	return toVendorHolidayDomain(&holidayM), nil
}

func (repo *vendorHolidayRepository) FindVendorHolidays(ctx context.Context, vendorID uuid.UUID) ([]*entity.VendorHoliday, error) {
	var holidayModels []*model.VendorHolidayModel

	if err := repo.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("date ASC").
		Find(&holidayModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find vendor holidays")
	}

	return mapModels(holidayModels, toVendorHolidayDomain), nil
}

func (repo *vendorHolidayRepository) FindVendorHolidaysUntil(ctx context.Context, vendorID uuid.UUID, date time.Time) ([]*entity.VendorHoliday, error) {
	var holidayModels []*model.VendorHolidayModel

	if err := repo.db.WithContext(ctx).
		Where("vendor_id = ? AND date <= ?", vendorID, entity.DateOnly(date)).
		Order("date ASC").
		Find(&holidayModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find vendor holidays until date")
	}

	return mapModels(holidayModels, toVendorHolidayDomain), nil
}

func (repo *vendorHolidayRepository) UpdateVendorHoliday(ctx context.Context, holiday *entity.VendorHoliday) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VendorHolidayModel{}).
		Where("id = ?", holiday.ID).
		Updates(map[string]any{
			"date":        entity.DateOnly(holiday.Date),
			"type":        string(holiday.Type),
			"description": holiday.Description,
			"recurring":   datatypes.NewJSONType(holiday.Recurring),
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateVendorHoliday
		}

		return errors.Wrap(result.Error, "failed to update vendor holiday")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVendorHolidayNotFound
	}

	return nil
}

func (repo *vendorHolidayRepository) DeleteVendorHoliday(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.VendorHolidayModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete vendor holiday")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVendorHolidayNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toHolidayDomain(data *model.HolidayModel) *entity.Holiday {
	if data == nil {
		return nil
	}

	return &entity.Holiday{
		ID:          data.ID,
		StudentID:   data.StudentID,
		VendorID:    data.VendorID,
		Date:        entity.DateOnly(data.Date),
		ServiceType: entity.ServiceType(data.ServiceType),
		Reason:      data.Reason,
		Status:      entity.HolidayStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromHolidayDomain(data *entity.Holiday) *model.HolidayModel {
	if data == nil {
		return nil
	}

	vendorID := data.VendorID
	if data.IsAllServices() {
		vendorID = nil
	}

	return &model.HolidayModel{
		ID:          data.ID,
		StudentID:   data.StudentID,
		VendorID:    vendorID,
		Date:        entity.DateOnly(data.Date),
		ServiceType: string(data.ServiceType),
		Reason:      data.Reason,
		Status:      string(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toVendorHolidayDomain(data *model.VendorHolidayModel) *entity.VendorHoliday {
	if data == nil {
		return nil
	}

	return &entity.VendorHoliday{
		ID:          data.ID,
		VendorID:    data.VendorID,
		Date:        entity.DateOnly(data.Date),
		Type:        entity.VendorHolidayType(data.Type),
		Description: data.Description,
		Recurring:   data.Recurring.Data(),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromVendorHolidayDomain(data *entity.VendorHoliday) *model.VendorHolidayModel {
	if data == nil {
		return nil
	}

	return &model.VendorHolidayModel{
		ID:          data.ID,
		VendorID:    data.VendorID,
		Date:        entity.DateOnly(data.Date),
		Type:        string(data.Type),
		Description: data.Description,
		Recurring:   datatypes.NewJSONType(data.Recurring),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
