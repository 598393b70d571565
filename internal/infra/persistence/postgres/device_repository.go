package postgres

import (
	"context"

	"tiffin/internal/domain/entity"
	"tiffin/internal/domain/repository"
	"tiffin/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

// CreateDevice persists a new device for a student or vendor.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.UserDevice) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		return createError(err, repository.ErrDuplicateDevice, "failed to create device")
	}

	device.ID = deviceM.ID
	device.IsActive = deviceM.IsActive
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindDeviceByID retrieves a device by its unique ID.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error) {
	var deviceM model.UserDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindDevicesByUser retrieves all devices of a user, inactive ones included.
func (repo *deviceRepository) FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	var deviceModels []*model.UserDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	return mapModels(deviceModels, toDeviceDomain), nil
}

// FindActiveDevicesByUser retrieves the devices that should receive pushes.
func (repo *deviceRepository) FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	var deviceModels []*model.UserDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by user")
	}

	return mapModels(deviceModels, toDeviceDomain), nil
}

// UpdateFCMToken replaces the token of a device and reactivates it.
func (repo *deviceRepository) UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("id = ?", deviceID).
		Updates(map[string]any{"fcm_token": fcmToken, "is_active": true})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateDevice
		}

		return errors.Wrap(result.Error, "failed to update FCM token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeleteDevice soft-deletes a device.
func (repo *deviceRepository) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserDeviceModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeleteDevicesByTokens drops devices whose tokens FCM reported as unregistered.
func (repo *deviceRepository) DeleteDevicesByTokens(ctx context.Context, tokens []string) (int64, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Where("fcm_token IN ?", tokens).
		Delete(&model.UserDeviceModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete devices by tokens")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM UserDeviceModel to a domain UserDevice entity.
func toDeviceDomain(data *model.UserDeviceModel) *entity.UserDevice {
	if data == nil {
		return nil
	}

	return &entity.UserDevice{
		ID:        data.ID,
		UserID:    data.UserID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  entity.Platform(data.Platform),
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain UserDevice entity to a GORM UserDeviceModel.
func fromDeviceDomain(data *entity.UserDevice) *model.UserDeviceModel {
	if data == nil {
		return nil
	}

	return &model.UserDeviceModel{
		ID:        data.ID,
		UserID:    data.UserID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  string(data.Platform),
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
