package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "tiffin/internal/delivery/context"
	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/domain/repository"
	"tiffin/internal/errors"
	"tiffin/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

// NewDeviceService creates a new device service instance
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		logger:     loggerOrDefault(params.Logger),
	}
}

// RegisterDevice registers a new device or refreshes the token of the one with the same device id
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.UserDevice, error) {
	if deviceInfo == nil || strings.TrimSpace(deviceInfo.FCMToken) == "" || strings.TrimSpace(deviceInfo.DeviceID) == "" {
		return nil, domainerrors.NewValidationError("fcmToken and deviceId are required")
	}

	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	for _, device := range devices {
		if device.DeviceID != deviceInfo.DeviceID {
			continue
		}

		if err := s.deviceRepo.UpdateFCMToken(ctx, device.ID, deviceInfo.FCMToken); err != nil {
			return nil, errors.Wrap(err, "failed to update FCM token")
		}

		updated, err := s.deviceRepo.FindDeviceByID(ctx, device.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find device by ID")
		}

		return updated, nil
	}

	platform := deviceInfo.Platform
	if platform == "" {
		platform = entity.PlatformWeb
	}

	device := &entity.UserDevice{
		UserID:   userID,
		FCMToken: deviceInfo.FCMToken,
		DeviceID: deviceInfo.DeviceID,
		Platform: platform,
		IsActive: true,
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to create device")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Device registered",
		slog.Any("userID", userID),
		slog.String("platform", string(device.Platform)),
	)

	return device, nil
}

// UpdateFCMToken updates the FCM token for a specific device
func (s *deviceService) UpdateFCMToken(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, fcmToken string) error {
	if strings.TrimSpace(fcmToken) == "" {
		return domainerrors.NewValidationError("", domainerrors.FieldError{Field: "fcmToken", Message: "is required"})
	}

	if _, err := s.loadOwned(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.UpdateFCMToken(ctx, deviceID, fcmToken); err != nil {
		return mapNotFound(err, repository.ErrDeviceNotFound, domainerrors.ErrDeviceNotFound, "failed to update FCM token")
	}

	return nil
}

// GetUserDevices retrieves all active devices for a user
func (s *deviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by user")
	}

	return devices, nil
}

// DeactivateDevice removes a device (soft delete)
func (s *deviceService) DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	if _, err := s.loadOwned(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		return mapNotFound(err, repository.ErrDeviceNotFound, domainerrors.ErrDeviceNotFound, "failed to delete device")
	}

	return nil
}

func (s *deviceService) loadOwned(ctx context.Context, userID, deviceID uuid.UUID) (*entity.UserDevice, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrDeviceNotFound, domainerrors.ErrDeviceNotFound, "failed to find device by ID")
	}

	if device.UserID != userID {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	return device, nil
}
