package usecase

import (
	"context"

	"tiffin/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string          `json:"fcmToken"`
	DeviceID string          `json:"deviceId"`
	Platform entity.Platform `json:"platform"`
}

// DeviceUsecase defines the interface for device management use cases
type DeviceUsecase interface {
	// RegisterDevice registers a new device or refreshes the token of an existing one
	RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *DeviceInfo) (*entity.UserDevice, error)

	// UpdateFCMToken updates the FCM token for a specific device
	UpdateFCMToken(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, fcmToken string) error

	// GetUserDevices retrieves all active devices for a user
	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// DeactivateDevice removes a device
	DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
