package repository

import (
	"context"

	"tiffin/internal/domain/entity"
	"tiffin/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to create a device that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// CreateDevice persists a new device for a user.
	CreateDevice(ctx context.Context, device *entity.UserDevice) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)

	// FindDevicesByUser retrieves all devices for a specific user (including inactive).
	FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// FindActiveDevicesByUser retrieves all active devices for a specific user.
	FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// UpdateFCMToken updates the FCM token for a specific device and reactivates it.
	UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error

	// DeleteDevice removes a device by its ID (soft delete).
	DeleteDevice(ctx context.Context, id uuid.UUID) error

	// DeleteDevicesByTokens removes every device holding one of the tokens.
	DeleteDevicesByTokens(ctx context.Context, tokens []string) (int64, error)
}
