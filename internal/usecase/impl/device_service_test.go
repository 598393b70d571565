package impl

import (
	"context"
	"testing"

	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/domain/repository"
	mockRepo "tiffin/internal/mocks/repository"
	"tiffin/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	return deviceServiceFixtures{
		service:    NewDeviceService(DeviceServiceParams{DeviceRepo: deviceRepo}),
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	studentID := uuid.New()
	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "fcm-token-1",
		DeviceID: "pixel-7",
		Platform: entity.PlatformAndroid,
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, studentID).
		Return([]*entity.UserDevice{}, nil)

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, studentID, deviceInfo)
	require.NoError(t, err)
	assert.Equal(t, studentID, device.UserID)
	assert.Equal(t, "fcm-token-1", device.FCMToken)
	assert.Equal(t, entity.PlatformAndroid, device.Platform)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_DefaultsToWeb(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	vendorID := uuid.New()

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, vendorID).Return(nil, nil)
	fx.deviceRepo.EXPECT().CreateDevice(ctx, mock.Anything).Return(nil)

	device, err := fx.service.RegisterDevice(ctx, vendorID, &usecase.DeviceInfo{FCMToken: "t", DeviceID: "browser"})
	require.NoError(t, err)
	assert.Equal(t, entity.PlatformWeb, device.Platform)
}

func TestDeviceService_RegisterDevice_UpdateExisting(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()
	existing := &entity.UserDevice{
		ID:       deviceID,
		UserID:   userID,
		FCMToken: "old-token",
		DeviceID: "iphone-15",
		Platform: entity.PlatformIOS,
		IsActive: true,
	}
	updated := *existing
	updated.FCMToken = "new-token"

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{existing}, nil)

	fx.deviceRepo.EXPECT().
		UpdateFCMToken(ctx, deviceID, "new-token").
		Return(nil)

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&updated, nil)

	device, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
		FCMToken: "new-token",
		DeviceID: "iphone-15",
		Platform: entity.PlatformIOS,
	})
	require.NoError(t, err)
	assert.Equal(t, "new-token", device.FCMToken)
}

func TestDeviceService_RegisterDevice_MissingToken(t *testing.T) {
	fx := createTestDeviceService(t)

	_, err := fx.service.RegisterDevice(context.Background(), uuid.New(), &usecase.DeviceInfo{DeviceID: "d"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDeviceService_RegisterDevice_FindError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return(nil, errors.New("database error"))

	_, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{FCMToken: "t", DeviceID: "d"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find devices by user")
}

func TestDeviceService_UpdateFCMToken_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)

	fx.deviceRepo.EXPECT().
		UpdateFCMToken(ctx, deviceID, "rotated").
		Return(nil)

	require.NoError(t, fx.service.UpdateFCMToken(ctx, userID, deviceID, "rotated"))
}

func TestDeviceService_UpdateFCMToken_NotFound(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(nil, errors.WithStack(repository.ErrDeviceNotFound))

	err := fx.service.UpdateFCMToken(ctx, uuid.New(), deviceID, "rotated")
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestDeviceService_UpdateFCMToken_Unauthorized(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)

	err := fx.service.UpdateFCMToken(ctx, uuid.New(), deviceID, "rotated")
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	devices := []*entity.UserDevice{{ID: uuid.New(), UserID: userID, IsActive: true}}

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(devices, nil)

	got, err := fx.service.GetUserDevices(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, devices, got)
}

func TestDeviceService_DeactivateDevice_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)

	fx.deviceRepo.EXPECT().DeleteDevice(ctx, deviceID).Return(nil)

	require.NoError(t, fx.service.DeactivateDevice(ctx, userID, deviceID))
}

func TestDeviceService_DeactivateDevice_Unauthorized(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)

	err := fx.service.DeactivateDevice(ctx, uuid.New(), deviceID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
