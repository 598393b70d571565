package handler

import (
	"log/slog"
	"net/http"

	"tiffin/internal/delivery/api/response"
	"tiffin/internal/domain/entity"
	"tiffin/internal/errors"
	"tiffin/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDeviceRequest represents the request body for registering a device
type RegisterDeviceRequest struct {
	FCMToken string `json:"fcmToken" validate:"required"`
	DeviceID string `json:"deviceId" validate:"required,max=255"`
	Platform string `json:"platform" validate:"omitempty,oneof=ios android web"`
}

// UpdateFCMTokenRequest represents the request body for updating FCM token
type UpdateFCMTokenRequest struct {
	FCMToken string `json:"fcmToken" validate:"required"`
}

// RegisterDevice handles device registration
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req RegisterDeviceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), principal.ID, &usecase.DeviceInfo{
		FCMToken: req.FCMToken,
		DeviceID: req.DeviceID,
		Platform: entity.Platform(req.Platform),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.logger.Debug("Device registered", slog.String("user_id", principal.ID.String()), slog.String("device_id", req.DeviceID))

	return response.Success(c, http.StatusCreated, device)
}

// GetUserDevices handles retrieving all user devices
func (h *DeviceHandler) GetUserDevices(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	devices, err := h.deviceUC.GetUserDevices(c.Request().Context(), principal.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, devices)
}

// UpdateFCMToken handles updating FCM token for a device
func (h *DeviceHandler) UpdateFCMToken(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	deviceID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateFCMTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.deviceUC.UpdateFCMToken(c.Request().Context(), principal.ID, deviceID, req.FCMToken); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "FCM token updated successfully")
}

// DeactivateDevice handles deactivating a device
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	deviceID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), principal.ID, deviceID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Device deactivated successfully")
}
