package handler

import (
	"net/http"

	"tiffin/internal/delivery/api/response"
	"tiffin/internal/errors"
	"tiffin/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type StudentHandlerParams struct {
	fx.In

	StudentUC usecase.StudentUsecase
}

// StudentHandler serves the student's profile, dashboard and settings.
type StudentHandler struct {
	studentUC usecase.StudentUsecase
}

func NewStudentHandler(params StudentHandlerParams) *StudentHandler {
	return &StudentHandler{studentUC: params.StudentUC}
}

type NotificationSettingsRequest struct {
	Email        *bool `json:"email"`
	Push         *bool `json:"push"`
	SMS          *bool `json:"sms"`
	OrderUpdates *bool `json:"orderUpdates"`
	Promotions   *bool `json:"promotions"`
}

type PrivacySettingsRequest struct {
	ShareProfile *bool `json:"shareProfile"`
	ShowActivity *bool `json:"showActivity"`
}

type UpdateSettingsRequest struct {
	Notifications *NotificationSettingsRequest `json:"notifications"`
	Privacy       *PrivacySettingsRequest      `json:"privacy"`
}

func (h *StudentHandler) GetProfile(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	student, err := h.studentUC.GetProfile(c.Request().Context(), principal.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, student)
}

func (h *StudentHandler) GetDashboard(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	dashboard, err := h.studentUC.GetDashboard(c.Request().Context(), principal.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dashboard)
}

// UpdateSettings applies the toggles present in the body and keeps the rest.
func (h *StudentHandler) UpdateSettings(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req UpdateSettingsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := usecase.UpdateSettingsInput{}
	if n := req.Notifications; n != nil {
		input.Notifications = &usecase.NotificationSettingsPatch{
			Email:        n.Email,
			Push:         n.Push,
			SMS:          n.SMS,
			OrderUpdates: n.OrderUpdates,
			Promotions:   n.Promotions,
		}
	}
	if p := req.Privacy; p != nil {
		input.Privacy = &usecase.PrivacySettingsPatch{
			ShareProfile: p.ShareProfile,
			ShowActivity: p.ShowActivity,
		}
	}

	settings, err := h.studentUC.UpdateSettings(c.Request().Context(), principal.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, settings, "Settings updated successfully")
}
