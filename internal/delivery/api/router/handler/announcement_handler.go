package handler

import (
	"net/http"

	"tiffin/internal/delivery/api/response"
	"tiffin/internal/domain/entity"
	"tiffin/internal/errors"
	"tiffin/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type AnnouncementHandlerParams struct {
	fx.In

	AnnouncementUC usecase.AnnouncementUsecase
}

// AnnouncementHandler serves vendor broadcasts to customers.
type AnnouncementHandler struct {
	announcementUC usecase.AnnouncementUsecase
}

func NewAnnouncementHandler(params AnnouncementHandlerParams) *AnnouncementHandler {
	return &AnnouncementHandler{announcementUC: params.AnnouncementUC}
}

type TargetAudienceRequest struct {
	Type      string   `json:"type" validate:"required,oneof=all paid unpaid location"`
	Locations []string `json:"locations"`
}

type CreateAnnouncementRequest struct {
	Title          string                 `json:"title" validate:"required,max=200"`
	Content        string                 `json:"content" validate:"required,max=2000"`
	TargetAudience *TargetAudienceRequest `json:"targetAudience"`
	ScheduleDate   string                 `json:"scheduleDate"`
}

type UpdateAnnouncementRequest struct {
	Title          *string                `json:"title" validate:"omitempty,min=1,max=200"`
	Content        *string                `json:"content" validate:"omitempty,min=1,max=2000"`
	TargetAudience *TargetAudienceRequest `json:"targetAudience"`
	ScheduleDate   string                 `json:"scheduleDate"`
	Status         string                 `json:"status" validate:"omitempty,oneof=draft scheduled sent"`
}

type ListAnnouncementsQuery struct {
	Status string `query:"status" validate:"omitempty,oneof=draft scheduled sent"`
	Page   int    `query:"page" validate:"gte=0"`
	Limit  int    `query:"limit" validate:"gte=0"`
}

func (r *TargetAudienceRequest) toEntity() *entity.TargetAudience {
	if r == nil {
		return nil
	}

	return &entity.TargetAudience{Type: entity.AudienceType(r.Type), Locations: r.Locations}
}

// CreateAnnouncement stores an announcement and sends it now unless it is scheduled.
func (h *AnnouncementHandler) CreateAnnouncement(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req CreateAnnouncementRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	scheduleDate, err := optionalTimestamp("scheduleDate", req.ScheduleDate)
	if err != nil {
		return err
	}

	announcement, err := h.announcementUC.CreateAnnouncement(c.Request().Context(), principal.ID, usecase.CreateAnnouncementInput{
		Title:          req.Title,
		Content:        req.Content,
		TargetAudience: req.TargetAudience.toEntity(),
		ScheduleDate:   scheduleDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, announcement, "Announcement created successfully")
}

func (h *AnnouncementHandler) ListAnnouncements(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var query ListAnnouncementsQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	list, err := h.announcementUC.ListAnnouncements(
		c.Request().Context(),
		principal.ID,
		entity.AnnouncementStatus(query.Status),
		entity.PageQuery{Page: query.Page, Limit: query.Limit},
	)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, list)
}

func (h *AnnouncementHandler) GetStats(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	stats, err := h.announcementUC.GetStats(c.Request().Context(), principal.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats)
}

func (h *AnnouncementHandler) UpdateAnnouncement(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateAnnouncementRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	scheduleDate, err := optionalTimestamp("scheduleDate", req.ScheduleDate)
	if err != nil {
		return err
	}

	input := usecase.UpdateAnnouncementInput{
		Title:          req.Title,
		Content:        req.Content,
		TargetAudience: req.TargetAudience.toEntity(),
		ScheduleDate:   scheduleDate,
	}
	if req.Status != "" {
		status := entity.AnnouncementStatus(req.Status)
		input.Status = &status
	}

	announcement, err := h.announcementUC.UpdateAnnouncement(c.Request().Context(), principal.ID, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, announcement, "Announcement updated successfully")
}

func (h *AnnouncementHandler) DeleteAnnouncement(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.announcementUC.DeleteAnnouncement(c.Request().Context(), principal.ID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Announcement deleted successfully")
}
