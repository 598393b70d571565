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

type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
}

// NotificationHandler serves the caller's inbox.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
}

func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{notificationUC: params.NotificationUC}
}

type ListNotificationsQuery struct {
	Category string `query:"category"`
	IsRead   string `query:"isRead" validate:"omitempty,oneof=true false"`
	Page     int    `query:"page" validate:"gte=0"`
	Limit    int    `query:"limit" validate:"gte=0"`
}

// ListNotifications returns unexpired notifications, newest first, with inbox totals.
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var query ListNotificationsQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	input := usecase.NotificationQuery{
		Category: entity.NotificationCategory(query.Category),
		Page:     entity.PageQuery{Page: query.Page, Limit: query.Limit},
	}
	if query.IsRead != "" {
		isRead := query.IsRead == "true"
		input.IsRead = &isRead
	}

	list, err := h.notificationUC.ListNotifications(c.Request().Context(), principal.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, list)
}

func (h *NotificationHandler) GetCategories(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	categories, err := h.notificationUC.GetCategories(c.Request().Context(), principal.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories)
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.notificationUC.MarkRead(c.Request().Context(), principal.ID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification marked as read")
}

func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	out, err := h.notificationUC.MarkAllRead(c.Request().Context(), principal.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, out, "All notifications marked as read")
}

func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.notificationUC.DeleteNotification(c.Request().Context(), principal.ID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification deleted")
}

// ClearRead deletes every read notification of the caller.
func (h *NotificationHandler) ClearRead(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	deleted, err := h.notificationUC.ClearRead(c.Request().Context(), principal.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"deletedCount": deleted}, "Read notifications cleared")
}
