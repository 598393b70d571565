package handler

import (
	"net/http"
	"testing"

	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	mockUsecase "tiffin/internal/mocks/usecase"
	"tiffin/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotificationHandler_ListNotifications_ReadFilter(t *testing.T) {
	student := testStudent()
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	h := NewNotificationHandler(NotificationHandlerParams{NotificationUC: notificationUC})

	e := newTestEcho()
	e.GET("/notifications", h.ListNotifications, asPrincipal(student))

	notificationUC.EXPECT().
		ListNotifications(mock.Anything, student.ID, mock.MatchedBy(func(q usecase.NotificationQuery) bool {
			return q.IsRead != nil && !*q.IsRead &&
				q.Category == entity.NotificationCategory("orders") &&
				q.Page == entity.PageQuery{Page: 1, Limit: 20}
		})).
		Return(&usecase.NotificationList{}, nil)

	rec := doRequest(e, http.MethodGet, "/notifications?isRead=false&category=orders&page=1&limit=20", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNotificationHandler_ListNotifications_BadReadFilter(t *testing.T) {
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	h := NewNotificationHandler(NotificationHandlerParams{NotificationUC: notificationUC})

	e := newTestEcho()
	e.GET("/notifications", h.ListNotifications, asPrincipal(testStudent()))

	rec := doRequest(e, http.MethodGet, "/notifications?isRead=maybe", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNotificationHandler_MarkRead_NotFound(t *testing.T) {
	student := testStudent()
	notificationID := uuid.New()
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	h := NewNotificationHandler(NotificationHandlerParams{NotificationUC: notificationUC})

	e := newTestEcho()
	e.PUT("/notifications/:id/read", h.MarkRead, asPrincipal(student))

	notificationUC.EXPECT().
		MarkRead(mock.Anything, student.ID, notificationID).
		Return(errors.WithStack(domainerrors.ErrNotificationNotFound))

	rec := doRequest(e, http.MethodPut, "/notifications/"+notificationID.String()+"/read", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOTIFICATION_NOT_FOUND", decode(t, rec).Code)
}

func TestNotificationHandler_ClearRead(t *testing.T) {
	vendor := testVendor()
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	h := NewNotificationHandler(NotificationHandlerParams{NotificationUC: notificationUC})

	e := newTestEcho()
	e.DELETE("/notifications", h.ClearRead, asPrincipal(vendor))

	notificationUC.EXPECT().ClearRead(mock.Anything, vendor.ID).Return(int64(3), nil)

	rec := doRequest(e, http.MethodDelete, "/notifications", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deletedCount":3}`, string(decode(t, rec).Data))
}

func TestMessageHandler_SendMessage_FromStudent(t *testing.T) {
	student := testStudent()
	vendorID := uuid.New()
	messageUC := mockUsecase.NewMockMessageUsecase(t)
	h := NewMessageHandler(MessageHandlerParams{MessageUC: messageUC})

	e := newTestEcho()
	e.POST("/messages", h.SendMessage, asPrincipal(student))

	messageUC.EXPECT().
		SendMessage(mock.Anything, student, mock.MatchedBy(func(in usecase.SendMessageInput) bool {
			return in.CounterpartID == vendorID &&
				in.ThreadID == nil &&
				in.Priority == entity.PriorityHigh &&
				in.Body == "No onions please"
		})).
		Return(&entity.Message{ID: uuid.New()}, nil)

	rec := doRequest(e, http.MethodPost, "/messages", `{"vendorId":"`+vendorID.String()+`","body":"No onions please","priority":"high"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestMessageHandler_SendMessage_VendorNeedsStudent(t *testing.T) {
	messageUC := mockUsecase.NewMockMessageUsecase(t)
	h := NewMessageHandler(MessageHandlerParams{MessageUC: messageUC})

	e := newTestEcho()
	e.POST("/messages", h.SendMessage, asPrincipal(testVendor()))

	rec := doRequest(e, http.MethodPost, "/messages", `{"vendorId":"`+uuid.NewString()+`","body":"Menu changed"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"studentId"}, fieldNames(decode(t, rec).Errors))
}

func TestDeviceHandler_RegisterDevice(t *testing.T) {
	student := testStudent()
	deviceUC := mockUsecase.NewMockDeviceUsecase(t)
	h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC, Logger: discardLogger()})

	e := newTestEcho()
	e.POST("/devices", h.RegisterDevice, asPrincipal(student))

	deviceUC.EXPECT().
		RegisterDevice(mock.Anything, student.ID, &usecase.DeviceInfo{FCMToken: "fcm-1", DeviceID: "pixel-8", Platform: entity.PlatformAndroid}).
		Return(&entity.UserDevice{ID: uuid.New()}, nil)

	rec := doRequest(e, http.MethodPost, "/devices", `{"fcmToken":"fcm-1","deviceId":"pixel-8","platform":"android"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestDeviceHandler_RegisterDevice_UnknownPlatform(t *testing.T) {
	deviceUC := mockUsecase.NewMockDeviceUsecase(t)
	h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC, Logger: discardLogger()})

	e := newTestEcho()
	e.POST("/devices", h.RegisterDevice, asPrincipal(testStudent()))

	rec := doRequest(e, http.MethodPost, "/devices", `{"fcmToken":"fcm-1","deviceId":"pc","platform":"windows"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"platform"}, fieldNames(decode(t, rec).Errors))
}
