package impl

import (
	"context"
	"fmt"
	"testing"

	"tiffin/internal/domain/entity"
	"tiffin/internal/domain/service"
	mockRepo "tiffin/internal/mocks/repository"
	mockSvc "tiffin/internal/mocks/service"
	"tiffin/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type eventServiceFixtures struct {
	service          *eventService
	notificationRepo *mockRepo.MockNotificationRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	pushSvc          *mockSvc.MockNotificationService
}

func createTestEventService(t *testing.T, withPush bool) eventServiceFixtures {
	fx := eventServiceFixtures{
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		deviceRepo:       mockRepo.NewMockDeviceRepository(t),
	}

	params := EventServiceParams{
		NotificationRepo: fx.notificationRepo,
		DeviceRepo:       fx.deviceRepo,
	}
	if withPush {
		fx.pushSvc = mockSvc.NewMockNotificationService(t)
		params.PushService = fx.pushSvc
	}

	fx.service = NewEventService(params).(*eventService)
	fx.service.now = fixedClock

	return fx
}

func orderEvent(recipientID uuid.UUID) *service.DomainEvent {
	return &service.DomainEvent{
		ID:               uuid.NewString(),
		Type:             service.EventOrderStatusChanged,
		RecipientID:      recipientID.String(),
		RecipientRole:    "student",
		NotificationType: string(entity.NotifyOrder),
		Title:            "Order rejected",
		Message:          "Your lunch order was rejected",
		ActionURL:        "/orders",
		Important:        true,
		Data:             map[string]string{"order_id": "o-1"},
		OccurredAt:       testNow,
	}
}

func TestEventService_ProcessEvent_StoresAndPushes(t *testing.T) {
	fx := createTestEventService(t, true)

	ctx := context.Background()
	studentID := uuid.New()
	devices := []*entity.UserDevice{
		{ID: uuid.New(), UserID: studentID, FCMToken: "token-a"},
		{ID: uuid.New(), UserID: studentID, FCMToken: "token-b"},
	}

	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.UserID == studentID &&
				n.Category == entity.CategoryOrders &&
				n.Priority == 5 &&
				n.IsImportant &&
				n.Metadata["order_id"] == "o-1" &&
				n.Metadata["event_type"] == string(service.EventOrderStatusChanged)
		})).
		Return(nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, studentID).Return(devices, nil)
	fx.pushSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-a", "token-b"}, "Order rejected", "Your lunch order was rejected", mock.MatchedBy(func(data map[string]string) bool {
			return data["action_url"] == "/orders" && data["type"] == string(entity.NotifyOrder) && data["order_id"] == "o-1"
		})).
		Return(1, 1, []string{"token-b"}, nil)
	fx.deviceRepo.EXPECT().DeleteDevicesByTokens(ctx, []string{"token-b"}).Return(int64(1), nil)

	result, err := fx.service.ProcessEvent(ctx, orderEvent(studentID))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Devices)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, int64(1), result.InvalidRemoved)
}

func TestEventService_ProcessEvent_BatchesTokens(t *testing.T) {
	fx := createTestEventService(t, true)

	ctx := context.Background()
	vendorID := uuid.New()
	devices := make([]*entity.UserDevice, firebaseBatchSize+1)
	for i := range devices {
		devices[i] = &entity.UserDevice{ID: uuid.New(), UserID: vendorID, FCMToken: fmt.Sprintf("token-%d", i)}
	}

	var batchSizes []int
	fx.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, vendorID).Return(devices, nil)
	fx.pushSvc.EXPECT().
		SendBatchNotification(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, tokens []string, _, _ string, _ map[string]string) (int, int, []string, error) {
			batchSizes = append(batchSizes, len(tokens))

			return len(tokens), 0, nil, nil
		}).
		Twice()

	result, err := fx.service.ProcessEvent(ctx, orderEvent(vendorID))
	require.NoError(t, err)
	assert.Equal(t, []int{firebaseBatchSize, 1}, batchSizes)
	assert.Equal(t, firebaseBatchSize+1, result.Sent)
}

func TestEventService_ProcessEvent_NoPushService(t *testing.T) {
	fx := createTestEventService(t, false)

	ctx := context.Background()
	event := orderEvent(uuid.New())
	event.NotificationType = ""

	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.Type == entity.NotifySystem
		})).
		Return(nil)

	result, err := fx.service.ProcessEvent(ctx, event)
	require.NoError(t, err)
	assert.Zero(t, result.Devices)
}

func TestEventService_ProcessEvent_NoDevices(t *testing.T) {
	fx := createTestEventService(t, true)

	ctx := context.Background()
	studentID := uuid.New()

	fx.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, studentID).Return(nil, nil)

	result, err := fx.service.ProcessEvent(ctx, orderEvent(studentID))
	require.NoError(t, err)
	assert.Zero(t, result.Sent)
}

func TestEventService_ProcessEvent_InvalidRecipient(t *testing.T) {
	fx := createTestEventService(t, true)

	event := orderEvent(uuid.New())
	event.RecipientID = "not-a-uuid"

	_, err := fx.service.ProcessEvent(context.Background(), event)
	require.Error(t, err)
	assert.False(t, usecase.IsRetryable(err))
}

func TestEventService_ProcessEvent_StoreFailureIsRetryable(t *testing.T) {
	fx := createTestEventService(t, true)

	ctx := context.Background()

	fx.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(errors.New("connection reset"))

	_, err := fx.service.ProcessEvent(ctx, orderEvent(uuid.New()))
	require.Error(t, err)
	assert.True(t, usecase.IsRetryable(err))
}

func TestEventService_ProcessEvent_PushFailureIsRetryable(t *testing.T) {
	fx := createTestEventService(t, true)

	ctx := context.Background()
	studentID := uuid.New()

	fx.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, studentID).
		Return([]*entity.UserDevice{{FCMToken: "token-a"}}, nil)
	fx.pushSvc.EXPECT().
		SendBatchNotification(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(0, 0, nil, errors.New("firebase unavailable"))

	_, err := fx.service.ProcessEvent(ctx, orderEvent(studentID))
	assert.True(t, usecase.IsRetryable(err))
}
