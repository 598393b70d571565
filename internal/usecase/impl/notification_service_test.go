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
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (*notificationService, *mockRepo.MockNotificationRepository) {
	repo := mockRepo.NewMockNotificationRepository(t)

	svc := NewNotificationService(NotificationServiceParams{NotificationRepo: repo}).(*notificationService)
	svc.now = fixedClock

	return svc, repo
}

func TestNotificationService_ListNotifications(t *testing.T) {
	svc, repo := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	unread := false
	notifications := []*entity.Notification{{ID: uuid.New(), UserID: userID, Title: "Order accepted"}}

	repo.EXPECT().
		ListNotifications(ctx, repository.NotificationFilter{
			UserID:   userID,
			Category: entity.CategoryOrders,
			IsRead:   &unread,
			Now:      testNow,
			Page:     entity.PageQuery{Page: 1, Limit: 20},
		}).
		Return(notifications, int64(1), nil)
	repo.EXPECT().GetStats(ctx, userID, testNow).Return(&entity.NotificationStats{Total: 4, Unread: 1, Read: 3}, nil)

	list, err := svc.ListNotifications(ctx, userID, usecase.NotificationQuery{
		Category: entity.CategoryOrders,
		IsRead:   &unread,
	})
	require.NoError(t, err)
	assert.Len(t, list.Notifications, 1)
	assert.Equal(t, int64(1), list.Stats.Unread)
	assert.Equal(t, 1, list.Pagination.TotalPages)
}

func TestNotificationService_ListNotifications_UnknownCategory(t *testing.T) {
	svc, _ := createTestNotificationService(t)

	_, err := svc.ListNotifications(context.Background(), uuid.New(), usecase.NotificationQuery{Category: "billing"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestNotificationService_GetCategories_FillsEmpty(t *testing.T) {
	svc, repo := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	repo.EXPECT().
		CountByCategory(ctx, userID, testNow).
		Return([]entity.CategoryCount{{Category: entity.CategoryPayments, Count: 3, Unread: 2}}, nil)

	counts, err := svc.GetCategories(ctx, userID)
	require.NoError(t, err)
	require.Len(t, counts, len(entity.NotificationCategories))
	assert.Equal(t, entity.CategoryOrders, counts[0].Category)
	assert.Zero(t, counts[0].Count)
	assert.Equal(t, entity.CategoryCount{Category: entity.CategoryPayments, Count: 3, Unread: 2}, counts[1])
}

func TestNotificationService_MarkRead_NotFound(t *testing.T) {
	svc, repo := createTestNotificationService(t)

	ctx := context.Background()
	userID, id := uuid.New(), uuid.New()

	repo.EXPECT().MarkRead(ctx, id, userID, testNow).Return(errors.WithStack(repository.ErrNotificationNotFound))

	err := svc.MarkRead(ctx, userID, id)
	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	svc, repo := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	repo.EXPECT().MarkAllRead(ctx, userID, testNow).Return(int64(7), nil)

	out, err := svc.MarkAllRead(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, &usecase.MarkAllReadOutput{ModifiedCount: 7}, out)
}

func TestNotificationService_ClearRead(t *testing.T) {
	svc, repo := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	repo.EXPECT().DeleteReadNotifications(ctx, userID).Return(int64(3), nil)

	deleted, err := svc.ClearRead(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}
