package impl

import (
	"context"
	"testing"

	"tiffin/internal/domain/entity"
	"tiffin/internal/domain/repository"
	"tiffin/internal/domain/service"
	mockRepo "tiffin/internal/mocks/repository"
	mockSvc "tiffin/internal/mocks/service"
	mockUsecase "tiffin/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sweepServiceFixtures struct {
	service       *sweepService
	subRepo       *mockRepo.MockSubscriptionRepository
	announcements *mockUsecase.MockAnnouncementUsecase
	publisher     *mockSvc.MockEventPublisher
}

func createTestSweepService(t *testing.T) sweepServiceFixtures {
	fx := sweepServiceFixtures{
		subRepo:       mockRepo.NewMockSubscriptionRepository(t),
		announcements: mockUsecase.NewMockAnnouncementUsecase(t),
		publisher:     mockSvc.NewMockEventPublisher(t),
	}

	fx.service = NewSweepService(SweepServiceParams{
		SubscriptionRepo: fx.subRepo,
		Announcements:    fx.announcements,
		Publisher:        fx.publisher,
	}).(*sweepService)
	fx.service.now = fixedClock

	return fx
}

func lapsedSubscription(studentID, vendorID uuid.UUID) *entity.Subscription {
	sub := activeSubscription(studentID, vendorID)
	sub.StartDate = entity.DateOnly(testNow).AddDate(0, 0, -40)
	sub.EndDate = entity.SubscriptionEndDate(sub.StartDate, 30)

	return sub
}

func TestSweepService_Sweep_ExpiresAndDelivers(t *testing.T) {
	fx := createTestSweepService(t)

	ctx := context.Background()
	studentID := uuid.New()
	expired := lapsedSubscription(studentID, uuid.New())
	conflicted := lapsedSubscription(uuid.New(), uuid.New())
	stillActive := activeSubscription(uuid.New(), uuid.New())

	fx.subRepo.EXPECT().
		FindLapsedSubscriptions(ctx, testNow, defaultSweepBatch).
		Return([]*entity.Subscription{expired, conflicted, stillActive}, nil)
	fx.subRepo.EXPECT().UpdateSubscriptionState(ctx, expired).Return(nil)
	fx.subRepo.EXPECT().
		UpdateSubscriptionState(ctx, conflicted).
		Return(errors.WithStack(repository.ErrSubscriptionVersionConflict))
	fx.publisher.EXPECT().
		PublishEvent(ctx, mock.MatchedBy(func(e *service.DomainEvent) bool {
			return e.Type == service.EventSubscriptionExpired &&
				e.RecipientID == studentID.String() &&
				e.Data["subscription_id"] == expired.ID.String()
		})).
		Return(nil).
		Once()
	fx.announcements.EXPECT().DeliverDueAnnouncements(ctx).Return(2, nil)

	result, err := fx.service.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.ExpiredSubscriptions)
	assert.Equal(t, 1, result.Conflicts)
	assert.Equal(t, 2, result.DeliveredAnnouncements)
	assert.Equal(t, entity.SubscriptionExpired, expired.Status)
	assert.Equal(t, entity.SubscriptionActive, stillActive.Status)
}

func TestSweepService_Sweep_UpdateError(t *testing.T) {
	fx := createTestSweepService(t)

	ctx := context.Background()
	sub := lapsedSubscription(uuid.New(), uuid.New())

	fx.subRepo.EXPECT().FindLapsedSubscriptions(ctx, testNow, defaultSweepBatch).Return([]*entity.Subscription{sub}, nil)
	fx.subRepo.EXPECT().UpdateSubscriptionState(ctx, sub).Return(errors.New("db down"))

	result, err := fx.service.Sweep(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to expire subscription")
	assert.Zero(t, result.ExpiredSubscriptions)
}

func TestSweepService_Sweep_FindError(t *testing.T) {
	fx := createTestSweepService(t)

	ctx := context.Background()

	fx.subRepo.EXPECT().FindLapsedSubscriptions(ctx, testNow, defaultSweepBatch).Return(nil, errors.New("timeout"))

	_, err := fx.service.Sweep(ctx)
	require.Error(t, err)
}
