package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/domain/repository"
	mockRepo "tiffin/internal/mocks/repository"
	mockSvc "tiffin/internal/mocks/service"
	"tiffin/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

type subscriptionServiceFixtures struct {
	service          *subscriptionService
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	vendorRepo       *mockRepo.MockVendorRepository
	publisher        *mockSvc.MockEventPublisher
}

func createTestSubscriptionService(t *testing.T) subscriptionServiceFixtures {
	subscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	vendorRepo := mockRepo.NewMockVendorRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewSubscriptionService(SubscriptionServiceParams{
		SubscriptionRepo: subscriptionRepo,
		VendorRepo:       vendorRepo,
		Publisher:        publisher,
	}).(*subscriptionService)
	svc.now = fixedClock

	return subscriptionServiceFixtures{
		service:          svc,
		subscriptionRepo: subscriptionRepo,
		vendorRepo:       vendorRepo,
		publisher:        publisher,
	}
}

func testVendor() *entity.Vendor {
	return &entity.Vendor{
		ID:     uuid.New(),
		Email:  "kitchen@example.com",
		Status: entity.VendorApproved,
		BusinessInfo: entity.VendorBusinessInfo{
			ServiceName: "Annapurna Tiffins",
			FoodType:    entity.FoodBoth,
		},
		Pricing:              entity.VendorPricing{MonthlyRate: 3000, OneTimeRate: 120},
		SubscriptionSettings: entity.DefaultSubscriptionSettings(),
		IsActive:             true,
	}
}

func TestSubscriptionService_CreateSubscription_Success(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	studentID := uuid.New()
	vendor := testVendor()

	fx.vendorRepo.EXPECT().FindVendorByID(ctx, vendor.ID).Return(vendor, nil)
	fx.subscriptionRepo.EXPECT().
		CreateSubscription(ctx, mock.AnythingOfType("*entity.Subscription")).
		Return(nil)
	fx.publisher.EXPECT().PublishEvent(ctx, mock.AnythingOfType("*service.DomainEvent")).Return(nil)

	view, err := fx.service.CreateSubscription(ctx, studentID, usecase.CreateSubscriptionInput{
		VendorID:     vendor.ID,
		DurationDays: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, studentID, view.StudentID)
	assert.Equal(t, entity.SubscriptionActive, view.Status)
	assert.Equal(t, float64(3000), view.TotalAmount)
	assert.Equal(t, entity.DateOnly(testNow), view.StartDate)
	assert.Equal(t, entity.DateOnly(testNow).AddDate(0, 0, 30), view.EndDate)
	assert.Equal(t, "Annapurna Tiffins", view.VendorName)
	assert.Equal(t, 30, view.DaysRemaining)
}

func TestSubscriptionService_CreateSubscription_BelowMinimum(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	vendor := testVendor()

	fx.vendorRepo.EXPECT().FindVendorByID(ctx, vendor.ID).Return(vendor, nil)

	_, err := fx.service.CreateSubscription(ctx, uuid.New(), usecase.CreateSubscriptionInput{
		VendorID:     vendor.ID,
		DurationDays: 7,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidDuration)
	assert.Contains(t, err.Error(), "15 days")
}

func TestSubscriptionService_CreateSubscription_AboveMaximum(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	vendor := testVendor()

	fx.vendorRepo.EXPECT().FindVendorByID(ctx, vendor.ID).Return(vendor, nil)

	_, err := fx.service.CreateSubscription(ctx, uuid.New(), usecase.CreateSubscriptionInput{
		VendorID:     vendor.ID,
		DurationDays: 1 << 40,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidDuration)
	assert.Contains(t, err.Error(), "365 days")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}

func TestSubscriptionService_CreateSubscription_StartDateInPast(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	vendor := testVendor()
	yesterday := testNow.AddDate(0, 0, -1)

	fx.vendorRepo.EXPECT().FindVendorByID(ctx, vendor.ID).Return(vendor, nil)

	_, err := fx.service.CreateSubscription(ctx, uuid.New(), usecase.CreateSubscriptionInput{
		VendorID:     vendor.ID,
		DurationDays: 30,
		StartDate:    &yesterday,
	})
	assert.ErrorIs(t, err, domainerrors.ErrStartDateInPast)
}

func TestSubscriptionService_CreateSubscription_VendorNotListed(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	vendor := testVendor()
	vendor.Status = entity.VendorRejected

	fx.vendorRepo.EXPECT().FindVendorByID(ctx, vendor.ID).Return(vendor, nil)

	_, err := fx.service.CreateSubscription(ctx, uuid.New(), usecase.CreateSubscriptionInput{
		VendorID:     vendor.ID,
		DurationDays: 30,
	})
	assert.ErrorIs(t, err, domainerrors.ErrVendorNotFound)
}

func TestSubscriptionService_CreateSubscription_PublishFailureIgnored(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	vendor := testVendor()

	fx.vendorRepo.EXPECT().FindVendorByID(ctx, vendor.ID).Return(vendor, nil)
	fx.subscriptionRepo.EXPECT().CreateSubscription(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	view, err := fx.service.CreateSubscription(ctx, uuid.New(), usecase.CreateSubscriptionInput{
		VendorID:     vendor.ID,
		DurationDays: 30,
	})
	require.NoError(t, err)
	assert.NotNil(t, view)
}

func activeSubscription(studentID, vendorID uuid.UUID) *entity.Subscription {
	start := entity.DateOnly(testNow).AddDate(0, 0, -5)

	return &entity.Subscription{
		ID:           uuid.New(),
		StudentID:    studentID,
		VendorID:     vendorID,
		DurationDays: 30,
		StartDate:    start,
		EndDate:      entity.SubscriptionEndDate(start, 30),
		Status:       entity.SubscriptionActive,
		TotalAmount:  3000,
		MealsPerDay:  entity.DefaultMealsPerDay,
		Version:      1,
	}
}

func TestSubscriptionService_PauseSubscription_Success(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	studentID := uuid.New()
	vendor := testVendor()
	sub := activeSubscription(studentID, vendor.ID)
	resume := testNow.AddDate(0, 0, 3)

	fx.subscriptionRepo.EXPECT().FindSubscriptionByID(ctx, sub.ID).Return(sub, nil)
	fx.subscriptionRepo.EXPECT().
		UpdateSubscriptionState(ctx, mock.MatchedBy(func(s *entity.Subscription) bool {
			return s.Status == entity.SubscriptionPaused && s.PauseDetails != nil
		})).
		Return(nil)
	fx.publisher.EXPECT().PublishEvent(ctx, mock.Anything).Return(nil)
	fx.vendorRepo.EXPECT().FindVendorByID(ctx, vendor.ID).Return(vendor, nil)

	view, err := fx.service.PauseSubscription(ctx, studentID, sub.ID, usecase.PauseSubscriptionInput{
		ResumeDate: &resume,
		Reason:     "travelling",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SubscriptionPaused, view.Status)
	assert.Equal(t, "travelling", view.PauseDetails.Reason)
	assert.Equal(t, testNow, view.PauseDetails.PauseDate)
}

func TestSubscriptionService_PauseSubscription_AlreadyPaused(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	studentID := uuid.New()
	sub := activeSubscription(studentID, uuid.New())
	sub.Status = entity.SubscriptionPaused

	fx.subscriptionRepo.EXPECT().FindSubscriptionByID(ctx, sub.ID).Return(sub, nil)

	_, err := fx.service.PauseSubscription(ctx, studentID, sub.ID, usecase.PauseSubscriptionInput{})
	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionNotActive)
}

func TestSubscriptionService_ResumeSubscription_NotPaused(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	studentID := uuid.New()
	sub := activeSubscription(studentID, uuid.New())

	fx.subscriptionRepo.EXPECT().FindSubscriptionByID(ctx, sub.ID).Return(sub, nil)

	_, err := fx.service.ResumeSubscription(ctx, studentID, sub.ID)
	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionNotPaused)
}

func TestSubscriptionService_CancelSubscription_NotOwner(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	sub := activeSubscription(uuid.New(), uuid.New())

	fx.subscriptionRepo.EXPECT().FindSubscriptionByID(ctx, sub.ID).Return(sub, nil)

	_, err := fx.service.CancelSubscription(ctx, uuid.New(), sub.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestSubscriptionService_CancelSubscription_VersionConflict(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	studentID := uuid.New()
	sub := activeSubscription(studentID, uuid.New())

	fx.subscriptionRepo.EXPECT().FindSubscriptionByID(ctx, sub.ID).Return(sub, nil)
	fx.subscriptionRepo.EXPECT().
		UpdateSubscriptionState(ctx, sub).
		Return(errors.WithStack(repository.ErrSubscriptionVersionConflict))

	_, err := fx.service.CancelSubscription(ctx, studentID, sub.ID)
	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionConflict)
}

func TestSubscriptionService_CancelSubscription_AlreadyCancelled(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	studentID := uuid.New()
	sub := activeSubscription(studentID, uuid.New())
	sub.Status = entity.SubscriptionCancelled

	fx.subscriptionRepo.EXPECT().FindSubscriptionByID(ctx, sub.ID).Return(sub, nil)

	_, err := fx.service.CancelSubscription(ctx, studentID, sub.ID)
	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionAlreadyCancelled)
}

func TestSubscriptionService_GetSubscription_NotFound(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.subscriptionRepo.EXPECT().FindSubscriptionByID(ctx, id).Return(nil, repository.ErrSubscriptionNotFound)

	_, err := fx.service.GetSubscription(ctx, uuid.New(), id)
	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionNotFound)
}

func TestSubscriptionService_ListSubscriptions_LazyExpiry(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	studentID := uuid.New()
	vendor := testVendor()

	running := activeSubscription(studentID, vendor.ID)
	lapsed := activeSubscription(studentID, vendor.ID)
	lapsed.StartDate = entity.DateOnly(testNow).AddDate(0, 0, -40)
	lapsed.EndDate = entity.SubscriptionEndDate(lapsed.StartDate, 30)

	fx.subscriptionRepo.EXPECT().
		FindSubscriptionsByStudent(ctx, studentID).
		Return([]*entity.Subscription{running, lapsed}, nil)
	fx.vendorRepo.EXPECT().FindVendorByID(ctx, vendor.ID).Return(vendor, nil).Once()

	views, err := fx.service.ListSubscriptions(ctx, studentID)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, entity.SubscriptionActive, views[0].Status)
	assert.Equal(t, 5, views[0].DaysCompleted)
	assert.Equal(t, entity.SubscriptionExpired, views[1].Status)
	assert.Equal(t, 30, views[1].DaysCompleted)
	assert.Equal(t, 0, views[1].DaysRemaining)
	assert.Equal(t, entity.SubscriptionActive, lapsed.Status, "stored status is left for the sweeper")
}
