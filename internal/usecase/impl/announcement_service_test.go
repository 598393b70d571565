package impl

import (
	"context"
	"testing"

	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
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

type announcementServiceFixtures struct {
	service          *announcementService
	announcementRepo *mockRepo.MockAnnouncementRepository
	customerRepo     *mockRepo.MockCustomerRepository
	publisher        *mockSvc.MockEventPublisher
}

func createTestAnnouncementService(t *testing.T) announcementServiceFixtures {
	fx := announcementServiceFixtures{
		announcementRepo: mockRepo.NewMockAnnouncementRepository(t),
		customerRepo:     mockRepo.NewMockCustomerRepository(t),
		publisher:        mockSvc.NewMockEventPublisher(t),
	}

	fx.service = NewAnnouncementService(AnnouncementServiceParams{
		AnnouncementRepo: fx.announcementRepo,
		CustomerRepo:     fx.customerRepo,
		Publisher:        fx.publisher,
	}).(*announcementService)
	fx.service.now = fixedClock

	return fx
}

func TestAnnouncementService_CreateAnnouncement_SendsToAudience(t *testing.T) {
	fx := createTestAnnouncementService(t)

	ctx := context.Background()
	vendorID := uuid.New()

	paid := testCustomer(vendorID)
	paid.RecordPayment(testNow)
	unpaid := testCustomer(vendorID)
	walkIn := testCustomer(vendorID)
	walkIn.StudentID = nil
	walkIn.RecordPayment(testNow)

	fx.announcementRepo.EXPECT().
		CreateAnnouncement(ctx, mock.MatchedBy(func(a *entity.Announcement) bool {
			return a.Status == entity.AnnouncementSent && a.SentAt != nil
		})).
		Return(nil)
	fx.customerRepo.EXPECT().FindAllCustomers(ctx, vendorID).Return([]*entity.Customer{paid, unpaid, walkIn}, nil)
	fx.publisher.EXPECT().
		PublishEvent(ctx, mock.MatchedBy(func(e *service.DomainEvent) bool {
			return e.Type == service.EventAnnouncementSent &&
				e.RecipientID == paid.StudentID.String() &&
				e.Title == "Menu change"
		})).
		Return(nil).
		Once()

	announcement, err := fx.service.CreateAnnouncement(ctx, vendorID, usecase.CreateAnnouncementInput{
		Title:          " Menu change ",
		Content:        "Paneer on Fridays",
		TargetAudience: &entity.TargetAudience{Type: entity.AudiencePaid},
	})
	require.NoError(t, err)
	assert.Equal(t, "Menu change", announcement.Title)
	assert.Equal(t, testNow, *announcement.SentAt)
}

func TestAnnouncementService_CreateAnnouncement_Scheduled(t *testing.T) {
	fx := createTestAnnouncementService(t)

	ctx := context.Background()
	later := testNow.AddDate(0, 0, 2)

	fx.announcementRepo.EXPECT().CreateAnnouncement(ctx, mock.Anything).Return(nil)

	announcement, err := fx.service.CreateAnnouncement(ctx, uuid.New(), usecase.CreateAnnouncementInput{
		Title:        "Holiday",
		Content:      "Closed for Diwali",
		ScheduleDate: &later,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AnnouncementScheduled, announcement.Status)
	assert.Nil(t, announcement.SentAt)
	assert.Equal(t, entity.AudienceAll, announcement.TargetAudience.Type)
}

func TestAnnouncementService_CreateAnnouncement_MissingFields(t *testing.T) {
	fx := createTestAnnouncementService(t)

	_, err := fx.service.CreateAnnouncement(context.Background(), uuid.New(), usecase.CreateAnnouncementInput{Title: "  "})
	require.Error(t, err)

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields(), 2)
}

func TestAnnouncementService_UpdateAnnouncement_SendOnce(t *testing.T) {
	fx := createTestAnnouncementService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	later := testNow.AddDate(0, 0, 2)
	announcement := entity.NewAnnouncement(vendorID, "Holiday", "Closed", nil, &later, testNow)
	announcement.ID = uuid.New()
	sent := entity.AnnouncementSent

	fx.announcementRepo.EXPECT().FindAnnouncementByID(ctx, announcement.ID).Return(announcement, nil).Twice()
	fx.announcementRepo.EXPECT().UpdateAnnouncement(ctx, announcement).Return(nil).Twice()
	fx.customerRepo.EXPECT().FindAllCustomers(ctx, vendorID).Return(nil, nil).Once()

	updated, err := fx.service.UpdateAnnouncement(ctx, vendorID, announcement.ID, usecase.UpdateAnnouncementInput{Status: &sent})
	require.NoError(t, err)
	assert.Equal(t, entity.AnnouncementSent, updated.Status)

	// already sent: no second delivery
	_, err = fx.service.UpdateAnnouncement(ctx, vendorID, announcement.ID, usecase.UpdateAnnouncementInput{Status: &sent})
	require.NoError(t, err)
}

func TestAnnouncementService_UpdateAnnouncement_BadStatus(t *testing.T) {
	fx := createTestAnnouncementService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	announcement := &entity.Announcement{ID: uuid.New(), VendorID: vendorID, Status: entity.AnnouncementDraft}
	status := entity.AnnouncementStatus("archived")

	fx.announcementRepo.EXPECT().FindAnnouncementByID(ctx, announcement.ID).Return(announcement, nil)

	_, err := fx.service.UpdateAnnouncement(ctx, vendorID, announcement.ID, usecase.UpdateAnnouncementInput{Status: &status})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAnnouncementService_DeleteAnnouncement_OtherVendor(t *testing.T) {
	fx := createTestAnnouncementService(t)

	ctx := context.Background()
	announcement := &entity.Announcement{ID: uuid.New(), VendorID: uuid.New()}

	fx.announcementRepo.EXPECT().FindAnnouncementByID(ctx, announcement.ID).Return(announcement, nil)

	err := fx.service.DeleteAnnouncement(ctx, uuid.New(), announcement.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAnnouncementService_DeliverDueAnnouncements(t *testing.T) {
	fx := createTestAnnouncementService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	earlier := testNow.Add(-1)
	due := entity.NewAnnouncement(vendorID, "Rain", "Late delivery today", nil, &earlier, testNow)
	failing := entity.NewAnnouncement(vendorID, "Other", "Body", nil, &earlier, testNow)

	fx.announcementRepo.EXPECT().FindDueAnnouncements(ctx, testNow, defaultSweepBatch).Return([]*entity.Announcement{due, failing}, nil)
	fx.announcementRepo.EXPECT().UpdateAnnouncement(ctx, due).Return(nil)
	fx.announcementRepo.EXPECT().UpdateAnnouncement(ctx, failing).Return(errors.New("db down"))
	fx.customerRepo.EXPECT().FindAllCustomers(ctx, vendorID).Return([]*entity.Customer{testCustomer(vendorID)}, nil)
	fx.publisher.EXPECT().PublishEvent(ctx, mock.Anything).Return(nil).Once()

	delivered, err := fx.service.DeliverDueAnnouncements(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, delivered)
}
