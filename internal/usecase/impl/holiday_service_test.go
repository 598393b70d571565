package impl

import (
	"context"
	"testing"
	"time"

	"tiffin/config"
	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/domain/repository"
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

type holidayServiceFixtures struct {
	service     *holidayService
	holidayRepo *mockRepo.MockHolidayRepository
	publisher   *mockSvc.MockEventPublisher
}

func createTestHolidayService(t *testing.T) holidayServiceFixtures {
	holidayRepo := mockRepo.NewMockHolidayRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewHolidayService(HolidayServiceParams{
		HolidayRepo: holidayRepo,
		Publisher:   publisher,
		Config:      &config.Config{Holiday: &config.HolidayConfig{MinNoticeHours: 24}},
	}).(*holidayService)
	svc.now = fixedClock

	return holidayServiceFixtures{service: svc, holidayRepo: holidayRepo, publisher: publisher}
}

func day(offset int) time.Time {
	return entity.DateOnly(testNow).AddDate(0, 0, offset)
}

func TestHolidayService_CreateHolidays_Success(t *testing.T) {
	fx := createTestHolidayService(t)

	ctx := context.Background()
	studentID := uuid.New()
	vendorID := uuid.New()

	fx.holidayRepo.EXPECT().FindHolidaysOnDate(ctx, studentID, day(2)).Return(nil, nil)
	fx.holidayRepo.EXPECT().FindHolidaysOnDate(ctx, studentID, day(3)).Return(nil, nil)
	fx.holidayRepo.EXPECT().CreateHoliday(ctx, mock.AnythingOfType("*entity.Holiday")).Return(nil).Twice()
	fx.publisher.EXPECT().
		PublishEvent(ctx, mock.MatchedBy(func(e *service.DomainEvent) bool {
			return e.RecipientID == vendorID.String() && e.Type == service.EventHolidayScheduled
		})).
		Return(nil)

	result, err := fx.service.CreateHolidays(ctx, studentID, usecase.CreateHolidayInput{
		VendorID: &vendorID,
		Dates:    []time.Time{day(2), day(3)},
	})
	require.NoError(t, err)
	require.Len(t, result.Created, 2)
	assert.Empty(t, result.Errors)
	assert.Equal(t, entity.ServiceBoth, result.Created[0].ServiceType)
	assert.Equal(t, entity.DefaultHolidayReason, result.Created[0].Reason)
}

func TestHolidayService_CreateHolidays_NoDates(t *testing.T) {
	fx := createTestHolidayService(t)

	_, err := fx.service.CreateHolidays(context.Background(), uuid.New(), usecase.CreateHolidayInput{})
	assert.ErrorIs(t, err, domainerrors.ErrHolidayDateRequired)
}

func TestHolidayService_CreateHolidays_SingleDateTooSoon(t *testing.T) {
	fx := createTestHolidayService(t)

	_, err := fx.service.CreateHolidays(context.Background(), uuid.New(), usecase.CreateHolidayInput{
		Dates: []time.Time{day(1)},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrHolidayNoticePeriod)
	assert.Contains(t, err.Error(), "24 hours")
}

func TestHolidayService_CreateHolidays_PartialSuccess(t *testing.T) {
	fx := createTestHolidayService(t)

	ctx := context.Background()
	studentID := uuid.New()
	existing := &entity.Holiday{ID: uuid.New(), StudentID: studentID, Date: day(4), ServiceType: entity.ServiceBoth}

	fx.holidayRepo.EXPECT().FindHolidaysOnDate(ctx, studentID, day(3)).Return(nil, nil)
	fx.holidayRepo.EXPECT().FindHolidaysOnDate(ctx, studentID, day(4)).Return([]*entity.Holiday{existing}, nil)
	fx.holidayRepo.EXPECT().CreateHoliday(ctx, mock.Anything).Return(nil).Once()

	result, err := fx.service.CreateHolidays(ctx, studentID, usecase.CreateHolidayInput{
		Dates: []time.Time{day(3), day(4), day(1)},
	})
	require.NoError(t, err)
	require.Len(t, result.Created, 1)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, entity.FormatDate(day(4)), result.Errors[0].Date)
	assert.Equal(t, domainerrors.ErrHolidayAlreadyExists.ErrorCode(), result.Errors[0].Code)
	assert.Equal(t, domainerrors.ErrHolidayNoticePeriod.ErrorCode(), result.Errors[1].Code)
}

func TestHolidayService_CreateHolidays_AllFail(t *testing.T) {
	fx := createTestHolidayService(t)

	ctx := context.Background()
	studentID := uuid.New()

	fx.holidayRepo.EXPECT().FindHolidaysOnDate(ctx, studentID, day(5)).Return(nil, nil)
	fx.holidayRepo.EXPECT().CreateHoliday(ctx, mock.Anything).Return(repository.ErrDuplicateHoliday)

	result, err := fx.service.CreateHolidays(ctx, studentID, usecase.CreateHolidayInput{
		Dates: []time.Time{day(0), day(5)},
	})
	require.NoError(t, err)
	assert.NotNil(t, result.Created)
	assert.Empty(t, result.Created)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, domainerrors.ErrHolidayNoticePeriod.ErrorCode(), result.Errors[0].Code)
	assert.Equal(t, domainerrors.ErrHolidayAlreadyExists.ErrorCode(), result.Errors[1].Code)
}

func TestHolidayService_CreateHolidays_SingleDateFailureIsReturned(t *testing.T) {
	fx := createTestHolidayService(t)

	_, err := fx.service.CreateHolidays(context.Background(), uuid.New(), usecase.CreateHolidayInput{
		Dates: []time.Time{day(0)},
	})
	assert.ErrorIs(t, err, domainerrors.ErrHolidayNoticePeriod)
}

func TestHolidayService_ListMonth_InvalidMonth(t *testing.T) {
	fx := createTestHolidayService(t)

	_, err := fx.service.ListMonth(context.Background(), uuid.New(), 2025, time.Month(13))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestHolidayService_ListMonth_SetsStatus(t *testing.T) {
	fx := createTestHolidayService(t)

	ctx := context.Background()
	studentID := uuid.New()
	from := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	holidays := []*entity.Holiday{
		{ID: uuid.New(), StudentID: studentID, Date: day(-2)},
		{ID: uuid.New(), StudentID: studentID, Date: day(0)},
		{ID: uuid.New(), StudentID: studentID, Date: day(5)},
	}

	fx.holidayRepo.EXPECT().FindHolidaysByStudent(ctx, studentID, from, to).Return(holidays, nil)

	got, err := fx.service.ListMonth(ctx, studentID, 2025, time.March)
	require.NoError(t, err)
	assert.Equal(t, entity.HolidayCompleted, got[0].Status)
	assert.Equal(t, entity.HolidayActive, got[1].Status)
	assert.Equal(t, entity.HolidayScheduled, got[2].Status)
}

func TestHolidayService_UpdateHoliday_OtherStudent(t *testing.T) {
	fx := createTestHolidayService(t)

	ctx := context.Background()
	holiday := &entity.Holiday{ID: uuid.New(), StudentID: uuid.New(), Date: day(5)}

	fx.holidayRepo.EXPECT().FindHolidayByID(ctx, holiday.ID).Return(holiday, nil)

	_, err := fx.service.UpdateHoliday(ctx, uuid.New(), holiday.ID, usecase.UpdateHolidayInput{})
	assert.ErrorIs(t, err, domainerrors.ErrHolidayNotFound)
}

func TestHolidayService_UpdateHoliday_NewDate(t *testing.T) {
	fx := createTestHolidayService(t)

	ctx := context.Background()
	studentID := uuid.New()
	holiday := &entity.Holiday{ID: uuid.New(), StudentID: studentID, Date: day(5), ServiceType: entity.ServiceBoth}
	newDate := day(6)
	lunch := entity.ServiceLunch

	fx.holidayRepo.EXPECT().FindHolidayByID(ctx, holiday.ID).Return(holiday, nil)
	fx.holidayRepo.EXPECT().FindHolidaysOnDate(ctx, studentID, newDate).Return(nil, nil)
	fx.holidayRepo.EXPECT().UpdateHoliday(ctx, holiday).Return(nil)

	updated, err := fx.service.UpdateHoliday(ctx, studentID, holiday.ID, usecase.UpdateHolidayInput{
		Date:        &newDate,
		ServiceType: &lunch,
	})
	require.NoError(t, err)
	assert.Equal(t, newDate, updated.Date)
	assert.Equal(t, entity.ServiceLunch, updated.ServiceType)
	assert.Equal(t, entity.HolidayScheduled, updated.Status)
}

func TestHolidayService_DeleteHoliday_TooLate(t *testing.T) {
	fx := createTestHolidayService(t)

	ctx := context.Background()
	studentID := uuid.New()
	holiday := &entity.Holiday{ID: uuid.New(), StudentID: studentID, Date: day(1)}

	fx.holidayRepo.EXPECT().FindHolidayByID(ctx, holiday.ID).Return(holiday, nil)

	err := fx.service.DeleteHoliday(ctx, studentID, holiday.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrHolidayNoticePeriod)
	assert.Contains(t, err.Error(), "Cannot cancel")
}

func TestHolidayService_DeleteHoliday_Success(t *testing.T) {
	fx := createTestHolidayService(t)

	ctx := context.Background()
	studentID := uuid.New()
	holiday := &entity.Holiday{ID: uuid.New(), StudentID: studentID, Date: day(3)}

	fx.holidayRepo.EXPECT().FindHolidayByID(ctx, holiday.ID).Return(holiday, nil)
	fx.holidayRepo.EXPECT().DeleteHoliday(ctx, holiday.ID).Return(nil)

	require.NoError(t, fx.service.DeleteHoliday(ctx, studentID, holiday.ID))
}

type vendorHolidayServiceFixtures struct {
	service      usecase.VendorHolidayUsecase
	holidayRepo  *mockRepo.MockVendorHolidayRepository
	customerRepo *mockRepo.MockCustomerRepository
	publisher    *mockSvc.MockEventPublisher
}

func createTestVendorHolidayService(t *testing.T) vendorHolidayServiceFixtures {
	fx := vendorHolidayServiceFixtures{
		holidayRepo:  mockRepo.NewMockVendorHolidayRepository(t),
		customerRepo: mockRepo.NewMockCustomerRepository(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}
	fx.service = NewVendorHolidayService(VendorHolidayServiceParams{
		VendorHolidayRepo: fx.holidayRepo,
		CustomerRepo:      fx.customerRepo,
		Publisher:         fx.publisher,
	})

	return fx
}

func TestVendorHolidayService_Create_NotifiesStudents(t *testing.T) {
	fx := createTestVendorHolidayService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	studentID := uuid.New()
	customers := []*entity.Customer{
		{ID: uuid.New(), VendorID: vendorID, StudentID: &studentID},
		{ID: uuid.New(), VendorID: vendorID, Name: "walk-in"},
	}

	fx.holidayRepo.EXPECT().
		CreateVendorHoliday(ctx, mock.MatchedBy(func(h *entity.VendorHoliday) bool {
			return h.Type == entity.VendorHolidayAllDay
		})).
		Return(nil)
	fx.customerRepo.EXPECT().FindAllCustomers(ctx, vendorID).Return(customers, nil)
	fx.publisher.EXPECT().
		PublishEvent(ctx, mock.MatchedBy(func(e *service.DomainEvent) bool {
			return e.RecipientID == studentID.String()
		})).
		Return(nil).
		Once()

	holiday, err := fx.service.CreateVendorHoliday(ctx, vendorID, usecase.CreateVendorHolidayInput{
		Date:        day(2).Add(15 * time.Hour),
		Description: "Diwali",
	})
	require.NoError(t, err)
	assert.Equal(t, day(2), holiday.Date)
}

func TestVendorHolidayService_Create_InvalidType(t *testing.T) {
	fx := createTestVendorHolidayService(t)

	_, err := fx.service.CreateVendorHoliday(context.Background(), uuid.New(), usecase.CreateVendorHolidayInput{
		Date: day(2),
		Type: "Morning",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestVendorHolidayService_Create_Duplicate(t *testing.T) {
	fx := createTestVendorHolidayService(t)

	ctx := context.Background()

	fx.holidayRepo.EXPECT().CreateVendorHoliday(ctx, mock.Anything).Return(repository.ErrDuplicateVendorHoliday)

	_, err := fx.service.CreateVendorHoliday(ctx, uuid.New(), usecase.CreateVendorHolidayInput{Date: day(2)})
	assert.ErrorIs(t, err, domainerrors.ErrHolidayAlreadyExists)
}

func TestVendorHolidayService_CheckHoliday_Recurring(t *testing.T) {
	fx := createTestVendorHolidayService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	weekly := &entity.VendorHoliday{
		ID:        uuid.New(),
		VendorID:  vendorID,
		Date:      day(-7),
		Type:      entity.VendorHolidayNight,
		Recurring: entity.Recurrence{IsRecurring: true, Frequency: entity.RecurWeekly},
	}

	fx.holidayRepo.EXPECT().FindVendorHolidaysUntil(ctx, vendorID, day(7)).Return([]*entity.VendorHoliday{weekly}, nil)
	fx.holidayRepo.EXPECT().FindVendorHolidaysUntil(ctx, vendorID, day(8)).Return([]*entity.VendorHoliday{weekly}, nil)

	check, err := fx.service.CheckHoliday(ctx, vendorID, day(7))
	require.NoError(t, err)
	assert.True(t, check.IsHoliday)
	assert.Equal(t, weekly, check.Holiday)

	check, err = fx.service.CheckHoliday(ctx, vendorID, day(8))
	require.NoError(t, err)
	assert.False(t, check.IsHoliday)
	assert.Nil(t, check.Holiday)
}

func TestVendorHolidayService_Delete_OtherVendor(t *testing.T) {
	fx := createTestVendorHolidayService(t)

	ctx := context.Background()
	holiday := &entity.VendorHoliday{ID: uuid.New(), VendorID: uuid.New(), Date: day(2)}

	fx.holidayRepo.EXPECT().FindVendorHolidayByID(ctx, holiday.ID).Return(holiday, nil)

	err := fx.service.DeleteVendorHoliday(ctx, uuid.New(), holiday.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestVendorHolidayService_ListVendorHolidays(t *testing.T) {
	fx := createTestVendorHolidayService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	holidays := []*entity.VendorHoliday{
		{ID: uuid.New(), VendorID: vendorID, Date: day(2), Type: entity.VendorHolidayAfternoon},
	}

	fx.holidayRepo.EXPECT().FindVendorHolidays(ctx, vendorID).Return(holidays, nil)

	calendar, err := fx.service.ListVendorHolidays(ctx, vendorID)
	require.NoError(t, err)
	require.Len(t, calendar.Events, 1)
	assert.Equal(t, "Afternoon Holiday", calendar.Events[0].Title)
	assert.Equal(t, "#f59e0b", calendar.Events[0].BackgroundColor)
	assert.True(t, calendar.Events[0].AllDay)
}

func TestVendorHolidayService_Update_NotOwner(t *testing.T) {
	fx := createTestVendorHolidayService(t)

	ctx := context.Background()
	holiday := &entity.VendorHoliday{ID: uuid.New(), VendorID: uuid.New()}

	fx.holidayRepo.EXPECT().FindVendorHolidayByID(ctx, holiday.ID).Return(holiday, nil)

	_, err := fx.service.UpdateVendorHoliday(ctx, uuid.New(), holiday.ID, usecase.UpdateVendorHolidayInput{})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestVendorHolidayService_Delete_NotFound(t *testing.T) {
	fx := createTestVendorHolidayService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.holidayRepo.EXPECT().
		FindVendorHolidayByID(ctx, id).
		Return(nil, errors.WithStack(repository.ErrVendorHolidayNotFound))

	err := fx.service.DeleteVendorHoliday(ctx, uuid.New(), id)
	assert.ErrorIs(t, err, domainerrors.ErrHolidayNotFound)
}
