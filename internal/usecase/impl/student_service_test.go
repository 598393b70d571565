package impl

import (
	"context"
	"testing"
	"time"

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

type studentServiceFixtures struct {
	service          *studentService
	studentRepo      *mockRepo.MockStudentRepository
	subRepo          *mockRepo.MockSubscriptionRepository
	holidayRepo      *mockRepo.MockHolidayRepository
	notificationRepo *mockRepo.MockNotificationRepository
	orderRepo        *mockRepo.MockOrderRepository
}

func createTestStudentService(t *testing.T) studentServiceFixtures {
	fx := studentServiceFixtures{
		studentRepo:      mockRepo.NewMockStudentRepository(t),
		subRepo:          mockRepo.NewMockSubscriptionRepository(t),
		holidayRepo:      mockRepo.NewMockHolidayRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		orderRepo:        mockRepo.NewMockOrderRepository(t),
	}

	fx.service = NewStudentService(StudentServiceParams{
		StudentRepo:      fx.studentRepo,
		SubscriptionRepo: fx.subRepo,
		HolidayRepo:      fx.holidayRepo,
		NotificationRepo: fx.notificationRepo,
		OrderRepo:        fx.orderRepo,
	}).(*studentService)
	fx.service.now = fixedClock

	return fx
}

func testStudent() *entity.Student {
	return &entity.Student{
		ID:          uuid.New(),
		FirstName:   "Asha",
		LastName:    "Rao",
		Email:       "asha@example.com",
		Phone:       "9876543210",
		Preferences: entity.DefaultStudentPreferences(),
		Settings:    entity.DefaultStudentSettings(),
		IsActive:    true,
	}
}

func TestStudentService_GetProfile_NotFound(t *testing.T) {
	fx := createTestStudentService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.studentRepo.EXPECT().FindStudentByID(ctx, id).Return(nil, errors.WithStack(repository.ErrStudentNotFound))

	_, err := fx.service.GetProfile(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrStudentNotFound)
}

func TestStudentService_GetDashboard(t *testing.T) {
	fx := createTestStudentService(t)

	ctx := context.Background()
	student := testStudent()
	dayStart, dayEnd := entity.DayRange(testNow)

	holidays := make([]*entity.Holiday, 0, usecase.UpcomingHolidayLimit+2)
	for i := range usecase.UpcomingHolidayLimit + 2 {
		holidays = append(holidays, entity.NewHoliday(student.ID, nil, day(i), entity.ServiceBoth, ""))
	}
	orders := []*entity.Order{testOrder(uuid.New(), entity.OrderPending)}

	fx.studentRepo.EXPECT().FindStudentByID(ctx, student.ID).Return(student, nil)
	fx.subRepo.EXPECT().CountActiveByStudent(ctx, student.ID, testNow).Return(int64(2), nil)
	fx.holidayRepo.EXPECT().
		FindHolidaysByStudent(ctx, student.ID, entity.DateOnly(testNow), time.Time{}).
		Return(holidays, nil)
	fx.notificationRepo.EXPECT().GetStats(ctx, student.ID, testNow).Return(&entity.NotificationStats{Total: 9, Unread: 4, Read: 5}, nil)
	fx.orderRepo.EXPECT().
		FindOrders(ctx, repository.OrderFilter{StudentID: student.ID, From: dayStart, To: dayEnd}).
		Return(orders, nil)

	dashboard, err := fx.service.GetDashboard(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), dashboard.ActiveSubscriptions)
	assert.Equal(t, int64(4), dashboard.UnreadNotifications)
	require.Len(t, dashboard.UpcomingHolidays, usecase.UpcomingHolidayLimit)
	assert.Equal(t, entity.HolidayActive, dashboard.UpcomingHolidays[0].Status)
	assert.Equal(t, entity.HolidayScheduled, dashboard.UpcomingHolidays[1].Status)
	assert.Equal(t, orders, dashboard.TodayOrders)
}

func TestStudentService_UpdateSettings_MergesToggles(t *testing.T) {
	fx := createTestStudentService(t)

	ctx := context.Background()
	student := testStudent()
	on, off := true, false

	fx.studentRepo.EXPECT().FindStudentByID(ctx, student.ID).Return(student, nil)
	fx.studentRepo.EXPECT().UpdateStudent(ctx, student).Return(nil)

	settings, err := fx.service.UpdateSettings(ctx, student.ID, usecase.UpdateSettingsInput{
		Notifications: &usecase.NotificationSettingsPatch{SMS: &on, Email: &off},
		Privacy:       &usecase.PrivacySettingsPatch{ShowActivity: &on},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StudentSettings{
		Notifications: entity.NotificationSettings{
			Email:        false,
			Push:         true,
			SMS:          true,
			OrderUpdates: true,
		},
		Privacy: entity.PrivacySettings{ShareProfile: true, ShowActivity: true},
	}, *settings)
}
