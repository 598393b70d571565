package impl

import (
	"context"
	"log/slog"
	"time"

	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/domain/repository"
	"tiffin/internal/errors"
	"tiffin/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type studentService struct {
	studentRepo      repository.StudentRepository
	subscriptionRepo repository.SubscriptionRepository
	holidayRepo      repository.HolidayRepository
	notificationRepo repository.NotificationRepository
	orderRepo        repository.OrderRepository
	logger           *slog.Logger
	now              func() time.Time
}

// StudentServiceParams holds dependencies for StudentService, injected by Fx.
type StudentServiceParams struct {
	fx.In

	StudentRepo      repository.StudentRepository
	SubscriptionRepo repository.SubscriptionRepository
	HolidayRepo      repository.HolidayRepository
	NotificationRepo repository.NotificationRepository
	OrderRepo        repository.OrderRepository
	Logger           *slog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(params StudentServiceParams) usecase.StudentUsecase {
	return &studentService{
		studentRepo:      params.StudentRepo,
		subscriptionRepo: params.SubscriptionRepo,
		holidayRepo:      params.HolidayRepo,
		notificationRepo: params.NotificationRepo,
		orderRepo:        params.OrderRepo,
		logger:           loggerOrDefault(params.Logger),
		now:              systemClock,
	}
}

func (s *studentService) GetProfile(ctx context.Context, studentID uuid.UUID) (*entity.Student, error) {
	student, err := s.studentRepo.FindStudentByID(ctx, studentID)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrStudentNotFound, domainerrors.ErrStudentNotFound, "failed to find student")
	}

	return student, nil
}

// GetDashboard collects the counters shown on the student home page.
func (s *studentService) GetDashboard(ctx context.Context, studentID uuid.UUID) (*usecase.StudentDashboard, error) {
	student, err := s.GetProfile(ctx, studentID)
	if err != nil {
		return nil, err
	}

	now := s.now()

	active, err := s.subscriptionRepo.CountActiveByStudent(ctx, studentID, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count active subscriptions")
	}

	holidays, err := s.holidayRepo.FindHolidaysByStudent(ctx, studentID, entity.DateOnly(now), time.Time{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find upcoming holidays")
	}
	if len(holidays) > usecase.UpcomingHolidayLimit {
		holidays = holidays[:usecase.UpcomingHolidayLimit]
	}
	for _, h := range holidays {
		h.Status = h.EffectiveStatus(now)
	}

	stats, err := s.notificationRepo.GetStats(ctx, studentID, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get notification stats")
	}

	from, to := entity.DayRange(now)
	orders, err := s.orderRepo.FindOrders(ctx, repository.OrderFilter{StudentID: studentID, From: from, To: to})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find today's orders")
	}

	return &usecase.StudentDashboard{
		Student:             student,
		ActiveSubscriptions: active,
		UpcomingHolidays:    holidays,
		UnreadNotifications: stats.Unread,
		TodayOrders:         orders,
	}, nil
}

// UpdateSettings merges the provided toggles into the stored settings.
func (s *studentService) UpdateSettings(ctx context.Context, studentID uuid.UUID, input usecase.UpdateSettingsInput) (*entity.StudentSettings, error) {
	student, err := s.GetProfile(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if n := input.Notifications; n != nil {
		settings := &student.Settings.Notifications
		setBool(&settings.Email, n.Email)
		setBool(&settings.Push, n.Push)
		setBool(&settings.SMS, n.SMS)
		setBool(&settings.OrderUpdates, n.OrderUpdates)
		setBool(&settings.Promotions, n.Promotions)
	}

	if p := input.Privacy; p != nil {
		setBool(&student.Settings.Privacy.ShareProfile, p.ShareProfile)
		setBool(&student.Settings.Privacy.ShowActivity, p.ShowActivity)
	}

	if err := s.studentRepo.UpdateStudent(ctx, student); err != nil {
		return nil, errors.Wrap(err, "failed to update student settings")
	}

	return &student.Settings, nil
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
