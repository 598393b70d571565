package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"tiffin/config"
	deliverycontext "tiffin/internal/delivery/context"
	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/domain/repository"
	"tiffin/internal/domain/service"
	"tiffin/internal/errors"
	"tiffin/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type holidayService struct {
	holidayRepo repository.HolidayRepository
	notice      time.Duration
	events      eventPublisher
	logger      *slog.Logger
	now         func() time.Time
}

// HolidayServiceParams holds dependencies for HolidayService, injected by Fx.
type HolidayServiceParams struct {
	fx.In

	HolidayRepo repository.HolidayRepository
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewHolidayService creates a new holiday service instance
func NewHolidayService(params HolidayServiceParams) usecase.HolidayUsecase {
	var holidayCfg *config.HolidayConfig
	if params.Config != nil {
		holidayCfg = params.Config.Holiday
	}

	logger := loggerOrDefault(params.Logger)

	return &holidayService{
		holidayRepo: params.HolidayRepo,
		notice:      holidayCfg.Notice(),
		events:      eventPublisher{publisher: params.Publisher, logger: logger},
		logger:      logger,
		now:         systemClock,
	}
}

func (s *holidayService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListHolidays returns all of the student's holidays, date ascending.
func (s *holidayService) ListHolidays(ctx context.Context, studentID uuid.UUID) ([]*entity.Holiday, error) {
	holidays, err := s.holidayRepo.FindHolidaysByStudent(ctx, studentID, time.Time{}, time.Time{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find holidays by student")
	}

	return s.withStatus(holidays), nil
}

// ListMonth returns the student's holidays within one calendar month.
func (s *holidayService) ListMonth(ctx context.Context, studentID uuid.UUID, year int, month time.Month) ([]*entity.Holiday, error) {
	if month < time.January || month > time.December {
		return nil, domainerrors.NewValidationError("", domainerrors.FieldError{Field: "month", Message: "must be between 1 and 12"})
	}

	if year < 1970 || year > 9999 {
		return nil, domainerrors.NewValidationError("", domainerrors.FieldError{Field: "year", Message: "is out of range"})
	}

	from, to := entity.MonthRange(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))

	holidays, err := s.holidayRepo.FindHolidaysByStudent(ctx, studentID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find holidays by month")
	}

	return s.withStatus(holidays), nil
}

func (s *holidayService) withStatus(holidays []*entity.Holiday) []*entity.Holiday {
	now := s.now()
	for _, h := range holidays {
		h.Status = h.EffectiveStatus(now)
	}

	return holidays
}

// CreateHolidays schedules one holiday per date. Each date is validated on its own,
// so some or all dates of a batch may fail and are reported in the result.
func (s *holidayService) CreateHolidays(ctx context.Context, studentID uuid.UUID, input usecase.CreateHolidayInput) (*usecase.HolidayBatchResult, error) {
	if len(input.Dates) == 0 {
		return nil, errors.WithStack(domainerrors.ErrHolidayDateRequired)
	}

	vendorID := input.VendorID
	if vendorID != nil && *vendorID == uuid.Nil {
		vendorID = nil
	}

	result := &usecase.HolidayBatchResult{Created: []*entity.Holiday{}}
	var lastErr error

	for _, date := range input.Dates {
		holiday := entity.NewHoliday(studentID, vendorID, date, input.ServiceType, input.Reason)

		if err := s.createOne(ctx, holiday); err != nil {
			lastErr = err
			result.Errors = append(result.Errors, holidayDateError(holiday.Date, err))

			continue
		}

		result.Created = append(result.Created, holiday)
	}

	if len(result.Created) == 0 && len(input.Dates) == 1 {
		return nil, lastErr
	}

	s.log(ctx).Info("Holidays scheduled",
		slog.Int("created", len(result.Created)),
		slog.Int("failed", len(result.Errors)),
	)

	if vendorID != nil && len(result.Created) > 0 {
		event := newEvent(service.EventHolidayScheduled,
			entity.Principal{ID: *vendorID, Role: entity.RoleVendor},
			entity.NotifyHoliday,
			"Student holiday scheduled",
			"A subscriber will skip deliveries on "+joinDates(result.Created),
		)
		event.Data["student_id"] = studentID.String()
		s.events.publish(ctx, event)
	}

	return result, nil
}

func (s *holidayService) createOne(ctx context.Context, holiday *entity.Holiday) error {
	if err := entity.CheckHolidayNotice(holiday.Date, s.now(), s.notice); err != nil {
		return errors.WithStack(err)
	}

	if err := s.checkConflicts(ctx, holiday); err != nil {
		return err
	}

	if err := s.holidayRepo.CreateHoliday(ctx, holiday); err != nil {
		if errors.Is(err, repository.ErrDuplicateHoliday) {
			return errors.WithStack(domainerrors.ErrHolidayAlreadyExists)
		}

		return errors.Wrap(err, "failed to create holiday")
	}

	return nil
}

func (s *holidayService) checkConflicts(ctx context.Context, holiday *entity.Holiday) error {
	existing, err := s.holidayRepo.FindHolidaysOnDate(ctx, holiday.StudentID, holiday.Date)
	if err != nil {
		return errors.Wrap(err, "failed to find holidays on date")
	}

	for _, other := range existing {
		if holiday.ConflictsWith(other) {
			return errors.WithStack(domainerrors.ErrHolidayAlreadyExists)
		}
	}

	return nil
}

// UpdateHoliday changes date, service or reason. A new date obeys the create rules.
func (s *holidayService) UpdateHoliday(ctx context.Context, studentID, holidayID uuid.UUID, input usecase.UpdateHolidayInput) (*entity.Holiday, error) {
	holiday, err := s.loadOwned(ctx, studentID, holidayID)
	if err != nil {
		return nil, err
	}

	if input.Date != nil && !entity.SameDay(*input.Date, holiday.Date) {
		holiday.Date = entity.DateOnly(*input.Date)

		if err := entity.CheckHolidayNotice(holiday.Date, s.now(), s.notice); err != nil {
			return nil, errors.WithStack(err)
		}

		if err := s.checkConflicts(ctx, holiday); err != nil {
			return nil, err
		}
	}

	if input.ServiceType != nil {
		holiday.ServiceType = *input.ServiceType
	}
	if input.Reason != nil {
		holiday.Reason = *input.Reason
	}

	if err := s.holidayRepo.UpdateHoliday(ctx, holiday); err != nil {
		if errors.Is(err, repository.ErrDuplicateHoliday) {
			return nil, errors.WithStack(domainerrors.ErrHolidayAlreadyExists)
		}

		return nil, errors.Wrap(err, "failed to update holiday")
	}

	holiday.Status = holiday.EffectiveStatus(s.now())

	return holiday, nil
}

// DeleteHoliday cancels a holiday that is still far enough away.
func (s *holidayService) DeleteHoliday(ctx context.Context, studentID, holidayID uuid.UUID) error {
	holiday, err := s.loadOwned(ctx, studentID, holidayID)
	if err != nil {
		return err
	}

	if err := entity.CheckHolidayNotice(holiday.Date, s.now(), s.notice); err != nil {
		return errors.WithStack(domainerrors.ErrHolidayNoticePeriod.WithMessage(
			fmt.Sprintf("Cannot cancel a holiday less than %d hours before it starts", int(s.notice.Hours()))))
	}

	if err := s.holidayRepo.DeleteHoliday(ctx, holiday.ID); err != nil {
		return mapNotFound(err, repository.ErrHolidayNotFound, domainerrors.ErrHolidayNotFound, "failed to delete holiday")
	}

	return nil
}

// loadOwned hides other students' holidays behind a not-found error.
func (s *holidayService) loadOwned(ctx context.Context, studentID, holidayID uuid.UUID) (*entity.Holiday, error) {
	holiday, err := s.holidayRepo.FindHolidayByID(ctx, holidayID)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrHolidayNotFound, domainerrors.ErrHolidayNotFound, "failed to find holiday")
	}

	if holiday.StudentID != studentID {
		return nil, errors.WithStack(domainerrors.ErrHolidayNotFound)
	}

	return holiday, nil
}

func holidayDateError(date time.Time, err error) usecase.HolidayDateError {
	out := usecase.HolidayDateError{
		Date:    entity.FormatDate(date),
		Code:    domainerrors.ErrInternalError.ErrorCode(),
		Message: domainerrors.ErrInternalError.Message(),
	}

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		out.Code = appErr.ErrorCode()
		out.Message = appErr.Message()
	}

	return out
}

func joinDates(holidays []*entity.Holiday) string {
	dates := make([]string, 0, len(holidays))
	for _, h := range holidays {
		dates = append(dates, entity.FormatDate(h.Date))
	}

	return strings.Join(dates, ", ")
}
