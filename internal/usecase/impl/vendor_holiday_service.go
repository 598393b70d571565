package impl

import (
	"context"
	"log/slog"
	"time"

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

type vendorHolidayService struct {
	holidayRepo  repository.VendorHolidayRepository
	customerRepo repository.CustomerRepository
	events       eventPublisher
	logger       *slog.Logger
}

// VendorHolidayServiceParams holds dependencies for VendorHolidayService, injected by Fx.
type VendorHolidayServiceParams struct {
	fx.In

	VendorHolidayRepo repository.VendorHolidayRepository
	CustomerRepo      repository.CustomerRepository
	Publisher         service.EventPublisher
	Logger            *slog.Logger
}

func NewVendorHolidayService(params VendorHolidayServiceParams) usecase.VendorHolidayUsecase {
	logger := loggerOrDefault(params.Logger)

	return &vendorHolidayService{
		holidayRepo:  params.VendorHolidayRepo,
		customerRepo: params.CustomerRepo,
		events:       eventPublisher{publisher: params.Publisher, logger: logger},
		logger:       logger,
	}
}

func (s *vendorHolidayService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *vendorHolidayService) ListVendorHolidays(ctx context.Context, vendorID uuid.UUID) (*usecase.VendorHolidayCalendar, error) {
	holidays, err := s.holidayRepo.FindVendorHolidays(ctx, vendorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find vendor holidays")
	}

	events := make([]entity.CalendarEvent, 0, len(holidays))
	for _, h := range holidays {
		events = append(events, h.CalendarEvent())
	}

	return &usecase.VendorHolidayCalendar{Holidays: holidays, Events: events}, nil
}

// CheckHoliday reports the holiday covering date, including recurring ones.
func (s *vendorHolidayService) CheckHoliday(ctx context.Context, vendorID uuid.UUID, date time.Time) (*usecase.HolidayCheck, error) {
	holiday, err := findVendorHolidayOn(ctx, s.holidayRepo, vendorID, date)
	if err != nil {
		return nil, err
	}

	return &usecase.HolidayCheck{
		Date:      entity.FormatDate(date),
		IsHoliday: holiday != nil,
		Holiday:   holiday,
	}, nil
}

// findVendorHolidayOn returns the vendor holiday falling on date, or nil.
func findVendorHolidayOn(ctx context.Context, repo repository.VendorHolidayRepository, vendorID uuid.UUID, date time.Time) (*entity.VendorHoliday, error) {
	candidates, err := repo.FindVendorHolidaysUntil(ctx, vendorID, entity.DateOnly(date))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find vendor holidays")
	}

	for _, h := range candidates {
		if h.OccursOn(date) {
			return h, nil
		}
	}

	return nil, nil
}

func (s *vendorHolidayService) CreateVendorHoliday(ctx context.Context, vendorID uuid.UUID, input usecase.CreateVendorHolidayInput) (*entity.VendorHoliday, error) {
	if input.Date.IsZero() {
		return nil, errors.WithStack(domainerrors.ErrHolidayDateRequired)
	}

	holidayType := input.Type
	if holidayType == "" {
		holidayType = entity.VendorHolidayAllDay
	}
	if !holidayType.IsValid() {
		return nil, domainerrors.NewValidationError("", domainerrors.FieldError{Field: "type", Message: "must be one of All Day, Afternoon, Night"})
	}

	holiday := &entity.VendorHoliday{
		VendorID:    vendorID,
		Date:        entity.DateOnly(input.Date),
		Type:        holidayType,
		Description: input.Description,
	}
	if input.Recurring != nil {
		holiday.Recurring = *input.Recurring
	}

	if err := s.holidayRepo.CreateVendorHoliday(ctx, holiday); err != nil {
		if errors.Is(err, repository.ErrDuplicateVendorHoliday) {
			return nil, errors.WithStack(domainerrors.ErrHolidayAlreadyExists)
		}

		return nil, errors.Wrap(err, "failed to create vendor holiday")
	}

	s.log(ctx).Info("Vendor holiday created",
		slog.Any("vendorID", vendorID),
		slog.String("date", entity.FormatDate(holiday.Date)),
		slog.String("type", string(holiday.Type)),
	)

	s.notifySubscribers(ctx, holiday)

	return holiday, nil
}

// notifySubscribers tells every customer with a student account about the closure.
func (s *vendorHolidayService) notifySubscribers(ctx context.Context, holiday *entity.VendorHoliday) {
	customers, err := s.customerRepo.FindAllCustomers(ctx, holiday.VendorID)
	if err != nil {
		s.log(ctx).Warn("Failed to load customers for holiday notice", slog.Any("error", err))

		return
	}

	for _, c := range customers {
		if c.StudentID == nil {
			continue
		}

		event := newEvent(service.EventVendorHolidayCreated,
			entity.Principal{ID: *c.StudentID, Role: entity.RoleStudent},
			entity.NotifyHoliday,
			"Vendor holiday",
			"No deliveries on "+entity.FormatDate(holiday.Date)+" ("+string(holiday.Type)+")",
		)
		event.Data["vendor_holiday_id"] = holiday.ID.String()
		s.events.publish(ctx, event)
	}
}

func (s *vendorHolidayService) UpdateVendorHoliday(ctx context.Context, vendorID, holidayID uuid.UUID, input usecase.UpdateVendorHolidayInput) (*entity.VendorHoliday, error) {
	holiday, err := s.loadOwned(ctx, vendorID, holidayID)
	if err != nil {
		return nil, err
	}

	if input.Date != nil {
		holiday.Date = entity.DateOnly(*input.Date)
	}
	if input.Type != nil {
		if !input.Type.IsValid() {
			return nil, domainerrors.NewValidationError("", domainerrors.FieldError{Field: "type", Message: "must be one of All Day, Afternoon, Night"})
		}
		holiday.Type = *input.Type
	}
	if input.Description != nil {
		holiday.Description = *input.Description
	}
	if input.Recurring != nil {
		holiday.Recurring = *input.Recurring
	}

	if err := s.holidayRepo.UpdateVendorHoliday(ctx, holiday); err != nil {
		if errors.Is(err, repository.ErrDuplicateVendorHoliday) {
			return nil, errors.WithStack(domainerrors.ErrHolidayAlreadyExists)
		}

		return nil, mapNotFound(err, repository.ErrVendorHolidayNotFound, domainerrors.ErrHolidayNotFound, "failed to update vendor holiday")
	}

	return holiday, nil
}

func (s *vendorHolidayService) DeleteVendorHoliday(ctx context.Context, vendorID, holidayID uuid.UUID) error {
	holiday, err := s.loadOwned(ctx, vendorID, holidayID)
	if err != nil {
		return err
	}

	if err := s.holidayRepo.DeleteVendorHoliday(ctx, holiday.ID); err != nil {
		return mapNotFound(err, repository.ErrVendorHolidayNotFound, domainerrors.ErrHolidayNotFound, "failed to delete vendor holiday")
	}

	return nil
}

func (s *vendorHolidayService) loadOwned(ctx context.Context, vendorID, holidayID uuid.UUID) (*entity.VendorHoliday, error) {
	holiday, err := s.holidayRepo.FindVendorHolidayByID(ctx, holidayID)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrVendorHolidayNotFound, domainerrors.ErrHolidayNotFound, "failed to find vendor holiday")
	}

	if holiday.VendorID != vendorID {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	return holiday, nil
}
