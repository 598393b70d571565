package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"tiffin/config"
	deliverycontext "tiffin/internal/delivery/context"
	"tiffin/internal/domain/constants"
	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/domain/repository"
	"tiffin/internal/domain/service"
	"tiffin/internal/errors"
	"tiffin/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type announcementService struct {
	announcementRepo repository.AnnouncementRepository
	customerRepo     repository.CustomerRepository
	config           *config.Config
	events           eventPublisher
	logger           *slog.Logger
	now              func() time.Time
}

// AnnouncementServiceParams holds dependencies for AnnouncementService, injected by Fx.
type AnnouncementServiceParams struct {
	fx.In

	AnnouncementRepo repository.AnnouncementRepository
	CustomerRepo     repository.CustomerRepository
	Publisher        service.EventPublisher
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAnnouncementService creates a new announcement service instance
func NewAnnouncementService(params AnnouncementServiceParams) usecase.AnnouncementUsecase {
	logger := loggerOrDefault(params.Logger)

	return &announcementService{
		announcementRepo: params.AnnouncementRepo,
		customerRepo:     params.CustomerRepo,
		config:           params.Config,
		events:           eventPublisher{publisher: params.Publisher, logger: logger},
		logger:           logger,
		now:              systemClock,
	}
}

func (s *announcementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *announcementService) CreateAnnouncement(ctx context.Context, vendorID uuid.UUID, input usecase.CreateAnnouncementInput) (*entity.Announcement, error) {
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)

	verr := domainerrors.NewValidationError("")
	if title == "" {
		verr.Add("title", "is required")
	}
	if content == "" {
		verr.Add("content", "is required")
	}
	if len(verr.Fields()) > 0 {
		return nil, verr
	}

	announcement := entity.NewAnnouncement(vendorID, title, content, input.TargetAudience, input.ScheduleDate, s.now())

	if err := s.announcementRepo.CreateAnnouncement(ctx, announcement); err != nil {
		return nil, errors.Wrap(err, "failed to create announcement")
	}

	s.log(ctx).Info("Announcement created",
		slog.Any("announcementID", announcement.ID),
		slog.String("status", string(announcement.Status)),
	)

	if announcement.Status == entity.AnnouncementSent {
		s.deliver(ctx, announcement)
	}

	return announcement, nil
}

func (s *announcementService) ListAnnouncements(ctx context.Context, vendorID uuid.UUID, status entity.AnnouncementStatus, page entity.PageQuery) (*usecase.AnnouncementList, error) {
	page = normalizePage(page, s.config, constants.DefaultPageLimit)

	announcements, total, err := s.announcementRepo.ListAnnouncements(ctx, vendorID, status, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list announcements")
	}

	return &usecase.AnnouncementList{
		Announcements: announcements,
		Pagination:    entity.NewPagination(page, total),
	}, nil
}

func (s *announcementService) GetStats(ctx context.Context, vendorID uuid.UUID) (*repository.AnnouncementStats, error) {
	from, to := entity.MonthRange(s.now())

	stats, err := s.announcementRepo.GetStats(ctx, vendorID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get announcement stats")
	}

	return stats, nil
}

// UpdateAnnouncement edits an announcement. Switching it to sent delivers it once.
func (s *announcementService) UpdateAnnouncement(ctx context.Context, vendorID, announcementID uuid.UUID, input usecase.UpdateAnnouncementInput) (*entity.Announcement, error) {
	announcement, err := s.loadOwned(ctx, vendorID, announcementID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		announcement.Title = strings.TrimSpace(*input.Title)
	}
	if input.Content != nil {
		announcement.Content = strings.TrimSpace(*input.Content)
	}
	if input.TargetAudience != nil {
		announcement.TargetAudience = *input.TargetAudience
	}
	if input.ScheduleDate != nil {
		announcement.ScheduleDate = input.ScheduleDate
	}

	deliver := false
	if input.Status != nil {
		switch *input.Status {
		case entity.AnnouncementSent:
			deliver = announcement.MarkSent(s.now())
		case entity.AnnouncementDraft, entity.AnnouncementScheduled:
			announcement.Status = *input.Status
		default:
			return nil, domainerrors.NewValidationError("", domainerrors.FieldError{Field: "status", Message: "must be draft, scheduled or sent"})
		}
	}

	if err := s.announcementRepo.UpdateAnnouncement(ctx, announcement); err != nil {
		return nil, mapNotFound(err, repository.ErrAnnouncementNotFound, domainerrors.ErrAnnouncementNotFound, "failed to update announcement")
	}

	if deliver {
		s.deliver(ctx, announcement)
	}

	return announcement, nil
}

func (s *announcementService) DeleteAnnouncement(ctx context.Context, vendorID, announcementID uuid.UUID) error {
	announcement, err := s.loadOwned(ctx, vendorID, announcementID)
	if err != nil {
		return err
	}

	if err := s.announcementRepo.DeleteAnnouncement(ctx, announcement.ID); err != nil {
		return mapNotFound(err, repository.ErrAnnouncementNotFound, domainerrors.ErrAnnouncementNotFound, "failed to delete announcement")
	}

	return nil
}

// DeliverDueAnnouncements sends scheduled announcements whose date has passed.
func (s *announcementService) DeliverDueAnnouncements(ctx context.Context) (int, error) {
	now := s.now()

	due, err := s.announcementRepo.FindDueAnnouncements(ctx, now, sweepBatchSize(s.config))
	if err != nil {
		return 0, errors.Wrap(err, "failed to find due announcements")
	}

	delivered := 0
	for _, a := range due {
		if !a.MarkSent(now) {
			continue
		}

		if err := s.announcementRepo.UpdateAnnouncement(ctx, a); err != nil {
			s.log(ctx).Warn("Failed to mark announcement sent", slog.Any("announcementID", a.ID), slog.Any("error", err))

			continue
		}

		s.deliver(ctx, a)
		delivered++
	}

	return delivered, nil
}

// deliver publishes one event per targeted customer that has a student account.
func (s *announcementService) deliver(ctx context.Context, announcement *entity.Announcement) {
	customers, err := s.customerRepo.FindAllCustomers(ctx, announcement.VendorID)
	if err != nil {
		s.log(ctx).Warn("Failed to load announcement audience",
			slog.Any("announcementID", announcement.ID),
			slog.Any("error", err),
		)

		return
	}

	recipients := 0
	for _, c := range customers {
		if c.StudentID == nil || !announcement.TargetAudience.Includes(c) {
			continue
		}

		event := newEvent(service.EventAnnouncementSent,
			entity.Principal{ID: *c.StudentID, Role: entity.RoleStudent},
			entity.NotifyVendor,
			announcement.Title,
			announcement.Content,
		)
		event.Data["announcement_id"] = announcement.ID.String()
		event.Data["vendor_id"] = announcement.VendorID.String()
		s.events.publish(ctx, event)
		recipients++
	}

	s.log(ctx).Info("Announcement delivered",
		slog.Any("announcementID", announcement.ID),
		slog.Int("recipients", recipients),
	)
}

func (s *announcementService) loadOwned(ctx context.Context, vendorID, announcementID uuid.UUID) (*entity.Announcement, error) {
	announcement, err := s.announcementRepo.FindAnnouncementByID(ctx, announcementID)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrAnnouncementNotFound, domainerrors.ErrAnnouncementNotFound, "failed to find announcement")
	}

	if announcement.VendorID != vendorID {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	return announcement, nil
}
