package impl

import (
	"context"
	"log/slog"
	"time"

	"tiffin/config"
	deliverycontext "tiffin/internal/delivery/context"
	"tiffin/internal/domain/entity"
	"tiffin/internal/domain/repository"
	"tiffin/internal/domain/service"
	"tiffin/internal/errors"
	"tiffin/internal/usecase"

	"go.uber.org/fx"
)

type sweepService struct {
	subscriptionRepo repository.SubscriptionRepository
	announcements    usecase.AnnouncementUsecase
	config           *config.Config
	events           eventPublisher
	logger           *slog.Logger
	now              func() time.Time
}

// SweepServiceParams holds dependencies for SweepService, injected by Fx.
type SweepServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	Announcements    usecase.AnnouncementUsecase
	Publisher        service.EventPublisher
	Config           *config.Config
	Logger           *slog.Logger
}

// NewSweepService creates the worker's periodic maintenance job
func NewSweepService(params SweepServiceParams) usecase.SweepUsecase {
	logger := loggerOrDefault(params.Logger)

	return &sweepService{
		subscriptionRepo: params.SubscriptionRepo,
		announcements:    params.Announcements,
		config:           params.Config,
		events:           eventPublisher{publisher: params.Publisher, logger: logger},
		logger:           logger,
		now:              systemClock,
	}
}

func (s *sweepService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Sweep expires one batch of lapsed subscriptions and delivers due announcements.
// A version conflict means a student changed the subscription meanwhile; the next pass retries it.
func (s *sweepService) Sweep(ctx context.Context) (*usecase.SweepResult, error) {
	now := s.now()
	result := &usecase.SweepResult{}

	lapsed, err := s.subscriptionRepo.FindLapsedSubscriptions(ctx, now, sweepBatchSize(s.config))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find lapsed subscriptions")
	}

	for _, sub := range lapsed {
		if !sub.Expire(now) {
			continue
		}

		if err := s.subscriptionRepo.UpdateSubscriptionState(ctx, sub); err != nil {
			if errors.Is(err, repository.ErrSubscriptionVersionConflict) {
				result.Conflicts++

				continue
			}

			return result, errors.Wrap(err, "failed to expire subscription")
		}

		result.ExpiredSubscriptions++

		event := newEvent(service.EventSubscriptionExpired,
			entity.Principal{ID: sub.StudentID, Role: entity.RoleStudent},
			entity.NotifySubscription,
			"Subscription ended",
			"Your subscription ended on "+entity.FormatDate(sub.EndDate)+". Renew to keep your meals coming.",
		)
		event.Data["subscription_id"] = sub.ID.String()
		event.Data["vendor_id"] = sub.VendorID.String()
		s.events.publish(ctx, event)
	}

	if s.announcements != nil {
		delivered, err := s.announcements.DeliverDueAnnouncements(ctx)
		if err != nil {
			return result, errors.Wrap(err, "failed to deliver due announcements")
		}
		result.DeliveredAnnouncements = delivered
	}

	if result.ExpiredSubscriptions > 0 || result.Conflicts > 0 || result.DeliveredAnnouncements > 0 {
		s.log(ctx).Info("Sweep finished",
			slog.Int("expired", result.ExpiredSubscriptions),
			slog.Int("conflicts", result.Conflicts),
			slog.Int("announcements", result.DeliveredAnnouncements),
		)
	}

	return result, nil
}
