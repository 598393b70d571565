package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

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

type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	vendorRepo       repository.VendorRepository
	events           eventPublisher
	logger           *slog.Logger
	now              func() time.Time
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	VendorRepo       repository.VendorRepository
	Publisher        service.EventPublisher
	Logger           *slog.Logger
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	logger := loggerOrDefault(params.Logger)

	return &subscriptionService{
		subscriptionRepo: params.SubscriptionRepo,
		vendorRepo:       params.VendorRepo,
		events:           eventPublisher{publisher: params.Publisher, logger: logger},
		logger:           logger,
		now:              systemClock,
	}
}

func (s *subscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// loadSubscribableVendor returns the vendor if students may subscribe to it.
func loadSubscribableVendor(ctx context.Context, vendorRepo repository.VendorRepository, vendorID uuid.UUID) (*entity.Vendor, error) {
	vendor, err := vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrVendorNotFound, domainerrors.ErrVendorNotFound, "failed to find vendor")
	}

	if !vendor.IsListed() || !vendor.IsActive {
		return nil, errors.WithStack(domainerrors.ErrVendorNotFound)
	}

	return vendor, nil
}

// validateSubscriptionTerms checks duration and start date against the vendor's rules.
// It returns the start date to use.
func validateSubscriptionTerms(vendor *entity.Vendor, durationDays int, startDate *time.Time, now time.Time) (time.Time, error) {
	if durationDays <= 0 {
		return time.Time{}, errors.WithStack(domainerrors.ErrInvalidDuration)
	}

	if durationDays > constants.MaxSubscriptionDays {
		return time.Time{}, errors.WithStack(domainerrors.ErrInvalidDuration.WithMessage(
			fmt.Sprintf("Maximum subscription duration is %d days", constants.MaxSubscriptionDays)))
	}

	if durationDays < vendor.MinDays() {
		return time.Time{}, errors.WithStack(domainerrors.ErrInvalidDuration.WithMessage(
			fmt.Sprintf("Minimum subscription duration is %d days", vendor.MinDays())))
	}

	start := entity.DateOnly(now)
	if startDate != nil {
		start = entity.DateOnly(*startDate)
		if start.Before(entity.DateOnly(now)) {
			return time.Time{}, errors.WithStack(domainerrors.ErrStartDateInPast)
		}
	}

	return start, nil
}

// CreateSubscription starts an active subscription priced from the vendor's monthly rate.
func (s *subscriptionService) CreateSubscription(ctx context.Context, studentID uuid.UUID, input usecase.CreateSubscriptionInput) (*usecase.SubscriptionView, error) {
	if input.VendorID == uuid.Nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidDuration)
	}

	vendor, err := loadSubscribableVendor(ctx, s.vendorRepo, input.VendorID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	start, err := validateSubscriptionTerms(vendor, input.DurationDays, input.StartDate, now)
	if err != nil {
		return nil, err
	}

	subscription := entity.NewSubscription(studentID, vendor, input.DurationDays, start)
	if err := s.subscriptionRepo.CreateSubscription(ctx, subscription); err != nil {
		return nil, errors.Wrap(err, "failed to create subscription")
	}

	s.log(ctx).Info("Subscription created",
		slog.Any("subscriptionID", subscription.ID),
		slog.Any("vendorID", vendor.ID),
		slog.Int("durationDays", subscription.DurationDays),
	)

	event := newEvent(service.EventSubscriptionCreated,
		entity.Principal{ID: vendor.ID, Role: entity.RoleVendor},
		entity.NotifySubscription,
		"New subscription",
		fmt.Sprintf("A student subscribed for %d days starting %s", subscription.DurationDays, entity.FormatDate(subscription.StartDate)),
	)
	event.Data["subscription_id"] = subscription.ID.String()
	s.events.publish(ctx, event)

	return newSubscriptionView(subscription, vendor.DisplayName(), now), nil
}

// ListSubscriptions returns the student's subscriptions with vendor names.
func (s *subscriptionService) ListSubscriptions(ctx context.Context, studentID uuid.UUID) ([]*usecase.SubscriptionView, error) {
	subscriptions, err := s.subscriptionRepo.FindSubscriptionsByStudent(ctx, studentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find subscriptions by student")
	}

	now := s.now()
	names := make(map[uuid.UUID]string)
	views := make([]*usecase.SubscriptionView, 0, len(subscriptions))

	for _, sub := range subscriptions {
		name, ok := names[sub.VendorID]
		if !ok {
			name = s.vendorName(ctx, sub.VendorID)
			names[sub.VendorID] = name
		}

		views = append(views, newSubscriptionView(sub, name, now))
	}

	return views, nil
}

func (s *subscriptionService) GetSubscription(ctx context.Context, studentID, subscriptionID uuid.UUID) (*usecase.SubscriptionView, error) {
	sub, err := s.loadOwned(ctx, studentID, subscriptionID)
	if err != nil {
		return nil, err
	}

	return newSubscriptionView(sub, s.vendorName(ctx, sub.VendorID), s.now()), nil
}

func (s *subscriptionService) PauseSubscription(ctx context.Context, studentID, subscriptionID uuid.UUID, input usecase.PauseSubscriptionInput) (*usecase.SubscriptionView, error) {
	return s.transition(ctx, studentID, subscriptionID, func(sub *entity.Subscription, now time.Time) error {
		var pauseDate time.Time
		if input.PauseDate != nil {
			pauseDate = *input.PauseDate
		}

		return sub.Pause(now, pauseDate, input.ResumeDate, input.Reason, input.Notes)
	})
}

func (s *subscriptionService) ResumeSubscription(ctx context.Context, studentID, subscriptionID uuid.UUID) (*usecase.SubscriptionView, error) {
	return s.transition(ctx, studentID, subscriptionID, func(sub *entity.Subscription, now time.Time) error {
		return sub.Resume(now)
	})
}

func (s *subscriptionService) CancelSubscription(ctx context.Context, studentID, subscriptionID uuid.UUID) (*usecase.SubscriptionView, error) {
	return s.transition(ctx, studentID, subscriptionID, func(sub *entity.Subscription, now time.Time) error {
		return sub.Cancel(now)
	})
}

// transition applies a state change and saves it with an optimistic version check.
func (s *subscriptionService) transition(
	ctx context.Context,
	studentID, subscriptionID uuid.UUID,
	apply func(*entity.Subscription, time.Time) error,
) (*usecase.SubscriptionView, error) {
	sub, err := s.loadOwned(ctx, studentID, subscriptionID)
	if err != nil {
		return nil, err
	}

	previous := sub.Status
	now := s.now()

	if err := apply(sub, now); err != nil {
		return nil, errors.WithStack(err)
	}

	if err := s.subscriptionRepo.UpdateSubscriptionState(ctx, sub); err != nil {
		switch {
		case errors.Is(err, repository.ErrSubscriptionVersionConflict):
			s.log(ctx).Warn("Subscription changed concurrently", slog.Any("subscriptionID", sub.ID))

			return nil, errors.WithStack(domainerrors.ErrSubscriptionConflict)
		case errors.Is(err, repository.ErrSubscriptionNotFound):
			return nil, errors.WithStack(domainerrors.ErrSubscriptionNotFound)
		default:
			return nil, errors.Wrap(err, "failed to update subscription state")
		}
	}

	s.log(ctx).Info("Subscription status changed",
		slog.Any("subscriptionID", sub.ID),
		slog.String("from", string(previous)),
		slog.String("to", string(sub.Status)),
	)

	event := newEvent(service.EventSubscriptionChanged,
		entity.Principal{ID: sub.VendorID, Role: entity.RoleVendor},
		entity.NotifySubscription,
		"Subscription "+string(sub.Status),
		fmt.Sprintf("A subscription changed from %s to %s", previous, sub.Status),
	)
	event.Data["subscription_id"] = sub.ID.String()
	event.Data["status"] = string(sub.Status)
	s.events.publish(ctx, event)

	return newSubscriptionView(sub, s.vendorName(ctx, sub.VendorID), now), nil
}

func (s *subscriptionService) loadOwned(ctx context.Context, studentID, subscriptionID uuid.UUID) (*entity.Subscription, error) {
	sub, err := s.subscriptionRepo.FindSubscriptionByID(ctx, subscriptionID)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrSubscriptionNotFound, domainerrors.ErrSubscriptionNotFound, "failed to find subscription")
	}

	if !sub.IsOwnedBy(studentID) {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	return sub, nil
}

// vendorName is best effort; a missing vendor leaves the name empty.
func (s *subscriptionService) vendorName(ctx context.Context, vendorID uuid.UUID) string {
	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		s.log(ctx).Debug("Vendor name unavailable", slog.Any("vendorID", vendorID), slog.Any("error", err))

		return ""
	}

	return vendor.DisplayName()
}

func newSubscriptionView(sub *entity.Subscription, vendorName string, now time.Time) *usecase.SubscriptionView {
	return &usecase.SubscriptionView{
		Subscription:  sub,
		Status:        sub.EffectiveStatus(now),
		VendorName:    vendorName,
		DaysCompleted: sub.DaysCompleted(now),
		DaysRemaining: sub.DaysRemaining(now),
	}
}
