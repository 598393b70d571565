package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "tiffin/internal/delivery/context"
	"tiffin/internal/domain/entity"
	"tiffin/internal/domain/repository"
	"tiffin/internal/domain/service"
	"tiffin/internal/errors"
	"tiffin/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Firebase multicast limit
const firebaseBatchSize = 500

type eventService struct {
	notificationRepo repository.NotificationRepository
	deviceRepo       repository.DeviceRepository
	pushSvc          service.NotificationService
	logger           *slog.Logger
	now              func() time.Time
}

// EventServiceParams holds dependencies for EventService, injected by Fx.
type EventServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	DeviceRepo       repository.DeviceRepository
	PushService      service.NotificationService `optional:"true"`
	Logger           *slog.Logger
}

// NewEventService creates the worker's event processor
func NewEventService(params EventServiceParams) usecase.EventUsecase {
	return &eventService{
		notificationRepo: params.NotificationRepo,
		deviceRepo:       params.DeviceRepo,
		pushSvc:          params.PushService,
		logger:           loggerOrDefault(params.Logger),
		now:              systemClock,
	}
}

func (s *eventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ProcessEvent stores the inbox notification and pushes it to the recipient's devices.
// Storage and transport failures are retryable; a bad recipient is not.
func (s *eventService) ProcessEvent(ctx context.Context, event *service.DomainEvent) (*usecase.DeliveryResult, error) {
	if event == nil {
		return nil, errors.New("event is nil")
	}

	recipientID, err := uuid.Parse(event.RecipientID)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid recipient id %q", event.RecipientID)
	}

	notifyType := entity.NotificationType(event.NotificationType)
	if notifyType == "" {
		notifyType = entity.NotifySystem
	}

	notification := entity.NewNotification(recipientID, notifyType, event.Title, event.Message, s.now())
	notification.ActionURL = event.ActionURL
	notification.IsImportant = event.Important
	if event.Important {
		notification.Priority = 5
	}
	for k, v := range event.Data {
		notification.Metadata[k] = v
	}
	notification.Metadata["event_type"] = string(event.Type)

	if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
		return nil, usecase.Retryable(errors.Wrap(err, "failed to create notification"))
	}

	result := &usecase.DeliveryResult{NotificationID: notification.ID.String()}

	if s.pushSvc == nil {
		return result, nil
	}

	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, recipientID)
	if err != nil {
		return result, usecase.Retryable(errors.Wrap(err, "failed to find recipient devices"))
	}

	result.Devices = len(devices)
	if len(devices) == 0 {
		return result, nil
	}

	tokens := make([]string, 0, len(devices))
	for _, d := range devices {
		tokens = append(tokens, d.FCMToken)
	}

	data := map[string]string{
		"notification_id": notification.ID.String(),
		"type":            string(notification.Type),
		"category":        string(notification.Category),
	}
	if notification.ActionURL != "" {
		data["action_url"] = notification.ActionURL
	}
	for k, v := range event.Data {
		data[k] = v
	}

	var invalid []string
	for start := 0; start < len(tokens); start += firebaseBatchSize {
		batch := tokens[start:min(start+firebaseBatchSize, len(tokens))]

		sent, failed, batchInvalid, err := s.pushSvc.SendBatchNotification(ctx, batch, notification.Title, notification.Message, data)
		if err != nil {
			return result, usecase.Retryable(errors.Wrap(err, "failed to send push notification"))
		}

		result.Sent += sent
		result.Failed += failed
		invalid = append(invalid, batchInvalid...)
	}

	if len(invalid) > 0 {
		removed, err := s.deviceRepo.DeleteDevicesByTokens(ctx, invalid)
		if err != nil {
			s.log(ctx).Warn("Failed to remove invalid device tokens", slog.Int("tokens", len(invalid)), slog.Any("error", err))
		}
		result.InvalidRemoved = removed
	}

	s.log(ctx).Info("Event delivered",
		slog.String("event_type", string(event.Type)),
		slog.String("recipient_id", event.RecipientID),
		slog.Int("devices", result.Devices),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
	)

	return result, nil
}
