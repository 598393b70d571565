package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"tiffin/config"
	deliverycontext "tiffin/internal/delivery/context"
	"tiffin/internal/domain/constants"
	"tiffin/internal/domain/service"
	"tiffin/internal/infra/pubsub"
	"tiffin/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PushHandler handles Pub/Sub push messages carrying domain events
type PushHandler struct {
	verifyPushAuth bool
	verifyToken    func(*http.Request) error
	logger         *slog.Logger
	eventUC        usecase.EventUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	EventUC usecase.EventUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		verifyToken:    verifyPubSubToken,
		logger:         params.Logger,
		eventUC:        params.EventUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pushMsg.Event()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode domain event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	// Priority: message attributes > event field > existing context
	requestID := RequestID(pushMsg.Message.Attributes[constants.AttrRequestID], event.RequestID, deliverycontext.GetRequestIDFromContext(ctx))

	if err := Dispatch(ctx, h.logger, h.eventUC, event, requestID); err != nil {
		// 503 makes Pub/Sub redeliver, 200 drops the message for good
		if usecase.IsRetryable(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// RequestID returns the first non-empty candidate, or a new id.
func RequestID(candidates ...string) string {
	for _, id := range candidates {
		if id != "" {
			return id
		}
	}

	return uuid.NewString()
}

// Dispatch processes one event under a request-scoped logger. It is shared by every worker transport.
func Dispatch(ctx context.Context, logger *slog.Logger, eventUC usecase.EventUsecase, event *service.DomainEvent, requestID string) error {
	reqLogger := logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing event",
		slog.String("event_id", event.ID),
		slog.String("event_type", string(event.Type)),
		slog.String("recipient_id", event.RecipientID),
	)

	result, err := eventUC.ProcessEvent(ctx, event)
	if err != nil {
		reqLogger.Error("[Worker] Failed to process event",
			slog.String("event_id", event.ID),
			slog.Any("error", err),
			slog.Bool("retryable", usecase.IsRetryable(err)),
		)

		return err
	}

	reqLogger.Info("[Worker] Event processed",
		slog.String("event_id", event.ID),
		slog.String("notification_id", result.NotificationID),
		slog.Int("devices", result.Devices),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int64("invalid_removed", result.InvalidRemoved),
	)

	return nil
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return errors.New("invalid authorization header format")
	}

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
