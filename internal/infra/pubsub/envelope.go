package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"tiffin/internal/domain/constants"
	"tiffin/internal/domain/service"
	"tiffin/internal/errors"
)

// localSubscription is reported in envelopes produced by the local publisher.
const localSubscription = "projects/local/subscriptions/tiffin-events"

// ErrMalformedEvent marks a push payload that can never be processed.
var ErrMalformedEvent = errors.New("malformed event payload")

// PushMessage mirrors the body Google Pub/Sub sends to push endpoints.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewPushMessage wraps an event the same way a Pub/Sub push subscription does.
func NewPushMessage(event *service.DomainEvent, publishedAt time.Time) (*PushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := &PushMessage{Subscription: localSubscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = eventAttributes(event)
	msg.Message.MessageID = event.ID
	msg.Message.PublishTime = publishedAt.UTC().Format(time.RFC3339)

	return msg, nil
}

// Event decodes the wrapped domain event.
func (m *PushMessage) Event() (*service.DomainEvent, error) {
	if m.Message.Data == "" {
		return nil, errors.Wrap(ErrMalformedEvent, "empty data")
	}

	raw, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedEvent, "data is not base64")
	}

	return DecodeEvent(raw)
}

// DecodeEvent parses a JSON domain event and checks the fields the worker relies on.
func DecodeEvent(raw []byte) (*service.DomainEvent, error) {
	var event service.DomainEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, errors.Wrap(ErrMalformedEvent, err.Error())
	}

	if event.Type == "" || event.RecipientID == "" {
		return nil, errors.Wrap(ErrMalformedEvent, "type and recipient are required")
	}

	return &event, nil
}

func eventAttributes(event *service.DomainEvent) map[string]string {
	attributes := map[string]string{
		constants.AttrEventType: string(event.Type),
	}
	if event.RequestID != "" {
		attributes[constants.AttrRequestID] = event.RequestID
	}

	return attributes
}
