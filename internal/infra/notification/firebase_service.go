// Package notification delivers push notifications through Firebase Cloud Messaging.
package notification

import (
	"context"

	"tiffin/config"
	"tiffin/internal/domain/service"
	"tiffin/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// maxMulticastTokens is the FCM limit per multicast request.
const maxMulticastTokens = 500

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates the FCM client from a service account file.
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig) (service.NotificationService, error) {
	var fbConfig *firebase.Config
	if cfg.ProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

// SendSingleNotification sends a push notification to a single device token
func (s *firebaseService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	_, err := s.client.Send(ctx, &messaging.Message{
		Token:        token,
		Notification: &messaging.Notification{Title: title, Body: body},
		Data:         data,
	})
	if err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

// SendBatchNotification fans out over as many multicast requests as needed.
// Tokens FCM reports as unregistered or malformed are returned as invalid.
func (s *firebaseService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	for _, chunk := range chunkTokens(tokens, maxMulticastTokens) {
		response, sendErr := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens:       chunk,
			Notification: &messaging.Notification{Title: title, Body: body},
			Data:         data,
		})
		if sendErr != nil {
			return successCount, failureCount, invalidTokens, errors.Wrap(sendErr, "failed to send multicast notification")
		}

		successCount += response.SuccessCount
		failureCount += response.FailureCount

		for idx, result := range response.Responses {
			if result.Error != nil && isInvalidToken(result.Error) {
				invalidTokens = append(invalidTokens, chunk[idx])
			}
		}
	}

	return successCount, failureCount, invalidTokens, nil
}

func isInvalidToken(err error) bool {
	return messaging.IsInvalidArgument(err) || messaging.IsUnregistered(err)
}

func chunkTokens(tokens []string, size int) [][]string {
	chunks := make([][]string, 0, (len(tokens)+size-1)/size)
	for start := 0; start < len(tokens); start += size {
		end := min(start+size, len(tokens))
		chunks = append(chunks, tokens[start:end])
	}

	return chunks
}
