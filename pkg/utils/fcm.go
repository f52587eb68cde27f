package utils

import (
	"context"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/messaging"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

// Pusher sends push notifications through Firebase Cloud Messaging.
// A nil Pusher is valid and drops every message, so callers never need to
// check whether push is configured.
type Pusher struct {
	client *messaging.Client
	log    *logrus.Logger
}

// NewPusher initialises FCM from a service-account credentials file.
func NewPusher(credentialsFile string, log *logrus.Logger) (*Pusher, error) {
	opt := option.WithCredentialsFile(credentialsFile)
	app, err := firebase.NewApp(context.Background(), nil, opt)
	if err != nil {
		return nil, err
	}

	client, err := app.Messaging(context.Background())
	if err != nil {
		return nil, err
	}

	log.Info("Firebase Cloud Messaging ready")
	return &Pusher{client: client, log: log}, nil
}

// Push sends one message to a device token. Failures are logged, not
// returned: push delivery is best-effort everywhere it is used.
func (p *Pusher) Push(ctx context.Context, token, title, body string, data map[string]string) {
	if p == nil || p.client == nil || token == "" {
		return
	}

	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := p.client.Send(ctx, message); err != nil {
		p.log.WithError(err).Warn("Failed to send push notification")
	}
}
