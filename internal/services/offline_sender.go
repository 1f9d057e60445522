package services

import (
	"context"

	"send-email-api/internal/logging"
)

// offlineSender simulates delivery by logging the message
type offlineSender struct{}

// NewOfflineSender returns a sender that never contacts a provider
func NewOfflineSender() EmailSender {
	return &offlineSender{}
}

func (s *offlineSender) Send(ctx context.Context, input *SendInput) (*SendOutput, error) {
	logger := logging.FromContext(ctx)

	var to string
	if len(input.Destination) > 0 {
		to = input.Destination[0]
	}

	logger.Info("OFFLINE MODE: Simulating email sending")
	logger.Infof("To: %s", to)
	logger.Infof("Subject: %s", input.Subject)
	logger.Infof("Body: %s", input.BodyText)

	return &SendOutput{Simulated: true}, nil
}

// unconfiguredSender fails every send with the configuration error it was
// built with
type unconfiguredSender struct {
	err error
}

// NewUnconfiguredSender returns a sender whose Send always returns err
func NewUnconfiguredSender(err error) EmailSender {
	return &unconfiguredSender{err: err}
}

func (s *unconfiguredSender) Send(ctx context.Context, input *SendInput) (*SendOutput, error) {
	return nil, s.err
}
