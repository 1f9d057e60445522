package services

import (
	"context"
)

// EmailSender defines the delivery capability used by the request handler.
// Implementations are selected once per process by NewEmailSender.
type EmailSender interface {
	// Send delivers a single plain-text message. Provider rejections are
	// returned as *ProviderError; missing configuration wraps
	// ErrSenderNotConfigured or ErrProviderConfig.
	Send(ctx context.Context, input *SendInput) (*SendOutput, error)
}

// SendInput describes one outbound message. The From address belongs to the
// sender's configuration, not to the message.
type SendInput struct {
	Destination []string
	Subject     string
	BodyText    string
}

// SendOutput is the result of a successful Send
type SendOutput struct {
	MessageID string
	// Simulated is true when no provider was contacted
	Simulated bool
}
