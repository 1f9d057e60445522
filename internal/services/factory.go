package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"send-email-api/internal/config"
)

// NewEmailSender selects the delivery strategy for cfg.
//
// It never fails: configuration problems in live mode produce a sender that
// reports them on each Send, so an invocation still gets a response.
func NewEmailSender(ctx context.Context, cfg *config.Config) EmailSender {
	if cfg.IsOffline() {
		logrus.Info("Offline mode enabled, email delivery will be simulated")
		return NewOfflineSender()
	}

	if cfg.Email.SenderEmail == "" {
		logrus.Warn("SENDER_EMAIL is not set, live sends will fail")
		return NewUnconfiguredSender(fmt.Errorf("%w: SENDER_EMAIL is not set", ErrSenderNotConfigured))
	}

	sender, err := NewSESSender(ctx, cfg.AWS, cfg.Email.SenderEmail)
	if err != nil {
		logrus.WithError(err).Error("Failed to create SES sender")
		return NewUnconfiguredSender(err)
	}

	return sender
}
