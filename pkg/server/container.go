package server

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"send-email-api/internal/config"
	"send-email-api/internal/handlers"
	"send-email-api/internal/logging"
	"send-email-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	EmailSender  services.EmailSender
	EmailHandler *handlers.EmailHandler
}

// NewContainer creates a new dependency injection container.
//
// Logging is configured here, once per process. Missing delivery
// configuration is not an error; it is reported on each send.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	if err := logging.Setup(cfg.Log); err != nil {
		return nil, fmt.Errorf("failed to configure logging: %w", err)
	}

	sender := services.NewEmailSender(ctx, cfg)

	logrus.WithFields(logrus.Fields{
		"deployment_mode": config.GetDeploymentMode(),
		"offline":         cfg.IsOffline(),
		"region":          cfg.AWS.Region,
	}).Info("Container initialized")

	return &Container{
		Config:       cfg,
		EmailSender:  sender,
		EmailHandler: handlers.NewEmailHandler(sender),
	}, nil
}

// RouterConfig returns the settings used to build the local server routes
func (c *Container) RouterConfig() *handlers.RouterConfig {
	return &handlers.RouterConfig{
		Sender:         c.EmailSender,
		RateLimitRPS:   c.Config.Server.RateLimitRPS,
		RateLimitBurst: c.Config.Server.RateLimitBurst,
		MaxBodyBytes:   c.Config.Server.MaxBodyBytes,
		Mode:           config.GetDeploymentMode(),
	}
}

// Close cleans up all resources
func (c *Container) Close() error {
	// The SES client holds no resources that need releasing
	return nil
}
