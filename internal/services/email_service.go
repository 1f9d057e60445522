package services

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/sirupsen/logrus"

	"send-email-api/internal/config"
	"send-email-api/internal/logging"
)

const charsetUTF8 = "UTF-8"

// sesAPI is the subset of the SES v2 client used here
type sesAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// sesSender implements EmailSender on top of Amazon SES
type sesSender struct {
	client           sesAPI
	source           string
	configurationSet string
}

// NewSESSender builds an SES-backed sender using the default AWS credential
// chain. source is used as the From address of every message.
func NewSESSender(ctx context.Context, awsCfg config.AWSConfig, source string) (EmailSender, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if awsCfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(awsCfg.Region))
	}

	sdkConfig, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load AWS config: %v", ErrProviderConfig, err)
	}

	client := sesv2.NewFromConfig(sdkConfig, func(o *sesv2.Options) {
		if awsCfg.SESEndpoint != "" {
			o.BaseEndpoint = aws.String(awsCfg.SESEndpoint)
		}
	})

	return newSESSender(client, source, awsCfg.ConfigurationSet), nil
}

func newSESSender(client sesAPI, source, configurationSet string) *sesSender {
	return &sesSender{
		client:           client,
		source:           source,
		configurationSet: configurationSet,
	}
}

// Send delivers the message through SES
func (s *sesSender) Send(ctx context.Context, input *SendInput) (*SendOutput, error) {
	if s.source == "" {
		return nil, fmt.Errorf("%w: SENDER_EMAIL is not set", ErrSenderNotConfigured)
	}

	req := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.source),
		Destination: &types.Destination{
			ToAddresses: input.Destination,
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(input.Subject),
					Charset: aws.String(charsetUTF8),
				},
				Body: &types.Body{
					Text: &types.Content{
						Data:    aws.String(input.BodyText),
						Charset: aws.String(charsetUTF8),
					},
				},
			},
		},
	}
	if s.configurationSet != "" {
		req.ConfigurationSetName = aws.String(s.configurationSet)
	}

	out, err := s.client.SendEmail(ctx, req)
	if err != nil {
		providerErr := NewProviderError(err)
		logging.FromContext(ctx).WithFields(logrus.Fields{
			"error_code": providerErr.Code,
			"error":      providerErr.Message,
		}).Errorf("SES error (%s): %s", providerErr.Code, providerErr.Message)
		return nil, providerErr
	}

	messageID := aws.ToString(out.MessageId)
	logging.FromContext(ctx).WithField("message_id", messageID).Infof("Email sent! Message ID: %s", messageID)

	return &SendOutput{MessageID: messageID}, nil
}
