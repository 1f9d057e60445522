package services

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// CodeInternalFailure is the generic provider-side failure code
const CodeInternalFailure = "InternalFailure"

var (
	// ErrSenderNotConfigured indicates the From address is not set
	ErrSenderNotConfigured = errors.New("sender address not configured")
	// ErrProviderConfig indicates the provider client could not be built
	ErrProviderConfig = errors.New("email provider configuration failed")
)

// ProviderError is a rejection reported by the delivery provider
type ProviderError struct {
	Code    string
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error (%s): %s", e.Code, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// IsInternalFailure reports whether the provider blamed itself
func (e *ProviderError) IsInternalFailure() bool {
	return e.Code == CodeInternalFailure
}

// NewProviderError converts an SDK error into a ProviderError. API errors
// keep the code and message the provider returned; anything else (transport
// failures, cancelled contexts) is reported as an internal failure.
func NewProviderError(err error) *ProviderError {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return &ProviderError{
			Code:    apiErr.ErrorCode(),
			Message: apiErr.ErrorMessage(),
			Err:     err,
		}
	}
	return &ProviderError{
		Code:    CodeInternalFailure,
		Message: err.Error(),
		Err:     err,
	}
}

// AsProviderError extracts a ProviderError from err's chain
func AsProviderError(err error) (*ProviderError, bool) {
	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return providerErr, true
	}
	return nil, false
}

// IsConfigurationError returns true for deployment problems that the caller
// cannot fix
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrSenderNotConfigured) || errors.Is(err, ErrProviderConfig)
}
