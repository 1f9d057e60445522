package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Field names of an inbound email request, in the order they are reported
// when missing.
const (
	FieldReceiverEmail = "receiver_email"
	FieldSubject       = "subject"
	FieldBodyText      = "body_text"
)

// RequiredEmailFields lists the keys every email request must carry
var RequiredEmailFields = []string{FieldReceiverEmail, FieldSubject, FieldBodyText}

var (
	// ErrInvalidJSON is returned when the payload is not a JSON object
	ErrInvalidJSON = errors.New("invalid JSON format")
	// ErrMissingFields is wrapped by MissingFieldsError
	ErrMissingFields = errors.New("missing required fields")
)

// EmailRequest is the payload accepted by the send-email endpoint
type EmailRequest struct {
	ReceiverEmail string `json:"receiver_email"`
	Subject       string `json:"subject"`
	BodyText      string `json:"body_text"`
}

// MissingFieldsError reports which required keys were absent from a payload
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("Missing required fields: %s", strings.Join(e.Fields, ", "))
}

func (e *MissingFieldsError) Unwrap() error {
	return ErrMissingFields
}

// ParseEmailRequest decodes a raw body into an EmailRequest.
//
// Only key presence is checked for required fields; values of any JSON type
// are accepted and rendered as text. Unknown keys are ignored.
func ParseEmailRequest(body []byte) (*EmailRequest, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	// "null" decodes without error into a nil map
	if raw == nil {
		return nil, fmt.Errorf("%w: body is not an object", ErrInvalidJSON)
	}

	var missing []string
	for _, field := range RequiredEmailFields {
		if _, ok := raw[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	return &EmailRequest{
		ReceiverEmail: fieldText(raw[FieldReceiverEmail]),
		Subject:       fieldText(raw[FieldSubject]),
		BodyText:      fieldText(raw[FieldBodyText]),
	}, nil
}

// fieldText renders a field value as text. Strings are unquoted, null becomes
// the empty string and any other value keeps its compact JSON form.
func fieldText(value json.RawMessage) string {
	var s string
	if err := json.Unmarshal(value, &s); err == nil {
		return s
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, value); err != nil {
		return strings.TrimSpace(string(value))
	}
	return buf.String()
}

// MessageResponse is the success body of the endpoint
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the failure body of the endpoint
type ErrorResponse struct {
	Error string `json:"error"`
}
