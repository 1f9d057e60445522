package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"send-email-api/internal/logging"
	"send-email-api/internal/middleware"
	"send-email-api/internal/models"
	"send-email-api/internal/services"
	"send-email-api/pkg/lambda"
)

// Response messages of the send-email endpoint
const (
	MessageEmailSent           = "Email sent successfully"
	MessageEmailSimulated      = "Email simulated successfully (offline mode)"
	ErrMessageInvalidJSON      = "Invalid JSON format"
	ErrMessageServerConfig     = "Server configuration error"
	ErrMessageInternal         = "Internal server error"
	ErrMessageSendFailedPrefix = "Email sending failed: "
)

// EmailHandler handles the send-email endpoint
type EmailHandler struct {
	sender services.EmailSender
}

// NewEmailHandler creates a new email handler
func NewEmailHandler(sender services.EmailSender) *EmailHandler {
	return &EmailHandler{
		sender: sender,
	}
}

// HandleSendEmail validates the request body and forwards it to the
// configured sender. The returned error is always nil; every failure is
// expressed as a response.
func (h *EmailHandler) HandleSendEmail(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	logger := logging.FromContext(ctx)

	emailReq, err := models.ParseEmailRequest(req.Body)
	if err != nil {
		var missingErr *models.MissingFieldsError
		if errors.As(err, &missingErr) {
			logger.WithField("missing_fields", missingErr.Fields).Error(missingErr.Error())
			return errorResponse(http.StatusBadRequest, missingErr.Error()), nil
		}
		logger.WithError(err).Error("JSON parse error")
		return errorResponse(http.StatusBadRequest, ErrMessageInvalidJSON), nil
	}

	out, err := h.sender.Send(ctx, &services.SendInput{
		Destination: []string{emailReq.ReceiverEmail},
		Subject:     emailReq.Subject,
		BodyText:    emailReq.BodyText,
	})
	if err != nil {
		return sendErrorResponse(logger, err), nil
	}

	if out.Simulated {
		return messageResponse(http.StatusOK, MessageEmailSimulated), nil
	}
	return messageResponse(http.StatusOK, MessageEmailSent), nil
}

func sendErrorResponse(logger *logrus.Entry, err error) *lambda.Response {
	if providerErr, ok := services.AsProviderError(err); ok {
		status := http.StatusBadRequest
		if providerErr.IsInternalFailure() {
			status = http.StatusInternalServerError
		}
		return errorResponse(status, ErrMessageSendFailedPrefix+providerErr.Message)
	}

	if services.IsConfigurationError(err) {
		logger.WithError(err).Error("Configuration error")
	} else {
		logger.WithError(err).Error("Unexpected send failure")
	}
	return errorResponse(http.StatusInternalServerError, ErrMessageServerConfig)
}

// SendEmail serves the endpoint through gin for the local server. The raw
// body is handed to HandleSendEmail so both entrypoints share one contract.
//
// @Summary Send email
// @Description Validate an email request and deliver it through SES, or simulate delivery in offline mode
// @Tags email
// @Accept json
// @Produce json
// @Param request body models.EmailRequest true "Email to send"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /send-email [post]
func (h *EmailHandler) SendEmail(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		// Oversized or truncated bodies cannot be parsed
		body = nil
	}

	resp, _ := h.HandleSendEmail(c.Request.Context(), &lambda.Request{
		Method:    c.Request.Method,
		Path:      c.Request.URL.Path,
		Body:      body,
		RequestID: c.GetString(middleware.RequestIDKey),
	})

	writeResponse(c, resp)
}
