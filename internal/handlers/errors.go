package handlers

import (
	"bytes"
	"encoding/json"

	"github.com/gin-gonic/gin"

	"send-email-api/internal/models"
	"send-email-api/pkg/lambda"
)

// messageResponse builds a success response with a {"message": ...} body
func messageResponse(status int, message string) *lambda.Response {
	return jsonResponse(status, models.MessageResponse{Message: message})
}

// errorResponse builds a failure response with an {"error": ...} body
func errorResponse(status int, message string) *lambda.Response {
	return jsonResponse(status, models.ErrorResponse{Error: message})
}

// NewErrorResponse builds an {"error": ...} response for entrypoints that
// fail before the handler runs
func NewErrorResponse(status int, message string) *lambda.Response {
	return errorResponse(status, message)
}

func jsonResponse(status int, body interface{}) *lambda.Response {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// Provider messages may contain markup-like text; keep it readable
	enc.SetEscapeHTML(false)
	// Encoding a struct of strings cannot fail
	_ = enc.Encode(body)

	return &lambda.Response{
		StatusCode: status,
		Headers:    lambda.DefaultHeaders(),
		Body:       bytes.TrimRight(buf.Bytes(), "\n"),
	}
}

// writeResponse copies a framework-agnostic response onto a gin context
func writeResponse(c *gin.Context, resp *lambda.Response) {
	contentType := "application/json"
	for key, value := range resp.Headers {
		if key == "Content-Type" {
			contentType = value
			continue
		}
		c.Header(key, value)
	}
	c.Data(resp.StatusCode, contentType, resp.Body)
}
