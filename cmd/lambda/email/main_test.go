package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"send-email-api/internal/handlers"
)

func TestInternalError(t *testing.T) {
	resp := internalError(handlers.ErrMessageServerConfig)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
	assert.JSONEq(t, `{"error": "Server configuration error"}`, resp.Body)
}
