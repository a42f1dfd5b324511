package middleware

import (
	"net/http"

	"github.com/go-chi/render"
)

// Error codes emitted by middleware before a request reaches a handler.
const (
	ErrorCodeInternal          = "INTERNAL_ERROR"
	ErrorCodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	ErrorCodeRequestTimeout    = "REQUEST_TIMEOUT"
)

const (
	ErrorMessageInternal          = "An internal error occurred"
	ErrorMessageRateLimitExceeded = "Too many requests"
	ErrorMessageRequestTimeout    = "Request timeout"
)

// writeError emits the standard error envelope shared with the handlers.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.WriteHeader(status)
	render.JSON(w, r, map[string]interface{}{
		"success": false,
		"error":   code,
		"message": message,
	})
}
