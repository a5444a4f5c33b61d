package service

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Error codes returned in APIError.Code.
const (
	CodeBadRequest    = "BAD_REQUEST"
	CodeInvalidInput  = "INVALID_INPUT"
	CodeTooLarge      = "PAYLOAD_TOO_LARGE"
	CodeInternalError = "INTERNAL_ERROR"
)

// APIResponse is the standard response wrapper
type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
}

// APIError represents an error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON sends a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, data any) {
	writeEnvelope(w, status, APIResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	})
}

// writeError sends an error JSON response
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeEnvelope(w, status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: message},
	})
}

func writeEnvelope(w http.ResponseWriter, status int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
