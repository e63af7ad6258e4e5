package web

// errors.go provides unified error response handling for the web layer.
//
// It ensures all errors are:
//   - Logged with full technical details for debugging (server-side)
//   - Returned to clients as sanitized JSON messages
//
// Template paths, sheet names and filesystem details never leave the
// server. Clients only see a short message suitable for display.

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// ErrorResponse represents the JSON structure for API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError logs a technical error server-side and returns a
// sanitized JSON response to the client.
func respondError(w http.ResponseWriter, r *http.Request, err error, statusCode int, userMsg string) {
	// Get request ID for correlation
	requestID := middleware.GetReqID(r.Context())

	slog.Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"error", err.Error(),
		"request_id", requestID,
	)

	writeErrorJSON(w, statusCode, userMsg)
}

// writeError writes a JSON error response for cases without an
// underlying technical error.
func writeError(w http.ResponseWriter, r *http.Request, statusCode int, userMsg string) {
	requestID := middleware.GetReqID(r.Context())

	slog.Warn("request rejected",
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"reason", userMsg,
		"request_id", requestID,
	)

	writeErrorJSON(w, statusCode, userMsg)
}

func writeErrorJSON(w http.ResponseWriter, statusCode int, userMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: userMsg})
}

// writeJSON encodes v as JSON and writes it to w.
// Logs encoding errors since headers are already sent.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode error", "error", err)
	}
}
