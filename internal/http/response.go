package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"fintrack/internal/core"
)

// errorBody is the uniform error payload.
type errorBody struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError maps domain errors to HTTP statuses. Unknown errors become a
// generic 500 so internals never leak into responses.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Detail: "not found"})
	case errors.Is(err, core.ErrInvalidCredentials), errors.Is(err, core.ErrInvalidToken):
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeJSON(w, http.StatusUnauthorized, errorBody{Detail: err.Error()})
	case isValidationError(err):
		writeJSON(w, http.StatusBadRequest, errorBody{Detail: err.Error()})
	default:
		slog.Error("Request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Detail: "internal server error"})
	}
}

func isValidationError(err error) bool {
	for _, sentinel := range []error{
		core.ErrEmailTaken,
		core.ErrInvalidTransactionType,
		core.ErrInvalidAmount,
		core.ErrEmptyCategory,
		core.ErrInvalidDate,
		core.ErrEmptyEmail,
		core.ErrEmptyPassword,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// decodeJSON parses a request body into dst. Unknown fields are ignored so
// older clients keep working when the wire format grows.
func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

func writeBadRequest(w http.ResponseWriter, detail string) {
	writeJSON(w, http.StatusBadRequest, errorBody{Detail: detail})
}
