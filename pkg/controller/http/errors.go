package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/opsnexus/opsnexus/pkg/domain/model"
	"github.com/opsnexus/opsnexus/pkg/utils/apperr"
)

// errorMapping maps a sentinel error to its response status. The sentinel
// message is returned to the client instead of the wrapped chain.
var errorMapping = []struct {
	err    error
	status int
}{
	{model.ErrInvalidCredentials, http.StatusUnauthorized},
	{model.ErrUnauthorized, http.StatusUnauthorized},
	{model.ErrTokenRevoked, http.StatusUnauthorized},
	{model.ErrForbidden, http.StatusForbidden},
	{model.ErrUserNotFound, http.StatusNotFound},
	{model.ErrInvalidDateRange, http.StatusBadRequest},
	{model.ErrRateLimited, http.StatusTooManyRequests},
	{model.ErrDigestDisabled, http.StatusServiceUnavailable},
}

// statusOf returns the response status and client-facing message for err
func statusOf(err error) (int, string) {
	for _, m := range errorMapping {
		if errors.Is(err, m.err) {
			return m.status, m.err.Error()
		}
	}
	return http.StatusInternalServerError, "internal server error"
}

// handleError writes the mapped error response. Unexpected errors are logged
// with full context.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusOf(err)
	if status == http.StatusInternalServerError {
		apperr.Handle(r.Context(), err)
	} else {
		ctxlog.From(r.Context()).Debug("Request rejected", "status", status, "error", err)
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	writeErrorMessage(r.Context(), w, message, status)
}

// writeErrorMessage writes an error response
func writeErrorMessage(ctx context.Context, w http.ResponseWriter, message string, status int) {
	writeJSON(ctx, w, status, map[string]string{
		"error": message,
	})
}

// writeJSON writes v as a JSON response
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(ctx).Error("Failed to encode response", "error", err)
	}
}
