package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hashicorp-forge/teamwork-proxy/internal/server"
)

// HandlerFunc is an HTTP handler that reports failure by returning an error
// instead of writing it. ErrorHandler turns the error into a response.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// ErrorHandler adapts h to an http.Handler. It is the only place errors are
// converted to responses: upstream errors keep the upstream status and body,
// and every other error is reported with a generic message.
func ErrorHandler(srv server.Server, h HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := h(w, r)
		if err == nil {
			return
		}

		status, envelope := envelopeFor(err)
		logger := srv.Logger.With(
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"request_id", requestIDFromContext(r.Context()),
		)
		var upstreamErr *UpstreamError
		switch {
		case errors.As(err, &upstreamErr):
			logger.Warn("teamwork returned an error", "error", err)
		case status >= http.StatusInternalServerError:
			logger.Error("error proxying request", "error", err)
		default:
			logger.Debug("rejected request", "error", err)
		}

		writeJSON(w, status, envelope)
	})
}

// writeJSON writes v as the JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		body, _ = json.Marshal(genericEnvelope(http.StatusInternalServerError))
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
