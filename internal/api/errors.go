package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrAuthMissing is returned when a request has no Authorization header
	// and no API key is configured.
	ErrAuthMissing = errors.New(
		"request missing authorization header and no API key is configured")

	// ErrInvalidQuery is returned when the page query parameter is not a
	// positive integer.
	ErrInvalidQuery = errors.New("page query parameter must be a positive integer")
)

// UpstreamError is a non-2xx response from Teamwork. Its status and body are
// passed through to the caller.
type UpstreamError struct {
	Status int
	Reason string

	// Body is the upstream body as JSON: the parsed document when the body
	// was valid JSON, otherwise the raw text as a JSON string.
	Body json.RawMessage
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf(
		"teamwork API returned an error: status %d message %s", e.Status, e.Reason)
}

// newUpstreamError builds an UpstreamError from a status and raw body.
func newUpstreamError(status int, body []byte) *UpstreamError {
	e := &UpstreamError{
		Status: status,
		Reason: http.StatusText(status),
	}
	if json.Valid(body) {
		e.Body = json.RawMessage(body)
	} else {
		e.Body, _ = json.Marshal(string(body))
	}
	return e
}

// HeaderError is a missing or malformed pagination header on an otherwise
// successful upstream response.
type HeaderError struct {
	Header string
	Value  string
}

func (e *HeaderError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("teamwork response missing expected header %s", e.Header)
	}
	return fmt.Sprintf("teamwork response header %s has invalid value %q", e.Header, e.Value)
}

// TransportError is a failure to reach Teamwork or read its response.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("error forwarding request to teamwork: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError is a successful upstream response whose body does not have the
// expected shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("error decoding teamwork response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ErrorEnvelope is the body of every error response.
type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody describes a failed request.
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`

	// TeamworkResponse is the upstream body for upstream failures and null
	// otherwise.
	TeamworkResponse json.RawMessage `json:"teamwork_response"`
}

// genericEnvelope carries only a status and its canonical text.
func genericEnvelope(status int) ErrorEnvelope {
	return ErrorEnvelope{Error: ErrorBody{
		Code:    status,
		Message: http.StatusText(status),
	}}
}

// envelopeFor maps an error to its response status and body. Only upstream
// errors expose detail; everything else is reduced to a generic envelope.
func envelopeFor(err error) (int, ErrorEnvelope) {
	var upstreamErr *UpstreamError
	switch {
	case errors.As(err, &upstreamErr):
		return upstreamErr.Status, ErrorEnvelope{Error: ErrorBody{
			Code:             upstreamErr.Status,
			Message:          upstreamErr.Reason,
			TeamworkResponse: upstreamErr.Body,
		}}
	case errors.Is(err, ErrAuthMissing), errors.Is(err, ErrInvalidQuery):
		return http.StatusBadRequest, genericEnvelope(http.StatusBadRequest)
	default:
		var statusErr *statusError
		if errors.As(err, &statusErr) {
			return statusErr.status, genericEnvelope(statusErr.status)
		}
		return http.StatusInternalServerError,
			genericEnvelope(http.StatusInternalServerError)
	}
}

// statusError is a routing failure (unknown path, wrong method) reported
// with a fixed status.
type statusError struct {
	status int
}

func (e *statusError) Error() string {
	return http.StatusText(e.status)
}
