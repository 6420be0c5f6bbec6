package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/hashicorp-forge/teamwork-proxy/internal/server"
)

const (
	// pageHeader carries the current page of an upstream list response.
	pageHeader = "X-Page"

	// pagesHeader carries the total page count of an upstream list response.
	pagesHeader = "X-Pages"
)

// Route describes one proxied resource: where it lives upstream and the key
// the upstream wraps its items in. The item record type is the type
// parameter T.
type Route[T any] struct {
	// Path is the upstream path relative to the configured Teamwork URL.
	Path string

	// EnvelopeKey is the JSON key holding the item list in the upstream
	// response. It differs per resource.
	EnvelopeKey string
}

// Response is the normalized shape of every successful list response.
type Response[T any] struct {
	Data  []T     `json:"data"`
	Meta  Meta    `json:"meta"`
	Links LinkSet `json:"links"`
}

// BindRoute returns a handler that proxies GET requests for items of type T
// from upstream path, unwrapping the list found under envelopeKey.
func BindRoute[T any](srv server.Server, path, envelopeKey string) HandlerFunc {
	route := Route[T]{Path: path, EnvelopeKey: envelopeKey}

	return func(w http.ResponseWriter, r *http.Request) error {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			return &statusError{status: http.StatusMethodNotAllowed}
		}

		resp, err := Proxy(srv, route, r)
		if err != nil {
			return err
		}

		w.Header().Set("Link", resp.Links.Header())
		writeJSON(w, http.StatusOK, resp)
		return nil
	}
}

// Proxy forwards r to the upstream resource described by route and
// normalizes the result. Each step may end the request early; nothing is
// retried.
func Proxy[T any](srv server.Server, route Route[T], r *http.Request) (*Response[T], error) {
	auth, err := resolveAuth(r, srv.Config.APIKey)
	if err != nil {
		return nil, err
	}
	if err := validatePageParam(r); err != nil {
		return nil, err
	}

	header := http.Header{}
	header.Set("Authorization", auth)
	if id := requestIDFromContext(r.Context()); id != "" {
		header.Set(requestIDHeader, id)
	}

	upstream, err := srv.Teamwork.Get(r.Context(), route.Path, r.URL.RawQuery, header)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer upstream.Body.Close()

	body, err := io.ReadAll(upstream.Body)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("error reading response body: %w", err)}
	}

	if upstream.StatusCode < 200 || upstream.StatusCode > 299 {
		return nil, newUpstreamError(upstream.StatusCode, body)
	}

	meta, err := extractMeta(upstream.Header)
	if err != nil {
		return nil, err
	}

	items, err := decodeItems[T](body, route.EnvelopeKey)
	if err != nil {
		return nil, err
	}

	return &Response[T]{
		Data:  items,
		Meta:  meta,
		Links: buildLinks(r, srv.Config.PublicURL, meta),
	}, nil
}

// extractMeta reads pagination state from upstream headers. The current page
// defaults to 1; the total is required because the link math depends on it.
func extractMeta(h http.Header) (Meta, error) {
	meta := Meta{Page: 1}
	if v := h.Get(pageHeader); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			meta.Page = p
		}
	}

	v := h.Get(pagesHeader)
	if v == "" {
		return Meta{}, &HeaderError{Header: pagesHeader}
	}
	total, err := strconv.Atoi(v)
	if err != nil || total < 0 {
		return Meta{}, &HeaderError{Header: pagesHeader, Value: v}
	}
	// An empty result set is still reported as one (empty) page.
	if total == 0 {
		total = 1
	}
	meta.TotalPages = total
	return meta, nil
}

func decodeItems[T any](body []byte, envelopeKey string) ([]T, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &DecodeError{Err: err}
	}
	raw, ok := envelope[envelopeKey]
	if !ok {
		return nil, &DecodeError{Err: fmt.Errorf("missing %q key", envelopeKey)}
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, &DecodeError{Err: fmt.Errorf("%s: %w", envelopeKey, err)}
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// validatePageParam rejects a page query parameter that is present but not a
// positive integer.
func validatePageParam(r *http.Request) error {
	values, ok := r.URL.Query()["page"]
	if !ok {
		return nil
	}
	for _, v := range values {
		if p, err := strconv.Atoi(v); err != nil || p < 1 {
			return ErrInvalidQuery
		}
	}
	return nil
}
