package api

import (
	"encoding/base64"
	"net/http"
)

// resolveAuth returns the Authorization header value to send upstream. An
// inbound header is forwarded verbatim; otherwise the configured API key is
// sent as HTTP basic auth with the key as user name and a blank password.
func resolveAuth(r *http.Request, apiKey string) (string, error) {
	if h := r.Header.Get("Authorization"); h != "" {
		return h, nil
	}
	if apiKey == "" {
		return "", ErrAuthMissing
	}
	return basicAuth(apiKey), nil
}

func basicAuth(apiKey string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(apiKey+": "))
}
