package teamwork

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	cases := map[string]struct {
		baseURL string
		wantErr bool
	}{
		"HTTPS":     {baseURL: "https://example.teamwork.com"},
		"HTTP":      {baseURL: "http://localhost:8080/"},
		"NoScheme":  {baseURL: "example.teamwork.com", wantErr: true},
		"FTPScheme": {baseURL: "ftp://example.teamwork.com", wantErr: true},
		"Malformed": {baseURL: "http://[::1", wantErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewClient(tc.baseURL, nil)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClientURL(t *testing.T) {
	c, err := NewClient("https://example.teamwork.com/", nil)
	require.NoError(t, err)

	assert.Equal(t, "https://example.teamwork.com/tasks.json", c.URL("tasks.json", ""))
	assert.Equal(t, "https://example.teamwork.com/tasks.json", c.URL("/tasks.json", ""))
	assert.Equal(t,
		"https://example.teamwork.com/tasks.json?tag=on%20hold&page=2",
		c.URL("tasks.json", "tag=on%20hold&page=2"))
}

func TestClientGet(t *testing.T) {
	reqs := make(chan *http.Request, 1)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqs <- r
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c, err := NewClient(ts.URL, NewHTTPClient(5*time.Second))
	require.NoError(t, err)

	header := http.Header{}
	header.Set("Authorization", "Basic abc")
	resp, err := c.Get(context.Background(), "tasks.json", "page=2", header)
	require.NoError(t, err)
	resp.Body.Close()

	got := <-reqs
	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "/tasks.json", got.URL.Path)
	assert.Equal(t, "page=2", got.URL.RawQuery)
	assert.Equal(t, "Basic abc", got.Header.Get("Authorization"))
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
}

func TestClientGetTransportError(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	c, err := NewClient(url, nil)
	require.NoError(t, err)

	_, err = c.Get(context.Background(), "tasks.json", "", nil)
	assert.Error(t, err)
}
