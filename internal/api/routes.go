package api

import (
	"net/http"

	"github.com/hashicorp-forge/teamwork-proxy/internal/server"
	"github.com/hashicorp-forge/teamwork-proxy/pkg/teamwork"
)

// Routes returns the proxy's HTTP handler. Every resource route shares the
// same pipeline and error handling; only the bound descriptor differs.
func Routes(srv server.Server) http.Handler {
	mux := http.NewServeMux()

	resources := []struct {
		pattern string
		handler HandlerFunc
	}{
		{"/tasks", BindRoute[teamwork.Task](srv, "tasks.json", "todo-items")},
		{"/time-entries", BindRoute[teamwork.TimeEntry](srv, "time_entries.json", "time-entries")},
		{"/task-lists", BindRoute[teamwork.TaskList](srv, "tasklists.json", "tasklists")},
	}
	for _, res := range resources {
		mux.Handle(res.pattern, ErrorHandler(srv, res.handler))
	}

	mux.Handle("/healthz", ErrorHandler(srv, healthHandler))
	mux.Handle("/", ErrorHandler(srv, notFoundHandler))

	return RequestLogger(srv, mux)
}

func healthHandler(w http.ResponseWriter, r *http.Request) error {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		return &statusError{status: http.StatusMethodNotAllowed}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	return nil
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) error {
	return &statusError{status: http.StatusNotFound}
}
