package server

import (
	"github.com/hashicorp/go-hclog"

	"github.com/hashicorp-forge/teamwork-proxy/internal/config"
	"github.com/hashicorp-forge/teamwork-proxy/pkg/teamwork"
)

// Server contains the state shared by every request handler. Nothing in it is
// mutated after startup, so it is passed by value and read concurrently
// without locking.
type Server struct {
	// Config is the immutable configuration loaded at startup.
	Config *config.Config

	// Logger is the logger for the server.
	Logger hclog.Logger

	// Teamwork is the upstream client. It owns the shared pool of outbound
	// connections.
	Teamwork *teamwork.Client
}
