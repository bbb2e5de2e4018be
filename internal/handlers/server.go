// internal/handlers/server.go
package handlers

import (
	"github.com/sirupsen/logrus"

	"github.com/topguess/topguess/internal/lobby"
)

// Server bundles the engine dependencies the HTTP boundary needs. The
// handlers are a thin adapter: decode the command, dispatch to the store,
// map the result or error back to JSON.
type Server struct {
	Store *lobby.Store
	Log   *logrus.Logger
}

// NewServer wires a handler server around an engine store.
func NewServer(store *lobby.Store, logger *logrus.Logger) *Server {
	if logger == nil {
		logger = logrus.New()
	}
	return &Server{
		Store: store,
		Log:   logger,
	}
}
