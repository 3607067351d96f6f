package lsp

import (
	"github.com/tliron/glsp/server"

	"leek/internal/config"
)

// NewServer builds a glsp server around a fresh handler. The caller picks the
// transport (RunStdio, RunTCP).
func NewServer(cfg config.Config, debug bool) *server.Server {
	handler := NewLeekHandler(cfg).Protocol()
	return server.NewServer(&handler, Name, debug)
}
