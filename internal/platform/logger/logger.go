package logger

import (
	"log/slog"
	"os"
)

// New returns a structured JSON logger using slog. Logs go to stderr because
// stdout carries the MCP stdio wire protocol.
func New() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}
	handler := slog.NewJSONHandler(os.Stderr, opts)
	return slog.New(handler)
}
