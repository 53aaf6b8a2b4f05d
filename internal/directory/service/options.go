package service

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

type serviceConfig struct {
	logger *slog.Logger
	tracer trace.Tracer
}

type Option func(*serviceConfig)

func WithLogger(l *slog.Logger) Option {
	return func(c *serviceConfig) { c.logger = l }
}

func WithTracer(t trace.Tracer) Option {
	return func(c *serviceConfig) { c.tracer = t }
}
