package service

import (
	"io"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	dErrors "entragraph/pkg/domain-errors"
)

func newServiceConfig(opts []Option) *serviceConfig {
	cfg := &serviceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.tracer == nil {
		cfg.tracer = otel.GetTracerProvider().Tracer("entragraph/directory")
	}
	return cfg
}

// endSpan completes a span, recording the error when present.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func requireID(id, field string) error {
	if strings.TrimSpace(id) == "" {
		return dErrors.New(dErrors.CodeBadRequest, field+" is required")
	}
	return nil
}
