package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"entragraph/internal/directory/service"
	"entragraph/internal/graph"
	graphmetrics "entragraph/internal/graph/metrics"
	"entragraph/internal/platform/config"
	"entragraph/internal/platform/health"
	"entragraph/internal/platform/logger"
	httptransport "entragraph/internal/transport/http"
	mcptransport "entragraph/internal/transport/mcp"
)

// version is set at build time via ldflags.
var version = "dev"

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	creds := graph.Credentials{
		TenantID:            cfg.TenantID,
		ClientID:            cfg.ClientID,
		ClientSecret:        cfg.ClientSecret,
		CertificatePath:     cfg.CertificatePath,
		CertificatePassword: cfg.CertificatePassword,
		Scopes:              cfg.Scopes,
	}

	provider := graph.NewProvider(creds,
		[]graph.ClientOption{
			graph.WithClientLogger(log),
			graph.WithClientMetrics(graphmetrics.New()),
		},
		graph.WithProviderLogger(log),
	)
	directory := graph.NewDirectory(provider)

	users := service.NewUserService(directory, directory, directory, service.WithLogger(log))
	groups := service.NewGroupService(directory, service.WithLogger(log))
	security := service.NewSecurityService(directory, directory, service.WithLogger(log))

	tools := mcptransport.NewTools(users, groups, security, mcptransport.WithLogger(log))
	server := mcptransport.NewServer(tools, version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.Addr == "" {
		log.Info("starting mcp server on stdio", "version", version)
		if err := server.Run(ctx, &sdk.StdioTransport{}); err != nil && ctx.Err() == nil {
			log.Error("mcp server error", "error", err)
			os.Exit(1)
		}
		log.Info("server stopped")
		return
	}

	healthHandler := health.New()
	healthHandler.RegisterCheck("credentials", creds.Validate)

	streamable := sdk.NewStreamableHTTPHandler(func(*http.Request) *sdk.Server {
		return server
	}, nil)
	router := httptransport.NewRouter(streamable, healthHandler, log)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info("starting mcp server on http", "addr", cfg.Addr, "version", version)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
