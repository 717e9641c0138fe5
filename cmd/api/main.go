package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Bahjat/seo-tag-inspector/internal/fetchproxy"
	"github.com/Bahjat/seo-tag-inspector/internal/inspector"
	"github.com/Bahjat/seo-tag-inspector/internal/platform/config"
	"github.com/Bahjat/seo-tag-inspector/internal/platform/logger"
	"github.com/Bahjat/seo-tag-inspector/internal/platform/middleware"
)

const shutdownTimeout = 15 * time.Second

// newHandler builds the server's route tree. The rate limit applies to /api/*
// only; /healthz stays reachable for orchestrator checks.
func newHandler(cfg config.Config, fetchService *fetchproxy.Service, limiter *middleware.RateLimiter, log *slog.Logger) http.Handler {
	fetchTransport := fetchproxy.NewTransport(fetchService, log)

	api := http.NewServeMux()
	fetchTransport.RegisterRoutes(api)
	inspector.NewTransport(inspector.New(fetchService, nil, log), log).RegisterRoutes(api)

	root := http.NewServeMux()
	fetchTransport.RegisterHealthRoutes(root)
	root.Handle("/api/", limiter.Middleware(api))

	var handler http.Handler = root
	handler = middleware.CORS(cfg.AllowedOrigins)(handler)
	handler = middleware.Logging(log)(handler)
	handler = middleware.RequestID(handler)
	return handler
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	fetcher := fetchproxy.NewHTTPClient(fetchproxy.Options{
		Timeout:              cfg.FetchTimeout,
		MaxRedirects:         cfg.MaxRedirects,
		MaxBodyBytes:         cfg.MaxBodyBytes,
		BlockPrivateNetworks: cfg.BlockPrivateNetworks,
	})
	fetchService := fetchproxy.NewService(fetcher, log)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	handler := newHandler(cfg, fetchService, limiter, log)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.FetchTimeout + 10*time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go limiter.Run(ctx.Done())

	serveErr := make(chan error, 1)
	go func() {
		log.Info("proxy server running", "port", cfg.Port)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		log.Info("shutting down proxy server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
	}
}
