package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httpLayer "mortgage-calculator/http"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the mortgage calculation API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runServe(cmd.Context())
		},
	}
}

func (a *app) runServe(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc, closeService, err := a.newService(ctx)
	if err != nil {
		return err
	}
	defer closeService()

	rateLimiter := httpLayer.NewRateLimiter(a.cfg.RateLimit.Requests, a.cfg.RateLimit.Window)
	defer rateLimiter.Stop()

	mortgageHandler := httpLayer.NewMortgageHandler(svc, a.logger)

	server := &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      httpLayer.NewRouter(mortgageHandler, rateLimiter, a.logger),
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		a.logger.Info("mortgage API listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		a.logger.Error("error starting server", zap.Error(err))
		return err
	case <-ctx.Done():
		a.logger.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("error during server shutdown", zap.Error(err))
		return err
	}

	a.logger.Info("server exited")
	return nil
}
