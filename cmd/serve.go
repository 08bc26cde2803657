package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"portfolio-site/pkg/api"
	"portfolio-site/pkg/clients/formrelay"
	"portfolio-site/pkg/services"
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"s"},
	Short:   "Start the contact form HTTP server",
	RunE:    runServe,
}

func init() {
	serveCmd.Flags().StringP("port", "p", "", "port to listen on (overrides PORT)")
	_ = v.BindPFlag("port", serveCmd.Flags().Lookup("port"))
}

func runServe(cmd *cobra.Command, args []string) error {
	gin.SetMode(cfg.GinMode)

	// Initialize API clients
	relayClient := formrelay.NewClient(cfg.RelayEndpoint, &http.Client{})

	// Initialize services
	sessions := services.NewSessionStore(relayClient, logger, cfg.RelayTimeout, cfg.SessionTTL, cfg.MaxSessions)

	handlers := api.NewHandlers(sessions, cfg.ContactEmail)
	router := api.NewRouter(handlers, logger, cfg.AllowedOrigins)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting",
			zap.String("port", cfg.Port),
			zap.String("relay_endpoint", cfg.RelayEndpoint),
			zap.Duration("relay_timeout", cfg.RelayTimeout),
		)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	// Leave room for an in-flight relay call to settle
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.RelayTimeout+5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
