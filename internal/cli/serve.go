package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vehicle-auction/internal/server"
	"vehicle-auction/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func serveCmd(root *rootOptions) *cobra.Command {
	var seed bool

	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed.Enabled = seed
			}
			utils.Info("starting auction server", map[string]any{"config": cfg.String()})

			startupCtx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			be, err := openBackend(startupCtx, cfg)
			if err != nil {
				return err
			}
			defer be.close()

			if cfg.Seed.Enabled {
				if _, err := seedVehicles(startupCtx, be.service); err != nil {
					return fmt.Errorf("seed inventory: %w", err)
				}
			}

			gin.SetMode(gin.ReleaseMode)
			router := server.SetupRouter(be.service, server.Options{
				AllowedOrigins: cfg.CORS.AllowedOrigins,
				HealthCheck:    be.health,
			})

			srv := &http.Server{
				Addr:              cfg.Addr(),
				Handler:           router,
				ReadHeaderTimeout: 5 * time.Second,
			}

			stopCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return run(stopCtx, srv, cfg.Server.ShutdownTimeout)
		},
	}

	c.Flags().BoolVar(&seed, "seed", false, "register sample vehicles on startup (overrides seed.enabled)")
	return c
}

// run serves until ctx is cancelled or the listener fails, then drains
// in-flight requests within the shutdown timeout
func run(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration) error {
	srvErr := make(chan error, 1)
	go func() {
		utils.Info("listening", map[string]any{"addr": srv.Addr})
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		utils.Info("shutdown signal received, stopping server", nil)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server shutdown: %w", err)
	}
	utils.Info("server stopped", nil)
	return nil
}
