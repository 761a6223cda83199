package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/specter/pkg/cli/config"
	controller "github.com/secmon-lab/specter/pkg/controller/http"
	"github.com/secmon-lab/specter/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg   config.Server
		slackCfg    config.Slack
		operatorCfg config.Operator
	)

	flags := joinFlags(
		serverCfg.Flags(),
		slackCfg.Flags(),
		operatorCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server receiving Slack events and commands",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting specter server",
				slog.Any("server", serverCfg),
				slog.Any("slack", slackCfg),
				slog.Any("operator", operatorCfg),
			)

			if err := slackCfg.Validate(); err != nil {
				return err
			}
			if err := operatorCfg.Validate(); err != nil {
				return err
			}

			slackClient, err := slackCfg.Configure()
			if err != nil {
				return err
			}

			permissionUC := usecase.NewPermission(slackClient, usecase.WithFallbackAppID(slackCfg.AppID))
			scannerUC := usecase.NewScanner(slackClient)
			notifierUC := usecase.NewNotifier(slackClient, operatorCfg.ID())
			removalUC := usecase.NewRemoval(slackClient, scannerUC, notifierUC)
			ghostUC := usecase.NewGhost(slackClient, permissionUC, scannerUC, removalUC, notifierUC)

			if !notifierUC.Enabled() {
				logger.Warn("Operator ID is not set, new user alerts are disabled")
			}

			// Resolve the bot identity up front so token problems surface at startup
			if self, err := permissionUC.Self(ctx); err != nil {
				logger.Warn("Failed to resolve bot identity, will retry on first command", "error", err)
			} else {
				logger.Info("Bot identity resolved",
					"userID", self.UserID,
					"appID", self.AppID,
					"team", self.TeamID,
				)
			}

			server := controller.NewServer(ctx, serverCfg.Addr, &slackCfg, ghostUC)
			return runServer(ctx, server.Server, serverCfg.ShutdownTimeout)
		},
	}
}

// runServer serves until the context ends, a signal arrives or the listener
// fails. A listener failure is returned so the process exits with the cause.
func runServer(ctx context.Context, server *http.Server, shutdownTimeout time.Duration) error {
	logger := ctxlog.From(ctx)
	errCh := make(chan error, 1)

	go func() {
		logger.Info("HTTP server starting", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case err := <-errCh:
		logger.Error("HTTP server failed", slog.Any("error", err))
		return goerr.Wrap(err, "HTTP server failed", goerr.V("addr", server.Addr))
	case <-ctx.Done():
		logger.Info("Context cancelled, shutting down...")
	case sig := <-sigChan:
		logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return goerr.Wrap(err, "failed to shutdown server gracefully")
	}

	logger.Info("Server shutdown complete")
	return nil
}
