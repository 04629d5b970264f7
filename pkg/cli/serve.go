package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/opsnexus/opsnexus/pkg/cli/config"
	controller "github.com/opsnexus/opsnexus/pkg/controller/http"
	"github.com/opsnexus/opsnexus/pkg/domain/interfaces"
	slackSvc "github.com/opsnexus/opsnexus/pkg/service/slack"
	"github.com/opsnexus/opsnexus/pkg/usecase"
	"github.com/opsnexus/opsnexus/pkg/utils/apperr"
	"github.com/urfave/cli/v3"
)

// revokedTokenPurgeInterval is how often expired revocations are deleted
const revokedTokenPurgeInterval = 15 * time.Minute

func cmdServe() *cli.Command {
	var (
		serverCfg config.Server
		authCfg   config.Auth
		repoCfg   config.Repository
		slackCfg  config.Slack
		demoCfg   config.Demo
	)

	flags := joinFlags(
		serverCfg.Flags(),
		authCfg.Flags(),
		repoCfg.Flags(),
		slackCfg.Flags(),
		demoCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting opsnexus server",
				slog.Any("server", serverCfg),
				slog.Any("auth", authCfg),
				slog.Any("repository", repoCfg),
				slog.Any("slack", slackCfg),
				slog.Any("demo", demoCfg),
			)

			users, err := authCfg.LoadUsers()
			if err != nil {
				return err
			}
			loginRate, loginBurst, err := authCfg.RateLimit()
			if err != nil {
				return err
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			if err := demoCfg.Configure(ctx, repo, users, time.Now()); err != nil {
				return err
			}

			authUC, err := authCfg.Configure(ctx, repo, users)
			if err != nil {
				return err
			}

			slackClient, err := slackCfg.Configure(ctx)
			if err != nil {
				return err
			}

			dashboardUC := usecase.NewDashboard(repo)
			server, err := controller.NewServer(
				ctx,
				serverCfg.Addr,
				&controller.UseCases{
					Auth:      authUC,
					Dashboard: dashboardUC,
					Export:    usecase.NewExport(dashboardUC, time.Now),
					Digest: usecase.NewDigest(dashboardUC, slackClient, slackCfg.Channel,
						slackSvc.NewBlockBuilder(serverCfg.FrontendURL)),
				},
				controller.WithFrontendURL(serverCfg.FrontendURL),
				controller.WithLoginRateLimit(loginRate, loginBurst),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			bgCtx, cancelBg := context.WithCancel(ctx)
			defer cancelBg()
			go server.RateLimiter().Run(bgCtx)
			go purgeRevokedTokens(bgCtx, repo, revokedTokenPurgeInterval)

			errCh := make(chan error, 1)
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- goerr.Wrap(err, "HTTP server error", goerr.V("addr", serverCfg.Addr))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			case err := <-errCh:
				return err
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), serverCfg.ShutdownTimeout)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}

// purgeRevokedTokens deletes revocation records whose token has expired
// until ctx is cancelled
func purgeRevokedTokens(ctx context.Context, repo interfaces.Repository, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			n, err := repo.PurgeRevokedTokens(ctx, now)
			if err != nil {
				apperr.Handle(ctx, goerr.Wrap(err, "failed to purge revoked tokens"))
				continue
			}
			if n > 0 {
				ctxlog.From(ctx).Debug("Purged revoked tokens", slog.Int("count", n))
			}
		}
	}
}
