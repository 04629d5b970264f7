package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/opsnexus/opsnexus/pkg/cli/config"
	"github.com/opsnexus/opsnexus/pkg/domain/model"
	"github.com/opsnexus/opsnexus/pkg/domain/types"
	slackSvc "github.com/opsnexus/opsnexus/pkg/service/slack"
	"github.com/opsnexus/opsnexus/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdDigest() *cli.Command {
	var (
		repoCfg     config.Repository
		slackCfg    config.Slack
		companyID   int64
		startDate   string
		endDate     string
		frontendURL string
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.Int64Flag{
				Name:        "company",
				Usage:       "Company whose dashboard is posted",
				Required:    true,
				Sources:     cli.EnvVars("OPSNEXUS_DIGEST_COMPANY"),
				Destination: &companyID,
			},
			&cli.StringFlag{
				Name:        "start-date",
				Usage:       "First day of the period (YYYY-MM-DD)",
				Destination: &startDate,
			},
			&cli.StringFlag{
				Name:        "end-date",
				Usage:       "Last day of the period (YYYY-MM-DD)",
				Destination: &endDate,
			},
			&cli.StringFlag{
				Name:        "frontend-url",
				Usage:       "Dashboard URL linked from the digest",
				Sources:     cli.EnvVars("OPSNEXUS_FRONTEND_URL"),
				Destination: &frontendURL,
			},
		},
		repoCfg.Flags(),
		slackCfg.Flags(),
	)

	return &cli.Command{
		Name:  "digest",
		Usage: "Post a dashboard digest of one company to Slack",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if companyID <= 0 {
				return goerr.New("company must be positive", goerr.V("company", companyID))
			}

			tr, err := model.ParseTimeRange(startDate, endDate, time.Now())
			if err != nil {
				return err
			}

			slackClient, err := slackCfg.Configure(ctx)
			if err != nil {
				return err
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			digestUC := usecase.NewDigest(usecase.NewDashboard(repo), slackClient, slackCfg.Channel,
				slackSvc.NewBlockBuilder(frontendURL))
			if err := digestUC.Post(ctx, types.CompanyID(companyID), tr); err != nil {
				return err
			}

			ctxlog.From(ctx).Info("Digest posted",
				slog.Int64("company", companyID),
				slog.String("start", tr.Start.Format(model.DateLayout)),
				slog.Int("days", tr.Days()),
				slog.String("channel", slackCfg.Channel),
			)
			return nil
		},
	}
}
