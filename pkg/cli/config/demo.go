package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/opsnexus/opsnexus/pkg/domain/interfaces"
	"github.com/opsnexus/opsnexus/pkg/domain/model"
	"github.com/opsnexus/opsnexus/pkg/domain/types"
	"github.com/opsnexus/opsnexus/pkg/repository"
	"github.com/urfave/cli/v3"
)

// Demo holds configuration of the synthetic data seeder
type Demo struct {
	Seed       bool
	Days       int
	RandomSeed int64
}

// Flags returns CLI flags for Demo configuration
func (d *Demo) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "demo-seed",
			Usage:       "Fill the repository with synthetic alerts, tickets and reports for every company in the users file",
			Category:    "Demo",
			Sources:     cli.EnvVars("OPSNEXUS_DEMO_SEED"),
			Destination: &d.Seed,
		},
		&cli.IntFlag{
			Name:        "demo-days",
			Usage:       "Number of days of synthetic history",
			Category:    "Demo",
			Value:       30,
			Sources:     cli.EnvVars("OPSNEXUS_DEMO_DAYS"),
			Destination: &d.Days,
		},
		&cli.Int64Flag{
			Name:        "demo-random-seed",
			Usage:       "Random seed of the generator (0 uses the current time)",
			Category:    "Demo",
			Sources:     cli.EnvVars("OPSNEXUS_DEMO_RANDOM_SEED"),
			Destination: &d.RandomSeed,
		},
	}
}

// Configure seeds repo when enabled
func (d *Demo) Configure(ctx context.Context, repo interfaces.Repository, users *model.UsersConfig, now time.Time) error {
	if !d.Seed {
		return nil
	}

	seed := uint64(d.RandomSeed)
	if seed == 0 {
		seed = uint64(now.UnixNano())
	}

	result, err := repository.Seed(ctx, repo, repository.SeedOptions{
		CompanyIDs: companies(users),
		Days:       d.Days,
		Now:        now,
		Seed:       seed,
	})
	if err != nil {
		return goerr.Wrap(err, "failed to seed demo data")
	}

	ctxlog.From(ctx).Info("Seeded demo data",
		slog.Int("alerts", result.Alerts),
		slog.Int("tickets", result.Tickets),
		slog.Int("reports", result.Reports),
	)
	return nil
}

// companies returns the distinct companies of users in file order
func companies(users *model.UsersConfig) []types.CompanyID {
	var ids []types.CompanyID
	seen := make(map[types.CompanyID]bool)
	for _, u := range users.Users {
		if seen[u.CompanyID] {
			continue
		}
		seen[u.CompanyID] = true
		ids = append(ids, u.CompanyID)
	}
	return ids
}

// LogValue returns structured log value
func (d Demo) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("seed", d.Seed),
		slog.Int("days", d.Days),
	)
}
