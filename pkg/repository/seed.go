package repository

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/opsnexus/opsnexus/pkg/domain/interfaces"
	"github.com/opsnexus/opsnexus/pkg/domain/model"
	"github.com/opsnexus/opsnexus/pkg/domain/types"
)

var (
	seedAlertStatuses  = []string{"CRITICAL", "WARNING", "OK", "UNKNOWN"}
	seedAlertHosts     = []string{"srv-web-01", "srv-db-01", "srv-app-02", "firewall-main"}
	seedTicketStatuses = []string{"Open", "In Progress", "Resolved", "Closed"}
	seedTicketTopics   = []string{"email", "printer", "network", "vpn"}
	seedReportSources  = []string{"Nessus", "OpenVAS", "Qualys"}
	seedReportStatuses = []string{"READY", "IN_REVIEW"}
)

// SeedOptions controls demo data generation
type SeedOptions struct {
	CompanyIDs []types.CompanyID
	Days       int
	Now        time.Time
	Seed       uint64
}

// SeedResult reports how many records were generated
type SeedResult struct {
	Alerts  int
	Tickets int
	Reports int
}

// Seed fills the repository with simulated monitoring data. For every company
// and every day in the window it creates 0-5 alerts, 0-3 tickets and 0-1
// reports. The same options always produce the same records.
func Seed(ctx context.Context, repo interfaces.Repository, opts SeedOptions) (*SeedResult, error) {
	if opts.Days <= 0 {
		return nil, goerr.New("seed days must be positive", goerr.V("days", opts.Days))
	}
	if len(opts.CompanyIDs) == 0 {
		return nil, goerr.New("no company to seed")
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	today := time.Date(opts.Now.Year(), opts.Now.Month(), opts.Now.Day(), 0, 0, 0, 0, time.UTC)
	first := today.AddDate(0, 0, -(opts.Days - 1))

	result := &SeedResult{}
	nextAlertID := types.AlertID(1000)
	nextTicketID := types.TicketID(10000)

	for _, companyID := range opts.CompanyIDs {
		for d := 0; d < opts.Days; d++ {
			day := first.AddDate(0, 0, d)

			for range rng.IntN(6) {
				alert := &model.Alert{
					ID:        nextAlertID,
					Timestamp: day.Add(randomTimeOfDay(rng)),
					Host:      pick(rng, seedAlertHosts),
					Service:   "Memory Usage",
					Status:    pick(rng, seedAlertStatuses),
					Message:   "Threshold exceeded",
					CompanyID: companyID,
				}
				if rng.Float64() > 0.5 {
					alert.Service = "CPU Load"
				}
				if err := repo.PutAlert(ctx, alert); err != nil {
					return nil, goerr.Wrap(err, "failed to seed alert", goerr.V("companyID", companyID))
				}
				nextAlertID++
				result.Alerts++
			}

			for range rng.IntN(4) {
				ticket := &model.Ticket{
					ID:        nextTicketID,
					CreatedAt: day.Add(randomTimeOfDay(rng)),
					Subject:   fmt.Sprintf("Issue with %s", pick(rng, seedTicketTopics)),
					Status:    pick(rng, seedTicketStatuses),
					CompanyID: companyID,
				}
				if err := repo.PutTicket(ctx, ticket); err != nil {
					return nil, goerr.Wrap(err, "failed to seed ticket", goerr.V("companyID", companyID))
				}
				nextTicketID++
				result.Tickets++
			}

			if rng.IntN(2) == 1 {
				score := float64(rng.IntN(101))
				generatedAt := day.Add(randomTimeOfDay(rng))
				report := &model.Report{
					ID:          types.ReportID(fmt.Sprintf("rpt-%d-%s", companyID, generatedAt.Format("20060102"))),
					Title:       fmt.Sprintf("Vulnerability Assessment %s", generatedAt.Format(model.DateLayout)),
					Client:      fmt.Sprintf("Company %d", companyID),
					Source:      pick(rng, seedReportSources),
					Status:      pick(rng, seedReportStatuses),
					RiskLevel:   riskForScore(score),
					Score:       score,
					GeneratedAt: generatedAt,
					CompanyID:   companyID,
				}
				if err := repo.PutReport(ctx, report); err != nil {
					return nil, goerr.Wrap(err, "failed to seed report", goerr.V("companyID", companyID))
				}
				result.Reports++
			}
		}
	}

	ctxlog.From(ctx).Info("Seeded demo data",
		"companies", len(opts.CompanyIDs),
		"days", opts.Days,
		"alerts", result.Alerts,
		"tickets", result.Tickets,
		"reports", result.Reports,
	)

	return result, nil
}

func pick(rng *rand.Rand, options []string) string {
	return options[rng.IntN(len(options))]
}

func randomTimeOfDay(rng *rand.Rand) time.Duration {
	return time.Duration(rng.IntN(24*60)) * time.Minute
}

func riskForScore(score float64) string {
	switch {
	case score >= 70:
		return "HIGH"
	case score >= 40:
		return "MEDIUM"
	default:
		return "LOW"
	}
}
