package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/opsnexus/opsnexus/pkg/domain/chart"
	"github.com/opsnexus/opsnexus/pkg/domain/interfaces"
	"github.com/opsnexus/opsnexus/pkg/domain/model"
	"github.com/opsnexus/opsnexus/pkg/domain/types"
)

// Dashboard implements DashboardUseCase
type Dashboard struct {
	repo interfaces.Repository
}

// NewDashboard creates a new Dashboard use case
func NewDashboard(repo interfaces.Repository) DashboardUseCase {
	return &Dashboard{
		repo: repo,
	}
}

// DataSet returns every record of the company within the range
func (d *Dashboard) DataSet(ctx context.Context, companyID types.CompanyID, r model.TimeRange) (*model.DataSet, error) {
	alerts, err := d.repo.ListAlerts(ctx, companyID, r)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list alerts", goerr.V("companyID", companyID))
	}

	tickets, err := d.repo.ListTickets(ctx, companyID, r)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list tickets", goerr.V("companyID", companyID))
	}

	reports, err := d.repo.ListReports(ctx, companyID, r)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list reports", goerr.V("companyID", companyID))
	}

	return &model.DataSet{
		CompanyID: companyID,
		Range:     r,
		Alerts:    alerts,
		Tickets:   tickets,
		Reports:   reports,
	}, nil
}

// Build returns counts, recent records and charts for the company and range
func (d *Dashboard) Build(ctx context.Context, companyID types.CompanyID, r model.TimeRange) (*model.Dashboard, error) {
	data, err := d.DataSet(ctx, companyID, r)
	if err != nil {
		return nil, err
	}

	dashboard := &model.Dashboard{
		CompanyID:    companyID,
		Range:        r,
		AlertsCount:  len(data.Alerts),
		TicketsCount: len(data.Tickets),
		ReportsCount: len(data.Reports),
		Alerts:       recent(data.Alerts, model.RecentLimit),
		Tickets:      recent(data.Tickets, model.RecentLimit),
		Charts:       BuildCharts(data),
	}

	ctxlog.From(ctx).Debug("Built dashboard",
		"companyID", companyID,
		"alerts", dashboard.AlertsCount,
		"tickets", dashboard.TicketsCount,
		"reports", dashboard.ReportsCount,
	)

	return dashboard, nil
}

// Reports returns the reports of the range with their risk bars and score trend
func (d *Dashboard) Reports(ctx context.Context, companyID types.CompanyID, r model.TimeRange) (*model.ReportSummary, error) {
	reports, err := d.repo.ListReports(ctx, companyID, r)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list reports", goerr.V("companyID", companyID))
	}

	return &model.ReportSummary{
		CompanyID: companyID,
		Range:     r,
		Reports:   reports,
		Risk:      chart.BuildBars(chart.Aggregate(chart.RiskLevels, reports, model.ReportRisk)),
		Trend:     chart.BuildTrend(trendSamples(reports)),
	}, nil
}

// BuildCharts derives every dashboard chart from the records
func BuildCharts(data *model.DataSet) model.Charts {
	return model.Charts{
		AlertStatus:  chart.BuildDonut(chart.Aggregate(chart.AlertStatuses, data.Alerts, model.AlertStatus), chart.DonutRadius),
		TicketStatus: chart.BuildBars(chart.Aggregate(chart.TicketStatuses, data.Tickets, model.TicketStatus)),
		ReportRisk:   chart.BuildBars(chart.Aggregate(chart.RiskLevels, data.Reports, model.ReportRisk)),
		ReportTrend:  chart.BuildTrend(trendSamples(data.Reports)),
	}
}

func trendSamples(reports []*model.Report) []chart.Sample {
	samples := make([]chart.Sample, 0, len(reports))
	for _, r := range reports {
		if r == nil {
			continue
		}
		samples = append(samples, r.TrendSample())
	}
	return samples
}

// recent returns the first n records; lists are already newest first
func recent[T any](records []T, n int) []T {
	if len(records) > n {
		records = records[:n]
	}
	out := make([]T, len(records))
	copy(out, records)
	return out
}
