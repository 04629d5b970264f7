package model

import (
	"github.com/opsnexus/opsnexus/pkg/domain/chart"
	"github.com/opsnexus/opsnexus/pkg/domain/types"
)

// RecentLimit is the number of alerts and tickets listed on the dashboard
const RecentLimit = 5

// Dashboard is the payload rendered by the dashboard page
type Dashboard struct {
	CompanyID    types.CompanyID `json:"company_id"`
	Range        TimeRange       `json:"range"`
	AlertsCount  int             `json:"alerts_count"`
	TicketsCount int             `json:"tickets_count"`
	ReportsCount int             `json:"reports_count"`
	Alerts       []*Alert        `json:"alerts"`
	Tickets      []*Ticket       `json:"tickets"`
	Charts       Charts          `json:"charts"`
}

// Charts groups the chart-ready structures derived from the records
type Charts struct {
	AlertStatus  chart.Donut      `json:"alert_status"`
	TicketStatus []chart.BarEntry `json:"ticket_status"`
	ReportRisk   []chart.BarEntry `json:"report_risk"`
	ReportTrend  chart.Trend      `json:"report_trend"`
}

// ReportSummary is the payload of the reports page
type ReportSummary struct {
	CompanyID types.CompanyID  `json:"company_id"`
	Range     TimeRange        `json:"range"`
	Reports   []*Report        `json:"reports"`
	Risk      []chart.BarEntry `json:"risk"`
	Trend     chart.Trend      `json:"trend"`
}

// DataSet is the full set of records for one company and range
type DataSet struct {
	CompanyID types.CompanyID
	Range     TimeRange
	Alerts    []*Alert
	Tickets   []*Ticket
	Reports   []*Report
}
