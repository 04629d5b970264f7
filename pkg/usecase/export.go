package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/opsnexus/opsnexus/pkg/domain/chart"
	"github.com/opsnexus/opsnexus/pkg/domain/model"
	"github.com/opsnexus/opsnexus/pkg/domain/types"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the exported workbook
const (
	SheetDashboard = "Dashboard"
	SheetAlerts    = "Alerts Data"
	SheetTickets   = "Tickets Data"
	SheetReports   = "Reports Data"
)

// Export implements ExportUseCase with excelize
type Export struct {
	dashboard DashboardUseCase
	now       func() time.Time
}

// NewExport creates a new Export use case
func NewExport(dashboard DashboardUseCase, now func() time.Time) ExportUseCase {
	if now == nil {
		now = time.Now
	}
	return &Export{
		dashboard: dashboard,
		now:       now,
	}
}

// Workbook renders the records of the range as an xlsx file with a summary
// sheet holding the distribution tables and pie charts, followed by one data
// sheet per non-empty record kind
func (e *Export) Workbook(ctx context.Context, companyID types.CompanyID, r model.TimeRange) (*model.ExportFile, error) {
	data, err := e.dashboard.DataSet(ctx, companyID, r)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch export data")
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			ctxlog.From(ctx).Warn("Failed to close workbook", "error", err)
		}
	}()

	if err := f.SetSheetName("Sheet1", SheetDashboard); err != nil {
		return nil, goerr.Wrap(err, "failed to rename dashboard sheet")
	}

	if err := writeDashboardSheet(f, data); err != nil {
		return nil, err
	}

	if len(data.Alerts) > 0 {
		rows := make([][]any, 0, len(data.Alerts))
		for _, a := range data.Alerts {
			rows = append(rows, []any{int64(a.ID), a.Timestamp, a.Host, a.Service, a.Status, a.Message})
		}
		if err := writeDataSheet(f, SheetAlerts,
			[]any{"id", "timestamp", "host", "service", "status", "message"}, rows); err != nil {
			return nil, err
		}
	}

	if len(data.Tickets) > 0 {
		rows := make([][]any, 0, len(data.Tickets))
		for _, t := range data.Tickets {
			rows = append(rows, []any{int64(t.ID), t.CreatedAt, t.Subject, t.Status})
		}
		if err := writeDataSheet(f, SheetTickets,
			[]any{"id", "created_at", "subject", "status"}, rows); err != nil {
			return nil, err
		}
	}

	if len(data.Reports) > 0 {
		rows := make([][]any, 0, len(data.Reports))
		for _, rp := range data.Reports {
			rows = append(rows, []any{rp.ID.String(), rp.GeneratedAt, rp.Title, rp.Client, rp.Source, rp.Status, rp.RiskLevel, rp.Score})
		}
		if err := writeDataSheet(f, SheetReports,
			[]any{"id", "generated_at", "title", "client", "source", "status", "risk_level", "score"}, rows); err != nil {
			return nil, err
		}
	}

	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to write workbook")
	}

	file := &model.ExportFile{
		Filename:    model.ExportFilename(e.now()),
		ContentType: model.XLSXContentType,
		Data:        buf.Bytes(),
	}

	ctxlog.From(ctx).Info("Exported workbook",
		"companyID", companyID,
		"filename", file.Filename,
		"bytes", len(file.Data),
	)

	return file, nil
}

// distribution is one status table on the dashboard sheet
type distribution struct {
	title     string
	chartName string
	series    string
	col       int // 1-based column of the label column
	histogram chart.Histogram
}

func writeDashboardSheet(f *excelize.File, data *model.DataSet) error {
	if err := f.SetColWidth(SheetDashboard, "A", "Z", 20); err != nil {
		return goerr.Wrap(err, "failed to set column width")
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return goerr.Wrap(err, "failed to create title style")
	}
	if err := f.SetCellValue(SheetDashboard, "A1", "OpsNexus Report Dashboard"); err != nil {
		return goerr.Wrap(err, "failed to write title")
	}
	if err := f.SetCellStyle(SheetDashboard, "A1", "A1", titleStyle); err != nil {
		return goerr.Wrap(err, "failed to style title")
	}

	tables := []distribution{
		{
			title:     "Alert Status Distribution",
			chartName: "Alert Status",
			series:    "Alerts",
			col:       1,
			histogram: chart.Aggregate(chart.AlertStatuses, data.Alerts, model.AlertStatus),
		},
		{
			title:     "Ticket Status Distribution",
			chartName: "Ticket Status",
			series:    "Tickets",
			col:       5,
			histogram: chart.Aggregate(chart.TicketStatuses, data.Tickets, model.TicketStatus),
		},
		{
			title:     "Report Risk Distribution",
			chartName: "Report Risk",
			series:    "Reports",
			col:       9,
			histogram: chart.Aggregate(chart.RiskLevels, data.Reports, model.ReportRisk),
		},
	}

	for _, t := range tables {
		if t.histogram.Total() == 0 {
			continue
		}
		if err := writeDistribution(f, t); err != nil {
			return err
		}
	}
	return nil
}

func writeDistribution(f *excelize.File, t distribution) error {
	titleCell, err := excelize.CoordinatesToCellName(t.col, 3)
	if err != nil {
		return goerr.Wrap(err, "failed to resolve cell", goerr.V("col", t.col))
	}
	if err := f.SetCellValue(SheetDashboard, titleCell, t.title); err != nil {
		return goerr.Wrap(err, "failed to write distribution title", goerr.V("title", t.title))
	}

	for i, b := range t.histogram {
		cell, err := excelize.CoordinatesToCellName(t.col, 4+i)
		if err != nil {
			return goerr.Wrap(err, "failed to resolve cell")
		}
		if err := f.SetSheetRow(SheetDashboard, cell, &[]any{b.Label, b.Count}); err != nil {
			return goerr.Wrap(err, "failed to write distribution row", goerr.V("label", b.Label))
		}
	}

	first, last := 4, 4+len(t.histogram)-1
	labelCol, err := excelize.ColumnNumberToName(t.col)
	if err != nil {
		return goerr.Wrap(err, "failed to resolve column", goerr.V("col", t.col))
	}
	valueCol, err := excelize.ColumnNumberToName(t.col + 1)
	if err != nil {
		return goerr.Wrap(err, "failed to resolve column", goerr.V("col", t.col+1))
	}

	anchor, err := excelize.CoordinatesToCellName(t.col, 10)
	if err != nil {
		return goerr.Wrap(err, "failed to resolve cell")
	}

	if err := f.AddChart(SheetDashboard, anchor, &excelize.Chart{
		Type: excelize.Pie,
		Series: []excelize.ChartSeries{
			{
				Name:       t.series,
				Categories: rangeRef(labelCol, first, last),
				Values:     rangeRef(valueCol, first, last),
			},
		},
		Title: []excelize.RichTextRun{{Text: t.chartName}},
	}); err != nil {
		return goerr.Wrap(err, "failed to add chart", goerr.V("chart", t.chartName))
	}
	return nil
}

func rangeRef(col string, first, last int) string {
	return fmt.Sprintf("%s!$%s$%d:$%s$%d", SheetDashboard, col, first, col, last)
}

func writeDataSheet(f *excelize.File, name string, header []any, rows [][]any) error {
	if _, err := f.NewSheet(name); err != nil {
		return goerr.Wrap(err, "failed to create sheet", goerr.V("sheet", name))
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return goerr.Wrap(err, "failed to write header", goerr.V("sheet", name))
	}

	dateStyle, err := f.NewStyle(&excelize.Style{NumFmt: 22})
	if err != nil {
		return goerr.Wrap(err, "failed to create date style")
	}
	if err := f.SetColStyle(name, "B", dateStyle); err != nil {
		return goerr.Wrap(err, "failed to style date column", goerr.V("sheet", name))
	}
	if err := f.SetColWidth(name, "A", "H", 20); err != nil {
		return goerr.Wrap(err, "failed to set column width", goerr.V("sheet", name))
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return goerr.Wrap(err, "failed to resolve cell")
		}
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return goerr.Wrap(err, "failed to write row", goerr.V("sheet", name), goerr.V("row", i+2))
		}
	}
	return nil
}
