package slack

import (
	"fmt"
	"math"
	"strings"

	"github.com/opsnexus/opsnexus/pkg/domain/chart"
	"github.com/opsnexus/opsnexus/pkg/domain/model"
	"github.com/slack-go/slack"
)

// BarCells is the number of characters used by a full-width text bar
const BarCells = 20

// BlockBuilder provides methods to build Slack message blocks
type BlockBuilder struct {
	frontendURL string
}

// NewBlockBuilder creates a new BlockBuilder instance. frontendURL, when set,
// is linked from the digest footer.
func NewBlockBuilder(frontendURL string) *BlockBuilder {
	return &BlockBuilder{frontendURL: frontendURL}
}

// BuildDigestBlocks renders the dashboard as a Slack message
func (b *BlockBuilder) BuildDigestBlocks(d *model.Dashboard) []slack.Block {
	lastDay := d.Range.End.AddDate(0, 0, -1)
	blocks := []slack.Block{
		slack.NewHeaderBlock(
			slack.NewTextBlockObject(slack.PlainTextType,
				fmt.Sprintf("📊 OpsNexus digest for company %d", d.CompanyID), true, false),
		),
		slack.NewContextBlock("",
			slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("Period: %s to %s",
					d.Range.Start.Format(model.DateLayout),
					lastDay.Format(model.DateLayout)),
				false, false),
		),
		slack.NewSectionBlock(nil, []*slack.TextBlockObject{
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Alerts*\n%d", d.AlertsCount), false, false),
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Tickets*\n%d", d.TicketsCount), false, false),
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Reports*\n%d", d.ReportsCount), false, false),
		}, nil),
		slack.NewDividerBlock(),
		chartSection("Alert status", DonutLines(d.Charts.AlertStatus)),
		chartSection("Ticket status", BarLines(d.Charts.TicketStatus)),
		chartSection("Report risk", BarLines(d.Charts.ReportRisk)),
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, trendText(d.Charts.ReportTrend), false, false),
			nil, nil,
		),
	}

	if b.frontendURL != "" {
		blocks = append(blocks, slack.NewContextBlock("",
			slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("<%s|Open the dashboard>", b.frontendURL), false, false),
		))
	}

	return blocks
}

// BuildFallbackText returns the notification text shown by clients that do
// not render blocks
func (b *BlockBuilder) BuildFallbackText(d *model.Dashboard) string {
	return fmt.Sprintf("OpsNexus digest: %d alerts, %d tickets, %d reports",
		d.AlertsCount, d.TicketsCount, d.ReportsCount)
}

func chartSection(title, body string) *slack.SectionBlock {
	if body == "" {
		body = "_No data_"
	} else {
		body = "```" + body + "```"
	}
	return slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*%s*\n%s", title, body), false, false),
		nil, nil,
	)
}

func trendText(t chart.Trend) string {
	if len(t.Points) == 0 {
		return "*Report score trend*\n_No reports in this period_"
	}
	labels := make([]string, 0, len(t.Points))
	for _, p := range t.Points {
		labels = append(labels, fmt.Sprintf("%s: %g", p.Label, p.Score))
	}
	return fmt.Sprintf("*Report score trend*\nAverage %g, latest %g\n%s",
		t.Summary.Average, t.Summary.Latest, strings.Join(labels, " · "))
}

// TextBar renders a percentage as a fixed-width bar of block characters
func TextBar(percent float64) string {
	filled := int(math.Round(percent / 100 * BarCells))
	filled = max(0, min(BarCells, filled))
	return strings.Repeat("█", filled) + strings.Repeat("░", BarCells-filled)
}

// BarLines renders bar entries one per line. The bar width is the entry's
// proportional width, so the largest category fills the bar.
func BarLines(entries []chart.BarEntry) string {
	if len(entries) == 0 {
		return ""
	}
	width := labelWidth(len(entries), func(i int) string { return entries[i].Label })

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%-*s %s %d", width, e.Label, TextBar(e.WidthPercent), e.Value))
	}
	return strings.Join(lines, "\n")
}

// DonutLines renders each donut segment with its share of the total
func DonutLines(d chart.Donut) string {
	if d.Total == 0 || len(d.Segments) == 0 {
		return ""
	}
	width := labelWidth(len(d.Segments), func(i int) string { return d.Segments[i].Label })

	lines := make([]string, 0, len(d.Segments))
	for _, s := range d.Segments {
		share := float64(s.Value) / float64(d.Total) * 100
		lines = append(lines, fmt.Sprintf("%-*s %s %d (%.0f%%)", width, s.Label, TextBar(share), s.Value, share))
	}
	return strings.Join(lines, "\n")
}

func labelWidth(n int, label func(int) string) int {
	w := 0
	for i := range n {
		w = max(w, len(label(i)))
	}
	return w
}
