package chart_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/opsnexus/opsnexus/pkg/domain/chart"
)

type record struct {
	Status string
}

func statusOf(r record) string { return r.Status }

func records(statuses ...string) []record {
	out := make([]record, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, record{Status: s})
	}
	return out
}

func TestAggregateAlerts(t *testing.T) {
	t.Run("case-insensitive alert statuses", func(t *testing.T) {
		h := chart.Aggregate(chart.AlertStatuses, records("CRITICAL", "critical", "OK"), statusOf)

		gt.A(t, h).Length(4)
		gt.Equal(t, chart.Histogram{
			{Label: "CRITICAL", Count: 2},
			{Label: "WARNING", Count: 0},
			{Label: "OK", Count: 1},
			{Label: "UNKNOWN", Count: 0},
		}, h)
	})

	t.Run("unrecognized and missing statuses are dropped", func(t *testing.T) {
		h := chart.Aggregate(chart.AlertStatuses, records("WARNING", "", "DOWN", "warning "), statusOf)
		gt.Equal(t, 1, h.Count("WARNING"))
		gt.Equal(t, 1, h.Total())
	})

	t.Run("nil input yields zero counts in canonical order", func(t *testing.T) {
		h := chart.Aggregate[record](chart.AlertStatuses, nil, statusOf)
		gt.A(t, h).Length(4)
		gt.Equal(t, "CRITICAL", h[0].Label)
		gt.Equal(t, "UNKNOWN", h[3].Label)
		gt.Equal(t, 0, h.Total())
		gt.Equal(t, 0, h.Max())
	})
}

func TestAggregateTickets(t *testing.T) {
	h := chart.Aggregate(chart.TicketStatuses, records("Open", "open", "In Progress", "in progress", "Closed", "Resolved", "Resolved"), statusOf)

	gt.Equal(t, chart.Histogram{
		{Label: "Open", Count: 1},
		{Label: "In Progress", Count: 1},
		{Label: "Resolved", Count: 2},
		{Label: "Closed", Count: 1},
	}, h)
}

func TestAggregateRiskLevels(t *testing.T) {
	h := chart.Aggregate(chart.RiskLevels, records("low", "HIGH", "High", "critical"), statusOf)
	gt.Equal(t, 1, h.Count("LOW"))
	gt.Equal(t, 0, h.Count("MEDIUM"))
	gt.Equal(t, 2, h.Count("HIGH"))
}

func TestHistogramSumBound(t *testing.T) {
	testCases := []struct {
		name       string
		statuses   []string
		recognized bool
	}{
		{"all recognized", []string{"OK", "CRITICAL", "unknown", "Warning"}, true},
		{"some unrecognized", []string{"OK", "PENDING", "CRITICAL"}, false},
		{"none recognized", []string{"x", "y"}, false},
		{"empty", nil, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := chart.Aggregate(chart.AlertStatuses, records(tc.statuses...), statusOf)
			gt.True(t, h.Total() <= len(tc.statuses))
			gt.Equal(t, tc.recognized, h.Total() == len(tc.statuses))
		})
	}
}

func TestCategorySetMatch(t *testing.T) {
	label, ok := chart.AlertStatuses.Match("critical")
	gt.True(t, ok)
	gt.Equal(t, "CRITICAL", label)

	_, ok = chart.TicketStatuses.Match("closed")
	gt.False(t, ok)

	label, ok = chart.TicketStatuses.Match("Closed")
	gt.True(t, ok)
	gt.Equal(t, "Closed", label)
}

func TestAggregateCustomSet(t *testing.T) {
	set := chart.CategorySet{
		Labels:    []string{"up", "down"},
		Normalize: func(s string) string { return strings.ToLower(strings.TrimSpace(s)) },
	}
	h := chart.Aggregate(set, records(" UP", "down ", "Down", "sideways"), statusOf)

	gt.Equal(t, chart.Histogram{{Label: "up", Count: 1}, {Label: "down", Count: 2}}, h)
	for _, b := range h {
		label, ok := set.Match(b.Label)
		gt.True(t, ok)
		gt.Equal(t, b.Label, label)
	}
}

func TestAggregateIsIdempotent(t *testing.T) {
	input := records("OK", "critical", "WARNING", "OK")
	first := chart.Aggregate(chart.AlertStatuses, input, statusOf)
	second := chart.Aggregate(chart.AlertStatuses, input, statusOf)
	gt.Equal(t, first, second)
	gt.Equal(t, "critical", input[1].Status)
}
