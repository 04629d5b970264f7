package chart

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

const (
	// TrendWindowSize is how many of the most recent samples are plotted.
	TrendWindowSize = 6

	TrendWidth   = 320.0
	TrendHeight  = 140.0
	TrendPadding = 14.0
)

// Sample is one timestamped value fed into BuildTrend.
type Sample struct {
	At    time.Time
	Label string
	Score float64
}

// Coord is a point in plot coordinates (origin at the top-left corner).
type Coord struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TrendPoint is a plotted sample.
type TrendPoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// TrendSummary is computed over the plotted window.
type TrendSummary struct {
	Average float64 `json:"average"`
	Latest  float64 `json:"latest"`
}

// Trend is a sparkline: the plotted points, the stroke polyline and the closed
// area polygon beneath it.
type Trend struct {
	Width   float64      `json:"width"`
	Height  float64      `json:"height"`
	Padding float64      `json:"padding"`
	Points  []TrendPoint `json:"points"`
	Line    []Coord      `json:"line"`
	Area    []Coord      `json:"area"`
	Summary TrendSummary `json:"summary"`

	LinePoints string `json:"line_points"`
	AreaPoints string `json:"area_points"`
}

// BuildTrend sorts samples by time, keeps the most recent TrendWindowSize and
// maps them into the fixed plot area. Higher scores plot higher; when every
// score is equal the points sit on the baseline.
func BuildTrend(samples []Sample) Trend {
	t := Trend{
		Width:   TrendWidth,
		Height:  TrendHeight,
		Padding: TrendPadding,
		Points:  []TrendPoint{},
		Line:    []Coord{},
		Area:    []Coord{},
	}

	window := recentWindow(samples, TrendWindowSize)
	if len(window) == 0 {
		return t
	}

	lo, hi := window[0].Score, window[0].Score
	for _, s := range window {
		lo = math.Min(lo, s.Score)
		hi = math.Max(hi, s.Score)
	}

	innerWidth := TrendWidth - 2*TrendPadding
	innerHeight := TrendHeight - 2*TrendPadding
	baseline := TrendHeight - TrendPadding

	for i, s := range window {
		x := TrendWidth / 2
		if len(window) > 1 {
			x = TrendPadding + float64(i)*innerWidth/float64(len(window)-1)
		}
		y := baseline - heightRatio(s.Score, lo, hi)*innerHeight

		t.Points = append(t.Points, TrendPoint{X: x, Y: y, Label: s.Label, Score: s.Score})
		t.Line = append(t.Line, Coord{X: x, Y: y})
	}

	t.Area = append(t.Area, t.Line...)
	t.Area = append(t.Area,
		Coord{X: TrendWidth - TrendPadding, Y: baseline},
		Coord{X: TrendPadding, Y: baseline},
	)

	t.LinePoints = SVGPoints(t.Line)
	t.AreaPoints = SVGPoints(t.Area)
	t.Summary = TrendSummary{
		Average: roundHalfUp(mean(window)),
		Latest:  window[len(window)-1].Score,
	}
	return t
}

// recentWindow returns a sorted copy of the last n samples. Non-finite scores
// are treated as 0.
func recentWindow(samples []Sample, n int) []Sample {
	sorted := make([]Sample, len(samples))
	copy(sorted, samples)
	for i := range sorted {
		sorted[i].Score = finiteOrZero(sorted[i].Score)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].At.Before(sorted[j].At)
	})

	if len(sorted) > n {
		sorted = sorted[len(sorted)-n:]
	}
	return sorted
}

// heightRatio places v within [lo, hi] as a fraction of the plot height. Spans
// narrower than 1 are widened to 1. When hi-lo overflows the operands are
// halved first.
func heightRatio(v, lo, hi float64) float64 {
	if span := hi - lo; !math.IsInf(span, 0) {
		return (v - lo) / math.Max(1, span)
	}
	return (v/2 - lo/2) / (hi/2 - lo/2)
}

// mean falls back to summing pre-divided scores when the plain sum overflows.
func mean(window []Sample) float64 {
	n := float64(len(window))
	sum := 0.0
	for _, s := range window {
		sum += s.Score
	}
	if !math.IsInf(sum, 0) {
		return sum / n
	}
	sum = 0
	for _, s := range window {
		sum += s.Score / n
	}
	return sum
}

// SVGPoints formats coordinates for an SVG points attribute.
func SVGPoints(coords []Coord) string {
	parts := make([]string, 0, len(coords))
	for _, c := range coords {
		parts = append(parts, fmt.Sprintf("%.2f,%.2f", c.X, c.Y))
	}
	return strings.Join(parts, " ")
}

// roundHalfUp rounds .5 towards positive infinity, like JavaScript's Math.round.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
