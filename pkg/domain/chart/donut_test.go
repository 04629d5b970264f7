package chart_test

import (
	"math"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/opsnexus/opsnexus/pkg/domain/chart"
)

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestBuildDonut(t *testing.T) {
	h := chart.Histogram{
		{Label: "CRITICAL", Count: 2},
		{Label: "WARNING", Count: 0},
		{Label: "OK", Count: 1},
		{Label: "UNKNOWN", Count: 1},
	}
	d := chart.BuildDonut(h, chart.DonutRadius)
	circumference := 2 * math.Pi * chart.DonutRadius

	t.Run("geometry", func(t *testing.T) {
		gt.True(t, approx(circumference, d.Circumference))
		gt.Equal(t, 40.0, d.Radius)
		gt.Equal(t, -90.0, d.Rotation)
		gt.Equal(t, 4, d.Total)
	})

	t.Run("zero segments are filtered, canonical order kept", func(t *testing.T) {
		gt.A(t, d.Segments).Length(3)
		gt.Equal(t, "CRITICAL", d.Segments[0].Label)
		gt.Equal(t, "OK", d.Segments[1].Label)
		gt.Equal(t, "UNKNOWN", d.Segments[2].Label)
	})

	t.Run("arcs are proportional and contiguous", func(t *testing.T) {
		gt.True(t, approx(circumference/2, d.Segments[0].ArcLength))
		gt.True(t, approx(circumference/4, d.Segments[1].ArcLength))
		gt.True(t, approx(0, d.Segments[0].ArcOffset))
		gt.True(t, approx(d.Segments[0].ArcLength, d.Segments[1].ArcOffset))
		gt.True(t, approx(d.Segments[0].ArcLength+d.Segments[1].ArcLength, d.Segments[2].ArcOffset))

		sum := 0.0
		for _, s := range d.Segments {
			gt.True(t, s.Value > 0)
			sum += s.ArcLength
		}
		gt.True(t, approx(circumference, sum))
	})
}

func TestBuildDonutOrderIsNotByMagnitude(t *testing.T) {
	h := chart.Histogram{
		{Label: "CRITICAL", Count: 1},
		{Label: "WARNING", Count: 5},
		{Label: "OK", Count: 9},
	}
	d := chart.BuildDonut(h, chart.DonutRadius)
	gt.A(t, d.Segments).Length(3)
	gt.Equal(t, "CRITICAL", d.Segments[0].Label)
	gt.Equal(t, "WARNING", d.Segments[1].Label)
	gt.Equal(t, "OK", d.Segments[2].Label)
}

func TestBuildDonutEmpty(t *testing.T) {
	testCases := []struct {
		name string
		h    chart.Histogram
	}{
		{"all zero", chart.Histogram{{Label: "CRITICAL"}, {Label: "OK"}}},
		{"no buckets", chart.Histogram{}},
		{"nil", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := chart.BuildDonut(tc.h, chart.DonutRadius)
			gt.Equal(t, 0, d.Total)
			gt.True(t, d.Segments != nil)
			gt.A(t, d.Segments).Length(0)
		})
	}
}

func TestBuildDonutRadiusFallback(t *testing.T) {
	for _, r := range []float64{0, -3, math.NaN(), math.Inf(1)} {
		d := chart.BuildDonut(chart.Histogram{{Label: "OK", Count: 1}}, r)
		gt.Equal(t, chart.DonutRadius, d.Radius)
	}

	d := chart.BuildDonut(chart.Histogram{{Label: "OK", Count: 1}}, 10)
	gt.True(t, approx(2*math.Pi*10, d.Segments[0].ArcLength))
}

func TestBuildDonutFromAggregateSumsToRecognizedShare(t *testing.T) {
	input := records("CRITICAL", "critical", "OK", "bogus", "WARNING")
	h := chart.Aggregate(chart.AlertStatuses, input, statusOf)
	d := chart.BuildDonut(h, chart.DonutRadius)

	sum := 0.0
	for _, s := range d.Segments {
		sum += s.ArcLength
	}
	recognized := float64(h.Total())
	gt.True(t, approx(d.Circumference*(recognized/float64(d.Total)), sum))
	gt.Equal(t, d, chart.BuildDonut(h, chart.DonutRadius))
}
