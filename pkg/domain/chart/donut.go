package chart

import "math"

const (
	// DonutRadius is the radius of the dashboard donut, in SVG user units.
	DonutRadius = 40.0
	// DonutRotation is where the first segment starts, in degrees (twelve o'clock).
	DonutRotation = -90.0
)

// DonutSegment is one arc of the donut. ArcOffset is the distance along the
// circumference from the start rotation to where this arc begins.
type DonutSegment struct {
	Label     string  `json:"label"`
	Value     int     `json:"value"`
	ArcLength float64 `json:"arc_length"`
	ArcOffset float64 `json:"arc_offset"`
}

// Donut is the geometry of a donut chart.
type Donut struct {
	Radius        float64        `json:"radius"`
	Circumference float64        `json:"circumference"`
	Rotation      float64        `json:"rotation"`
	Total         int            `json:"total"`
	Segments      []DonutSegment `json:"segments"`
}

// BuildDonut lays the non-empty buckets of h out contiguously around a circle
// of the given radius, proportionally to their share of the total. A
// non-positive radius falls back to DonutRadius.
func BuildDonut(h Histogram, radius float64) Donut {
	if !(radius > 0) || math.IsInf(radius, 0) {
		radius = DonutRadius
	}

	circumference := 2 * math.Pi * radius
	d := Donut{
		Radius:        radius,
		Circumference: circumference,
		Rotation:      DonutRotation,
		Total:         h.Total(),
		Segments:      []DonutSegment{},
	}
	if d.Total == 0 {
		return d
	}

	offset := 0.0
	for _, b := range h {
		if b.Count <= 0 {
			continue
		}
		arc := float64(b.Count) / float64(d.Total) * circumference
		d.Segments = append(d.Segments, DonutSegment{
			Label:     b.Label,
			Value:     b.Count,
			ArcLength: arc,
			ArcOffset: offset,
		})
		offset += arc
	}
	return d
}
