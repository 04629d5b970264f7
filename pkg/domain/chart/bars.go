package chart

// MinBarWidthPercent keeps small non-zero bars visible.
const MinBarWidthPercent = 8.0

// BarEntry is one horizontal bar; WidthPercent is in [0, 100].
type BarEntry struct {
	Label        string  `json:"label"`
	Value        int     `json:"value"`
	WidthPercent float64 `json:"width_percent"`
}

// BuildBars sizes one bar per bucket relative to the largest bucket. Any
// positive value gets at least MinBarWidthPercent, zero gets exactly 0.
func BuildBars(h Histogram) []BarEntry {
	denominator := float64(max(1, h.Max()))

	bars := make([]BarEntry, 0, len(h))
	for _, b := range h {
		width := 0.0
		if b.Count > 0 {
			width = max(float64(b.Count)/denominator*100, MinBarWidthPercent)
		}
		bars = append(bars, BarEntry{
			Label:        b.Label,
			Value:        b.Count,
			WidthPercent: width,
		})
	}
	return bars
}
