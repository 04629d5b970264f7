package chart

// Bucket is the count of one category.
type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Histogram holds one bucket per category, in canonical order.
type Histogram []Bucket

// Aggregate counts the records of each recognized category. Records whose
// status does not match the set are dropped.
func Aggregate[T any](set CategorySet, records []T, status func(T) string) Histogram {
	h := make(Histogram, len(set.Labels))
	index := make(map[string]int, len(set.Labels))
	for i, label := range set.Labels {
		h[i] = Bucket{Label: label}
		if _, dup := index[label]; !dup {
			index[label] = i
		}
	}

	for _, r := range records {
		if label, ok := set.Match(status(r)); ok {
			h[index[label]].Count++
		}
	}
	return h
}

// Total returns the sum of all counts.
func (h Histogram) Total() int {
	total := 0
	for _, b := range h {
		total += b.Count
	}
	return total
}

// Max returns the largest count, or 0 for an empty histogram.
func (h Histogram) Max() int {
	m := 0
	for _, b := range h {
		m = max(m, b.Count)
	}
	return m
}

// Count returns the count for label, 0 when the label is not part of the histogram.
func (h Histogram) Count(label string) int {
	for _, b := range h {
		if b.Label == label {
			return b.Count
		}
	}
	return 0
}
