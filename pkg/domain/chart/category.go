package chart

import "strings"

// CategorySet is a fixed, ordered list of recognized labels. The order is the
// canonical order used by every derived structure.
type CategorySet struct {
	Labels []string
	// Normalize is applied to a raw status before matching. Nil means verbatim.
	Normalize func(string) string
}

// Match returns the canonical label for status, if it is recognized.
func (s CategorySet) Match(status string) (string, bool) {
	if s.Normalize != nil {
		status = s.Normalize(status)
	}
	for _, label := range s.Labels {
		if label == status {
			return label, true
		}
	}
	return "", false
}

// Canonical label sets. Alert statuses and risk levels are upper-cased before
// matching, ticket statuses must match exactly.
var (
	AlertStatuses = CategorySet{
		Labels:    []string{"CRITICAL", "WARNING", "OK", "UNKNOWN"},
		Normalize: strings.ToUpper,
	}
	TicketStatuses = CategorySet{
		Labels: []string{"Open", "In Progress", "Resolved", "Closed"},
	}
	RiskLevels = CategorySet{
		Labels:    []string{"LOW", "MEDIUM", "HIGH"},
		Normalize: strings.ToUpper,
	}
)
