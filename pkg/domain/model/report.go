package model

import (
	"encoding/json"
	"time"

	"github.com/opsnexus/opsnexus/pkg/domain/chart"
	"github.com/opsnexus/opsnexus/pkg/domain/types"
)

// Report is a generated assessment report with a numeric score
type Report struct {
	ID          types.ReportID  `json:"id"`
	Title       string          `json:"title"`
	Client      string          `json:"client"`
	Source      string          `json:"source"`
	Status      string          `json:"status"`     // READY, IN_REVIEW, ...
	RiskLevel   string          `json:"risk_level"` // LOW, MEDIUM, HIGH
	Score       float64         `json:"score"`
	GeneratedAt time.Time       `json:"generated_at"`
	CompanyID   types.CompanyID `json:"company_id"`
}

// UnmarshalJSON decodes a report, accepting any JSON value for score.
// Strings are parsed; null, missing and non-numeric values become 0.
func (r *Report) UnmarshalJSON(data []byte) error {
	type alias Report
	aux := struct {
		*alias
		Score any `json:"score"`
	}{alias: (*alias)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	r.Score = chart.NumberOrZero(aux.Score)
	return nil
}

// ReportRisk returns the raw risk level, used as the aggregation key
func ReportRisk(r *Report) string {
	if r == nil {
		return ""
	}
	return r.RiskLevel
}

// TrendSample converts the report into a trend input sample labelled with its
// generation date
func (r *Report) TrendSample() chart.Sample {
	return chart.Sample{
		At:    r.GeneratedAt,
		Label: r.GeneratedAt.Format("Jan 2"),
		Score: r.Score,
	}
}
