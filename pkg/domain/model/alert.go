package model

import (
	"time"

	"github.com/opsnexus/opsnexus/pkg/domain/types"
)

// Alert is a monitoring alert raised for a host/service pair
type Alert struct {
	ID        types.AlertID   `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Host      string          `json:"host"`
	Service   string          `json:"service"`
	Status    string          `json:"status"` // CRITICAL, WARNING, OK, UNKNOWN (case may vary)
	Message   string          `json:"message"`
	CompanyID types.CompanyID `json:"company_id"`
}

// AlertStatus returns the raw status, used as the aggregation key
func AlertStatus(a *Alert) string {
	if a == nil {
		return ""
	}
	return a.Status
}
