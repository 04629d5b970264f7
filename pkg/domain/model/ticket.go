package model

import (
	"time"

	"github.com/opsnexus/opsnexus/pkg/domain/types"
)

// Ticket is a service desk ticket
type Ticket struct {
	ID        types.TicketID  `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Subject   string          `json:"subject"`
	Status    string          `json:"status"` // Open, In Progress, Resolved, Closed
	CompanyID types.CompanyID `json:"company_id"`
}

// TicketStatus returns the raw status, used as the aggregation key
func TicketStatus(t *Ticket) string {
	if t == nil {
		return ""
	}
	return t.Status
}
