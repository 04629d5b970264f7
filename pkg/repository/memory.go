package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/opsnexus/opsnexus/pkg/domain/interfaces"
	"github.com/opsnexus/opsnexus/pkg/domain/model"
	"github.com/opsnexus/opsnexus/pkg/domain/types"
)

// Memory implements Repository interface with in-memory storage
type Memory struct {
	mu            sync.RWMutex
	alerts        map[types.AlertID]*model.Alert
	tickets       map[types.TicketID]*model.Ticket
	reports       map[types.ReportID]*model.Report
	revokedTokens map[types.TokenID]*model.RevokedToken
}

// NewMemory creates a new memory repository
func NewMemory() interfaces.Repository {
	return &Memory{
		alerts:        make(map[types.AlertID]*model.Alert),
		tickets:       make(map[types.TicketID]*model.Ticket),
		reports:       make(map[types.ReportID]*model.Report),
		revokedTokens: make(map[types.TokenID]*model.RevokedToken),
	}
}

// PutAlert saves an alert to memory
func (m *Memory) PutAlert(ctx context.Context, alert *model.Alert) error {
	if alert == nil {
		return goerr.New("alert is nil")
	}
	if alert.ID <= 0 {
		return goerr.New("alert ID must be positive")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Deep copy to prevent external modifications
	alertCopy := *alert
	m.alerts[alert.ID] = &alertCopy
	return nil
}

// ListAlerts lists alerts of a company within the range, newest first
func (m *Memory) ListAlerts(ctx context.Context, companyID types.CompanyID, r model.TimeRange) ([]*model.Alert, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	alerts := make([]*model.Alert, 0)
	for _, alert := range m.alerts {
		if alert.CompanyID == companyID && r.Contains(alert.Timestamp) {
			alertCopy := *alert
			alerts = append(alerts, &alertCopy)
		}
	}

	sort.Slice(alerts, func(i, j int) bool {
		if alerts[i].Timestamp.Equal(alerts[j].Timestamp) {
			return alerts[i].ID > alerts[j].ID
		}
		return alerts[i].Timestamp.After(alerts[j].Timestamp)
	})

	return alerts, nil
}

// PutTicket saves a ticket to memory
func (m *Memory) PutTicket(ctx context.Context, ticket *model.Ticket) error {
	if ticket == nil {
		return goerr.New("ticket is nil")
	}
	if ticket.ID <= 0 {
		return goerr.New("ticket ID must be positive")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ticketCopy := *ticket
	m.tickets[ticket.ID] = &ticketCopy
	return nil
}

// ListTickets lists tickets of a company within the range, newest first
func (m *Memory) ListTickets(ctx context.Context, companyID types.CompanyID, r model.TimeRange) ([]*model.Ticket, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tickets := make([]*model.Ticket, 0)
	for _, ticket := range m.tickets {
		if ticket.CompanyID == companyID && r.Contains(ticket.CreatedAt) {
			ticketCopy := *ticket
			tickets = append(tickets, &ticketCopy)
		}
	}

	sort.Slice(tickets, func(i, j int) bool {
		if tickets[i].CreatedAt.Equal(tickets[j].CreatedAt) {
			return tickets[i].ID > tickets[j].ID
		}
		return tickets[i].CreatedAt.After(tickets[j].CreatedAt)
	})

	return tickets, nil
}

// PutReport saves a report to memory
func (m *Memory) PutReport(ctx context.Context, report *model.Report) error {
	if report == nil {
		return goerr.New("report is nil")
	}
	if report.ID == "" {
		return goerr.New("report ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	reportCopy := *report
	m.reports[report.ID] = &reportCopy
	return nil
}

// ListReports lists reports of a company within the range, newest first
func (m *Memory) ListReports(ctx context.Context, companyID types.CompanyID, r model.TimeRange) ([]*model.Report, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	reports := make([]*model.Report, 0)
	for _, report := range m.reports {
		if report.CompanyID == companyID && r.Contains(report.GeneratedAt) {
			reportCopy := *report
			reports = append(reports, &reportCopy)
		}
	}

	sort.Slice(reports, func(i, j int) bool {
		if reports[i].GeneratedAt.Equal(reports[j].GeneratedAt) {
			return reports[i].ID > reports[j].ID
		}
		return reports[i].GeneratedAt.After(reports[j].GeneratedAt)
	})

	return reports, nil
}

// RevokeToken records a revoked token ID
func (m *Memory) RevokeToken(ctx context.Context, token *model.RevokedToken) error {
	if token == nil {
		return goerr.New("revoked token is nil")
	}
	if token.ID == "" {
		return goerr.New("token ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	tokenCopy := *token
	m.revokedTokens[token.ID] = &tokenCopy
	return nil
}

// IsTokenRevoked checks whether a token ID has been revoked
func (m *Memory) IsTokenRevoked(ctx context.Context, id types.TokenID) (bool, error) {
	if id == "" {
		return false, goerr.New("token ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	_, exists := m.revokedTokens[id]
	return exists, nil
}

// PurgeRevokedTokens removes revocation entries whose token has expired
func (m *Memory) PurgeRevokedTokens(ctx context.Context, now time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	purged := 0
	for id, token := range m.revokedTokens {
		if token.IsExpired(now) {
			delete(m.revokedTokens, id)
			purged++
		}
	}
	return purged, nil
}

// Close does nothing for memory repository
func (m *Memory) Close() error {
	return nil
}
