package interfaces

//go:generate moq -out mocks/repository_mock.go -pkg mocks . Repository

import (
	"context"
	"time"

	"github.com/opsnexus/opsnexus/pkg/domain/model"
	"github.com/opsnexus/opsnexus/pkg/domain/types"
)

// Repository defines the interface for record sources and token revocation.
// List operations return records of one company whose timestamp falls in the
// range, newest first.
type Repository interface {
	// Alert operations
	PutAlert(ctx context.Context, alert *model.Alert) error
	ListAlerts(ctx context.Context, companyID types.CompanyID, r model.TimeRange) ([]*model.Alert, error)

	// Ticket operations
	PutTicket(ctx context.Context, ticket *model.Ticket) error
	ListTickets(ctx context.Context, companyID types.CompanyID, r model.TimeRange) ([]*model.Ticket, error)

	// Report operations
	PutReport(ctx context.Context, report *model.Report) error
	ListReports(ctx context.Context, companyID types.CompanyID, r model.TimeRange) ([]*model.Report, error)

	// Token revocation
	RevokeToken(ctx context.Context, token *model.RevokedToken) error
	IsTokenRevoked(ctx context.Context, id types.TokenID) (bool, error)
	PurgeRevokedTokens(ctx context.Context, now time.Time) (int, error)

	// Close closes the repository connection
	Close() error
}
