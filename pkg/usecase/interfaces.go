package usecase

import (
	"context"

	"github.com/opsnexus/opsnexus/pkg/domain/model"
	"github.com/opsnexus/opsnexus/pkg/domain/types"
)

// AuthUseCase defines the interface for authentication operations
type AuthUseCase interface {
	// Login verifies the credentials and issues a signed access token
	Login(ctx context.Context, username, password string) (*model.AccessToken, error)

	// Authenticate validates an access token and resolves its identity
	Authenticate(ctx context.Context, rawToken string) (*model.AuthContext, error)

	// Logout revokes the access token until it expires
	Logout(ctx context.Context, rawToken string) error

	// GetUser returns the public profile of a user
	GetUser(ctx context.Context, username types.Username) (*model.User, error)
}

// DashboardUseCase defines the interface for building dashboard views
type DashboardUseCase interface {
	// Build returns counts, recent records and charts for the company and range
	Build(ctx context.Context, companyID types.CompanyID, r model.TimeRange) (*model.Dashboard, error)

	// Reports returns the reports of the range with their risk bars and score trend
	Reports(ctx context.Context, companyID types.CompanyID, r model.TimeRange) (*model.ReportSummary, error)

	// DataSet returns every record of the company within the range
	DataSet(ctx context.Context, companyID types.CompanyID, r model.TimeRange) (*model.DataSet, error)
}

// ExportUseCase defines the interface for spreadsheet exports
type ExportUseCase interface {
	// Workbook renders the records of the range as an xlsx file
	Workbook(ctx context.Context, companyID types.CompanyID, r model.TimeRange) (*model.ExportFile, error)
}

// DigestUseCase defines the interface for posting dashboard digests to Slack
type DigestUseCase interface {
	// Post renders the dashboard of the range and posts it to the digest channel
	Post(ctx context.Context, companyID types.CompanyID, r model.TimeRange) error

	// IsEnabled reports whether a Slack channel is configured
	IsEnabled() bool
}
