package repository

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/opsnexus/opsnexus/pkg/domain/interfaces"
	"github.com/opsnexus/opsnexus/pkg/domain/model"
	"github.com/opsnexus/opsnexus/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// Collection names
	alertsCollection        = "alerts"
	ticketsCollection       = "tickets"
	reportsCollection       = "reports"
	revokedTokensCollection = "revoked_tokens"

	// Field names. Firestore field names match Go struct field names.
	fieldCompanyID = "CompanyID"
	fieldExpiresAt = "ExpiresAt"
)

// Firestore implements Repository interface with Firestore
type Firestore struct {
	client *firestore.Client
}

// NewFirestore creates a new Firestore repository
func NewFirestore(ctx context.Context, projectID, databaseID string) (interfaces.Repository, error) {
	logger := ctxlog.From(ctx)

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Fail fast on invalid project or missing permissions
	_, err = client.Collection(alertsCollection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore repository initialized successfully",
		"projectID", projectID,
		"databaseID", databaseID,
	)

	return &Firestore{
		client: client,
	}, nil
}

// PutAlert saves an alert to Firestore
func (f *Firestore) PutAlert(ctx context.Context, alert *model.Alert) error {
	if alert == nil {
		return goerr.New("alert is nil")
	}
	if alert.ID <= 0 {
		return goerr.New("alert ID must be positive")
	}

	_, err := f.client.Collection(alertsCollection).Doc(alert.ID.String()).Set(ctx, alert)
	if err != nil {
		return goerr.Wrap(err, "failed to save alert to firestore", goerr.V("alertID", alert.ID))
	}

	return nil
}

// ListAlerts lists alerts of a company within the range, newest first
func (f *Firestore) ListAlerts(ctx context.Context, companyID types.CompanyID, r model.TimeRange) ([]*model.Alert, error) {
	alerts, err := listByCompany[model.Alert](ctx, f.client, alertsCollection, companyID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list alerts", goerr.V("companyID", companyID))
	}

	filtered := make([]*model.Alert, 0, len(alerts))
	for _, a := range alerts {
		if r.Contains(a.Timestamp) {
			filtered = append(filtered, a)
		}
	}

	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].Timestamp.Equal(filtered[j].Timestamp) {
			return filtered[i].ID > filtered[j].ID
		}
		return filtered[i].Timestamp.After(filtered[j].Timestamp)
	})

	return filtered, nil
}

// PutTicket saves a ticket to Firestore
func (f *Firestore) PutTicket(ctx context.Context, ticket *model.Ticket) error {
	if ticket == nil {
		return goerr.New("ticket is nil")
	}
	if ticket.ID <= 0 {
		return goerr.New("ticket ID must be positive")
	}

	_, err := f.client.Collection(ticketsCollection).Doc(ticket.ID.String()).Set(ctx, ticket)
	if err != nil {
		return goerr.Wrap(err, "failed to save ticket to firestore", goerr.V("ticketID", ticket.ID))
	}

	return nil
}

// ListTickets lists tickets of a company within the range, newest first
func (f *Firestore) ListTickets(ctx context.Context, companyID types.CompanyID, r model.TimeRange) ([]*model.Ticket, error) {
	tickets, err := listByCompany[model.Ticket](ctx, f.client, ticketsCollection, companyID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list tickets", goerr.V("companyID", companyID))
	}

	filtered := make([]*model.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if r.Contains(t.CreatedAt) {
			filtered = append(filtered, t)
		}
	}

	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].CreatedAt.Equal(filtered[j].CreatedAt) {
			return filtered[i].ID > filtered[j].ID
		}
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	return filtered, nil
}

// PutReport saves a report to Firestore
func (f *Firestore) PutReport(ctx context.Context, report *model.Report) error {
	if report == nil {
		return goerr.New("report is nil")
	}
	if report.ID == "" {
		return goerr.New("report ID is empty")
	}

	_, err := f.client.Collection(reportsCollection).Doc(report.ID.String()).Set(ctx, report)
	if err != nil {
		return goerr.Wrap(err, "failed to save report to firestore", goerr.V("reportID", report.ID))
	}

	return nil
}

// ListReports lists reports of a company within the range, newest first
func (f *Firestore) ListReports(ctx context.Context, companyID types.CompanyID, r model.TimeRange) ([]*model.Report, error) {
	reports, err := listByCompany[model.Report](ctx, f.client, reportsCollection, companyID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list reports", goerr.V("companyID", companyID))
	}

	filtered := make([]*model.Report, 0, len(reports))
	for _, rp := range reports {
		if r.Contains(rp.GeneratedAt) {
			filtered = append(filtered, rp)
		}
	}

	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].GeneratedAt.Equal(filtered[j].GeneratedAt) {
			return filtered[i].ID > filtered[j].ID
		}
		return filtered[i].GeneratedAt.After(filtered[j].GeneratedAt)
	})

	return filtered, nil
}

// listByCompany reads every document of the collection that belongs to the
// company. Range filtering and ordering are done in memory so that no
// composite index is required.
func listByCompany[T any](ctx context.Context, client *firestore.Client, collection string, companyID types.CompanyID) ([]*T, error) {
	iter := client.Collection(collection).
		Where(fieldCompanyID, "==", companyID.Int64()).
		Documents(ctx)
	defer iter.Stop()

	var items []*T
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate documents", goerr.V("collection", collection))
		}

		var item T
		if err := doc.DataTo(&item); err != nil {
			return nil, goerr.Wrap(err, "failed to decode document",
				goerr.V("collection", collection),
				goerr.V("docID", doc.Ref.ID))
		}
		items = append(items, &item)
	}

	return items, nil
}

// RevokeToken records a revoked token ID
func (f *Firestore) RevokeToken(ctx context.Context, token *model.RevokedToken) error {
	if token == nil {
		return goerr.New("revoked token is nil")
	}
	if token.ID == "" {
		return goerr.New("token ID is empty")
	}

	_, err := f.client.Collection(revokedTokensCollection).Doc(token.ID.String()).Set(ctx, token)
	if err != nil {
		return goerr.Wrap(err, "failed to save revoked token", goerr.V("tokenID", token.ID))
	}

	return nil
}

// IsTokenRevoked checks whether a token ID has been revoked
func (f *Firestore) IsTokenRevoked(ctx context.Context, id types.TokenID) (bool, error) {
	if id == "" {
		return false, goerr.New("token ID is empty")
	}

	_, err := f.client.Collection(revokedTokensCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, goerr.Wrap(err, "failed to get revoked token", goerr.V("tokenID", id))
	}

	return true, nil
}

// PurgeRevokedTokens removes revocation entries whose token has expired
func (f *Firestore) PurgeRevokedTokens(ctx context.Context, now time.Time) (int, error) {
	iter := f.client.Collection(revokedTokensCollection).
		Where(fieldExpiresAt, "<", now).
		Documents(ctx)
	defer iter.Stop()

	purged := 0
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return purged, goerr.Wrap(err, "failed to iterate revoked tokens")
		}

		if _, err := doc.Ref.Delete(ctx); err != nil {
			return purged, goerr.Wrap(err, "failed to delete revoked token", goerr.V("tokenID", doc.Ref.ID))
		}
		purged++
	}

	return purged, nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
