package repository_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	"github.com/opsnexus/opsnexus/pkg/domain/interfaces"
	"github.com/opsnexus/opsnexus/pkg/domain/model"
	"github.com/opsnexus/opsnexus/pkg/domain/types"
	"github.com/opsnexus/opsnexus/pkg/repository"
)

// uniqueCompany returns a company ID that does not collide with data left by
// previous runs against persistent backends
func uniqueCompany() types.CompanyID {
	return types.CompanyID(time.Now().UnixNano() % 1_000_000_000_000)
}

func testRange() model.TimeRange {
	return model.TimeRange{
		Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC),
	}
}

func testRepository(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Run("ListAlerts", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		company := uniqueCompany()
		other := company + 1
		base := int64(company) * 10

		alerts := []*model.Alert{
			{ID: types.AlertID(base + 1), Timestamp: time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC), Host: "srv-web-01", Service: "CPU Load", Status: "CRITICAL", Message: "Threshold exceeded", CompanyID: company},
			{ID: types.AlertID(base + 2), Timestamp: time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC), Host: "srv-db-01", Service: "Memory Usage", Status: "warning", Message: "Threshold exceeded", CompanyID: company},
			{ID: types.AlertID(base + 3), Timestamp: time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC), Host: "srv-app-02", Service: "CPU Load", Status: "OK", Message: "out of range", CompanyID: company},
			{ID: types.AlertID(base + 4), Timestamp: time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC), Host: "firewall-main", Service: "CPU Load", Status: "OK", Message: "other company", CompanyID: other},
		}
		for _, a := range alerts {
			gt.NoError(t, repo.PutAlert(ctx, a)).Required()
		}

		got, err := repo.ListAlerts(ctx, company, testRange())
		gt.NoError(t, err).Required()
		gt.A(t, got).Length(2)
		gt.Equal(t, alerts[1].ID, got[0].ID)
		gt.Equal(t, alerts[0].ID, got[1].ID)
		gt.Equal(t, "warning", got[0].Status)
		gt.Equal(t, "srv-db-01", got[0].Host)
		gt.True(t, got[0].Timestamp.Equal(alerts[1].Timestamp))
	})

	t.Run("ListAlerts_Empty", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		got, err := repo.ListAlerts(context.Background(), uniqueCompany(), testRange())
		gt.NoError(t, err)
		gt.A(t, got).Length(0)
	})

	t.Run("PutAlert_Invalid", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		gt.Error(t, repo.PutAlert(ctx, nil))
		gt.Error(t, repo.PutAlert(ctx, &model.Alert{ID: 0}))
	})

	t.Run("ListTickets", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		company := uniqueCompany()
		base := int64(company) * 10

		tickets := []*model.Ticket{
			{ID: types.TicketID(base + 1), CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Subject: "Issue with vpn", Status: "Open", CompanyID: company},
			{ID: types.TicketID(base + 2), CreatedAt: time.Date(2024, 3, 7, 23, 59, 0, 0, time.UTC), Subject: "Issue with printer", Status: "In Progress", CompanyID: company},
			{ID: types.TicketID(base + 3), CreatedAt: time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC), Subject: "Issue with email", Status: "Closed", CompanyID: company},
		}
		for _, tk := range tickets {
			gt.NoError(t, repo.PutTicket(ctx, tk)).Required()
		}

		got, err := repo.ListTickets(ctx, company, testRange())
		gt.NoError(t, err).Required()
		gt.A(t, got).Length(2)
		gt.Equal(t, tickets[1].ID, got[0].ID)
		gt.Equal(t, tickets[0].ID, got[1].ID)
		gt.Equal(t, "In Progress", got[0].Status)
		gt.Equal(t, "Issue with printer", got[0].Subject)
	})

	t.Run("ListReports", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		company := uniqueCompany()

		reports := []*model.Report{
			{ID: types.NewReportID(), Title: "Q1", Client: "Acme", Source: "Nessus", Status: "READY", RiskLevel: "HIGH", Score: 82.5, GeneratedAt: time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC), CompanyID: company},
			{ID: types.NewReportID(), Title: "Q2", Client: "Acme", Source: "OpenVAS", Status: "IN_REVIEW", RiskLevel: "low", Score: 12, GeneratedAt: time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC), CompanyID: company},
		}
		for _, r := range reports {
			gt.NoError(t, repo.PutReport(ctx, r)).Required()
		}

		got, err := repo.ListReports(ctx, company, testRange())
		gt.NoError(t, err).Required()
		gt.A(t, got).Length(2)
		gt.Equal(t, reports[1].ID, got[0].ID)
		gt.Equal(t, "low", got[0].RiskLevel)
		gt.Equal(t, 82.5, got[1].Score)
		gt.Equal(t, "Nessus", got[1].Source)
	})

	t.Run("RevokeToken", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		id, err := types.NewTokenID()
		gt.NoError(t, err).Required()

		revoked, err := repo.IsTokenRevoked(ctx, id)
		gt.NoError(t, err)
		gt.False(t, revoked)

		now := time.Now().UTC().Truncate(time.Second)
		gt.NoError(t, repo.RevokeToken(ctx, &model.RevokedToken{
			ID:        id,
			Username:  "admin",
			RevokedAt: now,
			ExpiresAt: now.Add(30 * time.Minute),
		})).Required()

		revoked, err = repo.IsTokenRevoked(ctx, id)
		gt.NoError(t, err)
		gt.True(t, revoked)

		_, err = repo.IsTokenRevoked(ctx, "")
		gt.Error(t, err)
	})

	t.Run("PurgeRevokedTokens", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		now := time.Now().UTC().Truncate(time.Second)

		expired, err := types.NewTokenID()
		gt.NoError(t, err).Required()
		active, err := types.NewTokenID()
		gt.NoError(t, err).Required()

		gt.NoError(t, repo.RevokeToken(ctx, &model.RevokedToken{
			ID: expired, Username: "admin", RevokedAt: now.Add(-2 * time.Hour), ExpiresAt: now.Add(-time.Hour),
		})).Required()
		gt.NoError(t, repo.RevokeToken(ctx, &model.RevokedToken{
			ID: active, Username: "admin", RevokedAt: now, ExpiresAt: now.Add(time.Hour),
		})).Required()

		n, err := repo.PurgeRevokedTokens(ctx, now)
		gt.NoError(t, err)
		gt.True(t, n >= 1)

		revoked, err := repo.IsTokenRevoked(ctx, expired)
		gt.NoError(t, err)
		gt.False(t, revoked)

		revoked, err = repo.IsTokenRevoked(ctx, active)
		gt.NoError(t, err)
		gt.True(t, revoked)
	})
}

func TestMemoryRepository(t *testing.T) {
	testRepository(t, func(t *testing.T) interfaces.Repository {
		return repository.NewMemory()
	})
}

func TestMemoryRepositoryReturnsCopies(t *testing.T) {
	repo := repository.NewMemory()
	ctx := context.Background()

	alert := &model.Alert{ID: 1, Timestamp: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), Status: "OK", CompanyID: 1}
	gt.NoError(t, repo.PutAlert(ctx, alert)).Required()

	alert.Status = "CRITICAL"
	got, err := repo.ListAlerts(ctx, 1, testRange())
	gt.NoError(t, err).Required()
	gt.A(t, got).Length(1)
	gt.Equal(t, "OK", got[0].Status)

	got[0].Status = "UNKNOWN"
	again, err := repo.ListAlerts(ctx, 1, testRange())
	gt.NoError(t, err).Required()
	gt.Equal(t, "OK", again[0].Status)
}

func TestFirestoreRepository(t *testing.T) {
	// Skip test if Firestore test environment variables are not set
	projectID := os.Getenv("TEST_FIRESTORE_PROJECT")
	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE")

	if projectID == "" || databaseID == "" {
		t.Skip("Skipping Firestore test: TEST_FIRESTORE_PROJECT and TEST_FIRESTORE_DATABASE must be set")
	}

	testRepository(t, func(t *testing.T) interfaces.Repository {
		ctx := context.Background()
		logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
		ctx = ctxlog.With(ctx, logger)

		repo, err := repository.NewFirestore(ctx, projectID, databaseID)
		gt.NoError(t, err).Required()
		return repo
	})
}

func TestMySQLRepository(t *testing.T) {
	dsn := os.Getenv("TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("Skipping MySQL test: TEST_MYSQL_DSN must be set")
	}

	testRepository(t, func(t *testing.T) interfaces.Repository {
		ctx := context.Background()
		logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
		ctx = ctxlog.With(ctx, logger)

		repo, err := repository.NewMySQL(ctx, dsn, 5*time.Second)
		gt.NoError(t, err).Required()
		return repo
	})
}

func TestNewMySQLInvalidDSN(t *testing.T) {
	_, err := repository.NewMySQL(context.Background(), "not a dsn", time.Second)
	gt.Error(t, err)
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	opts := repository.SeedOptions{
		CompanyIDs: []types.CompanyID{1, 101},
		Days:       30,
		Now:        now,
		Seed:       42,
	}

	repo := repository.NewMemory()
	result, err := repository.Seed(ctx, repo, opts)
	gt.NoError(t, err).Required()
	gt.True(t, result.Alerts <= 2*30*5)
	gt.True(t, result.Tickets <= 2*30*3)
	gt.True(t, result.Reports <= 2*30)

	window, err := model.ParseTimeRange("", "", now)
	gt.NoError(t, err).Required()

	total := 0
	for _, company := range opts.CompanyIDs {
		alerts, err := repo.ListAlerts(ctx, company, window)
		gt.NoError(t, err).Required()
		for _, a := range alerts {
			gt.Equal(t, company, a.CompanyID)
			gt.Equal(t, "Threshold exceeded", a.Message)
		}
		total += len(alerts)
	}
	gt.Equal(t, result.Alerts, total)

	t.Run("deterministic", func(t *testing.T) {
		again, err := repository.Seed(ctx, repository.NewMemory(), opts)
		gt.NoError(t, err).Required()
		gt.Equal(t, *result, *again)
	})

	t.Run("invalid options", func(t *testing.T) {
		_, err := repository.Seed(ctx, repository.NewMemory(), repository.SeedOptions{CompanyIDs: []types.CompanyID{1}})
		gt.Error(t, err)

		_, err = repository.Seed(ctx, repository.NewMemory(), repository.SeedOptions{Days: 3})
		gt.Error(t, err)
	})
}
