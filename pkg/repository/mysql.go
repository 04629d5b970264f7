package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/opsnexus/opsnexus/pkg/domain/interfaces"
	"github.com/opsnexus/opsnexus/pkg/domain/model"
	"github.com/opsnexus/opsnexus/pkg/domain/types"
)

// DefaultMySQLQueryTimeout bounds every statement issued by the MySQL repository
const DefaultMySQLQueryTimeout = 10 * time.Second

var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS alerts (
		id BIGINT NOT NULL PRIMARY KEY,
		ts DATETIME(6) NOT NULL,
		host VARCHAR(255) NOT NULL,
		service VARCHAR(255) NOT NULL,
		status VARCHAR(64) NOT NULL,
		message TEXT NOT NULL,
		company_id BIGINT NOT NULL,
		INDEX idx_alerts_company_ts (company_id, ts)
	)`,
	`CREATE TABLE IF NOT EXISTS tickets (
		id BIGINT NOT NULL PRIMARY KEY,
		created_at DATETIME(6) NOT NULL,
		subject VARCHAR(512) NOT NULL,
		status VARCHAR(64) NOT NULL,
		company_id BIGINT NOT NULL,
		INDEX idx_tickets_company_created (company_id, created_at)
	)`,
	`CREATE TABLE IF NOT EXISTS reports (
		id VARCHAR(64) NOT NULL PRIMARY KEY,
		title VARCHAR(512) NOT NULL,
		client VARCHAR(255) NOT NULL,
		source VARCHAR(255) NOT NULL,
		status VARCHAR(64) NOT NULL,
		risk_level VARCHAR(64) NOT NULL,
		score DOUBLE NOT NULL,
		generated_at DATETIME(6) NOT NULL,
		company_id BIGINT NOT NULL,
		INDEX idx_reports_company_generated (company_id, generated_at)
	)`,
	`CREATE TABLE IF NOT EXISTS revoked_tokens (
		id VARCHAR(64) NOT NULL PRIMARY KEY,
		username VARCHAR(255) NOT NULL,
		revoked_at DATETIME(6) NOT NULL,
		expires_at DATETIME(6) NOT NULL,
		INDEX idx_revoked_tokens_expires (expires_at)
	)`,
}

// MySQL implements Repository interface with a MySQL database
type MySQL struct {
	db           *sql.DB
	queryTimeout time.Duration
}

// NewMySQL opens the database, checks connectivity and creates missing tables.
// The DSN is always used with parseTime enabled and UTC location.
func NewMySQL(ctx context.Context, dsn string, queryTimeout time.Duration) (interfaces.Repository, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse mysql DSN")
	}
	cfg.ParseTime = true
	cfg.Loc = time.UTC

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create mysql connector")
	}

	db := sql.OpenDB(connector)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)

	if queryTimeout <= 0 {
		queryTimeout = DefaultMySQLQueryTimeout
	}
	repo := &MySQL{db: db, queryTimeout: queryTimeout}

	pingCtx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, goerr.Wrap(err, "failed to connect to mysql", goerr.V("addr", cfg.Addr), goerr.V("db", cfg.DBName))
	}

	if err := repo.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	ctxlog.From(ctx).Info("MySQL repository initialized successfully",
		"addr", cfg.Addr,
		"db", cfg.DBName,
	)

	return repo, nil
}

func (m *MySQL) migrate(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, m.queryTimeout)
	defer cancel()

	for _, stmt := range mysqlSchema {
		if _, err := m.db.ExecContext(ctx, stmt); err != nil {
			return goerr.Wrap(err, "failed to create mysql table")
		}
	}
	return nil
}

// PutAlert inserts or replaces an alert
func (m *MySQL) PutAlert(ctx context.Context, alert *model.Alert) error {
	if alert == nil {
		return goerr.New("alert is nil")
	}
	if alert.ID <= 0 {
		return goerr.New("alert ID must be positive")
	}

	ctx, cancel := context.WithTimeout(ctx, m.queryTimeout)
	defer cancel()

	_, err := m.db.ExecContext(ctx,
		`REPLACE INTO alerts (id, ts, host, service, status, message, company_id) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		int64(alert.ID), alert.Timestamp.UTC(), alert.Host, alert.Service, alert.Status, alert.Message, alert.CompanyID.Int64(),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to save alert to mysql", goerr.V("alertID", alert.ID))
	}
	return nil
}

// ListAlerts lists alerts of a company within the range, newest first
func (m *MySQL) ListAlerts(ctx context.Context, companyID types.CompanyID, r model.TimeRange) ([]*model.Alert, error) {
	ctx, cancel := context.WithTimeout(ctx, m.queryTimeout)
	defer cancel()

	rows, err := m.db.QueryContext(ctx,
		`SELECT id, ts, host, service, status, message, company_id FROM alerts
		WHERE company_id = ? AND ts >= ? AND ts < ?
		ORDER BY ts DESC, id DESC`,
		companyID.Int64(), r.Start.UTC(), r.End.UTC(),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query alerts", goerr.V("companyID", companyID))
	}
	defer rows.Close()

	alerts := make([]*model.Alert, 0)
	for rows.Next() {
		var a model.Alert
		if err := rows.Scan(&a.ID, &a.Timestamp, &a.Host, &a.Service, &a.Status, &a.Message, &a.CompanyID); err != nil {
			return nil, goerr.Wrap(err, "failed to scan alert")
		}
		alerts = append(alerts, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate alerts")
	}

	return alerts, nil
}

// PutTicket inserts or replaces a ticket
func (m *MySQL) PutTicket(ctx context.Context, ticket *model.Ticket) error {
	if ticket == nil {
		return goerr.New("ticket is nil")
	}
	if ticket.ID <= 0 {
		return goerr.New("ticket ID must be positive")
	}

	ctx, cancel := context.WithTimeout(ctx, m.queryTimeout)
	defer cancel()

	_, err := m.db.ExecContext(ctx,
		`REPLACE INTO tickets (id, created_at, subject, status, company_id) VALUES (?, ?, ?, ?, ?)`,
		int64(ticket.ID), ticket.CreatedAt.UTC(), ticket.Subject, ticket.Status, ticket.CompanyID.Int64(),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to save ticket to mysql", goerr.V("ticketID", ticket.ID))
	}
	return nil
}

// ListTickets lists tickets of a company within the range, newest first
func (m *MySQL) ListTickets(ctx context.Context, companyID types.CompanyID, r model.TimeRange) ([]*model.Ticket, error) {
	ctx, cancel := context.WithTimeout(ctx, m.queryTimeout)
	defer cancel()

	rows, err := m.db.QueryContext(ctx,
		`SELECT id, created_at, subject, status, company_id FROM tickets
		WHERE company_id = ? AND created_at >= ? AND created_at < ?
		ORDER BY created_at DESC, id DESC`,
		companyID.Int64(), r.Start.UTC(), r.End.UTC(),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query tickets", goerr.V("companyID", companyID))
	}
	defer rows.Close()

	tickets := make([]*model.Ticket, 0)
	for rows.Next() {
		var t model.Ticket
		if err := rows.Scan(&t.ID, &t.CreatedAt, &t.Subject, &t.Status, &t.CompanyID); err != nil {
			return nil, goerr.Wrap(err, "failed to scan ticket")
		}
		tickets = append(tickets, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate tickets")
	}

	return tickets, nil
}

// PutReport inserts or replaces a report
func (m *MySQL) PutReport(ctx context.Context, report *model.Report) error {
	if report == nil {
		return goerr.New("report is nil")
	}
	if report.ID == "" {
		return goerr.New("report ID is empty")
	}

	ctx, cancel := context.WithTimeout(ctx, m.queryTimeout)
	defer cancel()

	_, err := m.db.ExecContext(ctx,
		`REPLACE INTO reports (id, title, client, source, status, risk_level, score, generated_at, company_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		report.ID.String(), report.Title, report.Client, report.Source, report.Status,
		report.RiskLevel, report.Score, report.GeneratedAt.UTC(), report.CompanyID.Int64(),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to save report to mysql", goerr.V("reportID", report.ID))
	}
	return nil
}

// ListReports lists reports of a company within the range, newest first
func (m *MySQL) ListReports(ctx context.Context, companyID types.CompanyID, r model.TimeRange) ([]*model.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, m.queryTimeout)
	defer cancel()

	rows, err := m.db.QueryContext(ctx,
		`SELECT id, title, client, source, status, risk_level, score, generated_at, company_id FROM reports
		WHERE company_id = ? AND generated_at >= ? AND generated_at < ?
		ORDER BY generated_at DESC, id DESC`,
		companyID.Int64(), r.Start.UTC(), r.End.UTC(),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query reports", goerr.V("companyID", companyID))
	}
	defer rows.Close()

	reports := make([]*model.Report, 0)
	for rows.Next() {
		var rp model.Report
		if err := rows.Scan(&rp.ID, &rp.Title, &rp.Client, &rp.Source, &rp.Status,
			&rp.RiskLevel, &rp.Score, &rp.GeneratedAt, &rp.CompanyID); err != nil {
			return nil, goerr.Wrap(err, "failed to scan report")
		}
		reports = append(reports, &rp)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate reports")
	}

	return reports, nil
}

// RevokeToken records a revoked token ID
func (m *MySQL) RevokeToken(ctx context.Context, token *model.RevokedToken) error {
	if token == nil {
		return goerr.New("revoked token is nil")
	}
	if token.ID == "" {
		return goerr.New("token ID is empty")
	}

	ctx, cancel := context.WithTimeout(ctx, m.queryTimeout)
	defer cancel()

	_, err := m.db.ExecContext(ctx,
		`REPLACE INTO revoked_tokens (id, username, revoked_at, expires_at) VALUES (?, ?, ?, ?)`,
		token.ID.String(), token.Username.String(), token.RevokedAt.UTC(), token.ExpiresAt.UTC(),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to save revoked token", goerr.V("tokenID", token.ID))
	}
	return nil
}

// IsTokenRevoked checks whether a token ID has been revoked
func (m *MySQL) IsTokenRevoked(ctx context.Context, id types.TokenID) (bool, error) {
	if id == "" {
		return false, goerr.New("token ID is empty")
	}

	ctx, cancel := context.WithTimeout(ctx, m.queryTimeout)
	defer cancel()

	var found string
	err := m.db.QueryRowContext(ctx, `SELECT id FROM revoked_tokens WHERE id = ?`, id.String()).Scan(&found)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, goerr.Wrap(err, "failed to query revoked token", goerr.V("tokenID", id))
	}
	return true, nil
}

// PurgeRevokedTokens removes revocation entries whose token has expired
func (m *MySQL) PurgeRevokedTokens(ctx context.Context, now time.Time) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, m.queryTimeout)
	defer cancel()

	res, err := m.db.ExecContext(ctx, `DELETE FROM revoked_tokens WHERE expires_at < ?`, now.UTC())
	if err != nil {
		return 0, goerr.Wrap(err, "failed to purge revoked tokens")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, goerr.Wrap(err, "failed to count purged revoked tokens")
	}
	return int(n), nil
}

// Close closes the database handle
func (m *MySQL) Close() error {
	if m == nil || m.db == nil {
		return nil
	}
	return m.db.Close()
}
