package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/m-mizutani/goerr/v2"
	"github.com/opsnexus/opsnexus/pkg/domain/interfaces"
	"github.com/opsnexus/opsnexus/pkg/repository"
	"github.com/urfave/cli/v3"
)

// MySQL holds MySQL configuration
type MySQL struct {
	DSN          string
	QueryTimeout time.Duration
}

// Flags returns CLI flags for MySQL configuration
func (m *MySQL) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "mysql-dsn",
			Usage:       "MySQL DSN, e.g. user:pass@tcp(localhost:3306)/opsnexus",
			Category:    "MySQL",
			Sources:     cli.EnvVars("OPSNEXUS_MYSQL_DSN"),
			Destination: &m.DSN,
		},
		&cli.DurationFlag{
			Name:        "mysql-query-timeout",
			Usage:       "Timeout applied to each MySQL query",
			Category:    "MySQL",
			Value:       repository.DefaultMySQLQueryTimeout,
			Sources:     cli.EnvVars("OPSNEXUS_MYSQL_QUERY_TIMEOUT"),
			Destination: &m.QueryTimeout,
		},
	}
}

// Configure creates a MySQL repository
func (m *MySQL) Configure(ctx context.Context) (interfaces.Repository, error) {
	if !m.IsConfigured() {
		return nil, goerr.New("mysql dsn is not configured")
	}

	repo, err := repository.NewMySQL(ctx, m.DSN, m.QueryTimeout)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to init mysql", goerr.V("addr", m.addr()))
	}
	return repo, nil
}

// IsConfigured checks if MySQL is properly configured
func (m *MySQL) IsConfigured() bool {
	return m.DSN != ""
}

// addr returns the DSN host without credentials
func (m *MySQL) addr() string {
	cfg, err := mysql.ParseDSN(m.DSN)
	if err != nil {
		return ""
	}
	return cfg.Addr + "/" + cfg.DBName
}

// LogValue returns structured log value
func (m MySQL) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", m.addr()),
		slog.Duration("query_timeout", m.QueryTimeout),
	)
}
