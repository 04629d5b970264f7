package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/opsnexus/opsnexus/pkg/domain/interfaces"
	"github.com/opsnexus/opsnexus/pkg/repository"
	"github.com/urfave/cli/v3"
)

// Repository selects the storage backend. Firestore takes precedence over
// MySQL, and the in-memory store is used when neither is configured.
type Repository struct {
	Firestore Firestore
	MySQL     MySQL
}

// Flags returns CLI flags of every backend
func (r *Repository) Flags() []cli.Flag {
	return append(r.Firestore.Flags(), r.MySQL.Flags()...)
}

// Configure opens the selected backend
func (r *Repository) Configure(ctx context.Context) (interfaces.Repository, error) {
	logger := ctxlog.From(ctx)

	switch {
	case r.Firestore.IsConfigured():
		if r.MySQL.IsConfigured() {
			logger.Warn("Both firestore and mysql are configured, using firestore")
		}
		return r.Firestore.Configure(ctx)

	case r.MySQL.IsConfigured():
		return r.MySQL.Configure(ctx)

	default:
		logger.Warn("Using memory database. The data will be removed when shutting down")
		return repository.NewMemory(), nil
	}
}

// Backend names the backend Configure will open
func (r *Repository) Backend() string {
	switch {
	case r.Firestore.IsConfigured():
		return "firestore"
	case r.MySQL.IsConfigured():
		return "mysql"
	default:
		return "memory"
	}
}

// LogValue returns structured log value
func (r Repository) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("backend", r.Backend()),
		slog.Any("firestore", r.Firestore),
		slog.Any("mysql", r.MySQL),
	)
}
