package apperr

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Handle logs an error that cannot be returned to a caller, such as a
// failure inside an HTTP handler or a background job
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	attrs := []any{slog.Any("error", err)}
	var gErr *goerr.Error
	if errors.As(err, &gErr) {
		for k, v := range gErr.Values() {
			attrs = append(attrs, slog.Any(k, v))
		}
	}

	ctxlog.From(ctx).Error("application error", attrs...)
}
