package apperr_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/opsnexus/opsnexus/pkg/utils/apperr"
)

func TestHandle(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := ctxlog.With(context.Background(), logger)

	apperr.Handle(ctx, goerr.New("query failed", goerr.V("table", "alerts")))
	gt.S(t, buf.String()).Contains("query failed")
	gt.S(t, buf.String()).Contains(`"table":"alerts"`)

	buf.Reset()
	apperr.Handle(ctx, nil)
	gt.Equal(t, 0, buf.Len())
}
