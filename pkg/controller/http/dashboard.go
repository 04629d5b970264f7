package http

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/opsnexus/opsnexus/pkg/domain/model"
	"github.com/opsnexus/opsnexus/pkg/usecase"
	"github.com/opsnexus/opsnexus/pkg/utils/async"
)

// DashboardHandler serves the dashboard, reports, export and digest endpoints
type DashboardHandler struct {
	dashboardUC usecase.DashboardUseCase
	exportUC    usecase.ExportUseCase
	digestUC    usecase.DigestUseCase
	now         func() time.Time
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardUC usecase.DashboardUseCase, exportUC usecase.ExportUseCase, digestUC usecase.DigestUseCase, now func() time.Time) *DashboardHandler {
	if now == nil {
		now = time.Now
	}
	return &DashboardHandler{
		dashboardUC: dashboardUC,
		exportUC:    exportUC,
		digestUC:    digestUC,
		now:         now,
	}
}

// scope resolves the caller's company and the requested date range
func (h *DashboardHandler) scope(r *http.Request) (*model.AuthContext, model.TimeRange, error) {
	authCtx, ok := model.GetAuthContext(r.Context())
	if !ok {
		return nil, model.TimeRange{}, goerr.Wrap(model.ErrUnauthorized, "no auth context")
	}

	q := r.URL.Query()
	tr, err := model.ParseTimeRange(q.Get("start_date"), q.Get("end_date"), h.now())
	if err != nil {
		return nil, model.TimeRange{}, err
	}
	return authCtx, tr, nil
}

// HandleDashboard returns counts, recent records and charts
func (h *DashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	authCtx, tr, err := h.scope(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	dashboard, err := h.dashboardUC.Build(r.Context(), authCtx.CompanyID, tr)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, dashboard)
}

// HandleReports returns the reports of the range with risk bars and trend
func (h *DashboardHandler) HandleReports(w http.ResponseWriter, r *http.Request) {
	authCtx, tr, err := h.scope(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	summary, err := h.dashboardUC.Reports(r.Context(), authCtx.CompanyID, tr)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, summary)
}

// HandleExport streams the xlsx workbook as a download
func (h *DashboardHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	authCtx, tr, err := h.scope(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	file, err := h.exportUC.Workbook(r.Context(), authCtx.CompanyID, tr)
	if err != nil {
		handleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(file.Data); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write export", "error", err)
	}
}

// HandleDigest posts a Slack digest in the background and returns 202
func (h *DashboardHandler) HandleDigest(w http.ResponseWriter, r *http.Request) {
	if h.digestUC == nil || !h.digestUC.IsEnabled() {
		handleError(w, r, goerr.Wrap(model.ErrDigestDisabled, "digest requested"))
		return
	}

	authCtx, tr, err := h.scope(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	companyID := authCtx.CompanyID
	async.Dispatch(r.Context(), func(ctx context.Context) error {
		return h.digestUC.Post(ctx, companyID, tr)
	})

	writeJSON(r.Context(), w, http.StatusAccepted, map[string]string{
		"status": "accepted",
	})
}
