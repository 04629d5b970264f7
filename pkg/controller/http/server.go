package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/opsnexus/opsnexus/frontend"
	"github.com/opsnexus/opsnexus/pkg/domain/types"
	"github.com/opsnexus/opsnexus/pkg/usecase"
	"golang.org/x/time/rate"
)

const (
	// DefaultLoginRate is the sustained login attempts per second per client
	DefaultLoginRate = rate.Limit(1)
	// DefaultLoginBurst is the login burst per client
	DefaultLoginBurst = 5
)

// UseCases groups the use cases served over HTTP
type UseCases struct {
	Auth      usecase.AuthUseCase
	Dashboard usecase.DashboardUseCase
	Export    usecase.ExportUseCase
	Digest    usecase.DigestUseCase
}

// Server represents the HTTP server
type Server struct {
	*http.Server
	router      chi.Router
	rateLimiter *RateLimiter

	frontendURL string
	frontendFS  http.FileSystem
	loginRate   rate.Limit
	loginBurst  int
	now         func() time.Time
}

// Option configures the server
type Option func(*Server)

// WithFrontendURL sets the allowed CORS origin
func WithFrontendURL(url string) Option {
	return func(s *Server) {
		s.frontendURL = url
	}
}

// WithFrontendFS replaces the embedded frontend
func WithFrontendFS(fs http.FileSystem) Option {
	return func(s *Server) {
		s.frontendFS = fs
	}
}

// WithLoginRateLimit sets the per-client login rate limit
func WithLoginRateLimit(r rate.Limit, burst int) Option {
	return func(s *Server) {
		s.loginRate = r
		s.loginBurst = burst
	}
}

// WithClock replaces the clock used to resolve default date ranges
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// NewServer creates a new HTTP server
func NewServer(ctx context.Context, addr string, uc *UseCases, opts ...Option) (*Server, error) {
	s := &Server{
		loginRate:  DefaultLoginRate,
		loginBurst: DefaultLoginBurst,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	router := chi.NewRouter()
	authMiddleware := NewMiddleware(uc.Auth)
	s.rateLimiter = NewRateLimiter(s.loginRate, s.loginBurst)

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)
	router.Use(CORS(s.frontendURL))

	authHandler := NewAuthHandler(uc.Auth)
	dashboardHandler := NewDashboardHandler(uc.Dashboard, uc.Export, uc.Digest, s.now)

	router.NotFound(handleNotFound)

	// Health check
	router.Get("/health", handleHealth)

	// API routes
	router.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(s.rateLimiter.Middleware).Post("/token", authHandler.HandleToken)
			r.With(authMiddleware.RequireAuth).Post("/logout", authHandler.HandleLogout)
		})

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.RequireAuth)
			r.Get("/user/me", authHandler.HandleUserMe)
			r.Get("/dashboard", dashboardHandler.HandleDashboard)
			r.Get("/reports", dashboardHandler.HandleReports)
			r.Get("/export", dashboardHandler.HandleExport)
			r.With(RequireRole(types.RoleManager, types.RoleOperator)).
				Post("/digest", dashboardHandler.HandleDigest)
		})
	})

	// Frontend routes (serve embedded or filesystem)
	fs := s.frontendFS
	if fs == nil {
		var err error
		fs, err = frontend.GetHTTPFS()
		if err != nil {
			ctxlog.From(ctx).Warn("Failed to get embedded frontend, using fallback",
				"error", err,
			)
		}
	}
	if fs != nil {
		spa, err := NewSPAHandler(fs)
		if err != nil {
			return nil, err
		}
		ctxlog.From(ctx).Info("Serving frontend")
		router.Handle("/*", spa)
	} else {
		router.Get("/*", handleFallbackHome)
	}

	s.router = router
	s.Server = &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
	}

	return s, nil
}

// RateLimiter returns the login rate limiter so that its cleanup loop can be run
func (s *Server) RateLimiter() *RateLimiter {
	return s.rateLimiter
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "opsnexus",
	})
}

// handleNotFound answers unmatched API routes with a JSON error
func handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeErrorMessage(r.Context(), w, "not found", http.StatusNotFound)
}

// handleFallbackHome handles the root path when frontend is not available
func handleFallbackHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(`<!DOCTYPE html>
<html>
<head>
    <title>OpsNexus</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Arial, sans-serif;
            display: flex;
            justify-content: center;
            align-items: center;
            height: 100vh;
            margin: 0;
            background: #0f172a;
            color: #e2e8f0;
        }
        .container { text-align: center; padding: 2rem; }
        h1 { margin: 0 0 1rem 0; font-size: 2.5rem; }
        code { color: #38bdf8; }
    </style>
</head>
<body>
    <div class="container">
        <h1>OpsNexus</h1>
        <p>The dashboard frontend has not been built.</p>
        <p>The API is available under <code>/api</code>.</p>
    </div>
</body>
</html>`)); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write fallback home page", "error", err)
	}
}
