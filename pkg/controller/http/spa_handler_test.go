package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/m-mizutani/gt"
	controller "github.com/opsnexus/opsnexus/pkg/controller/http"
)

func newSPA(t *testing.T) *controller.SPAHandler {
	t.Helper()
	spa, err := controller.NewSPAHandler(http.FS(fstest.MapFS{
		"index.html":          {Data: []byte("<html>opsnexus</html>")},
		"assets/app-1a2b.js":  {Data: []byte("console.log(1)")},
		"assets/app-1a2b.css": {Data: []byte("body{}")},
		"favicon.svg":         {Data: []byte("<svg/>")},
	}))
	gt.NoError(t, err).Required()
	return spa
}

func TestSPAHandler(t *testing.T) {
	spa := newSPA(t)

	testCases := []struct {
		name        string
		path        string
		status      int
		contentType string
		body        string
		cache       string
	}{
		{"index", "/", http.StatusOK, "text/html; charset=utf-8", "<html>opsnexus</html>", "no-cache"},
		{"client route", "/reports/2024", http.StatusOK, "text/html; charset=utf-8", "<html>opsnexus</html>", "no-cache"},
		{"hashed asset", "/assets/app-1a2b.js", http.StatusOK, "javascript", "console.log(1)", "public, max-age=31536000, immutable"},
		{"directory", "/assets", http.StatusOK, "text/html; charset=utf-8", "<html>opsnexus</html>", "no-cache"},
		{"static file", "/favicon.svg", http.StatusOK, "image/svg+xml", "<svg/>", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			spa.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))

			gt.Equal(t, tc.status, rec.Code)
			gt.S(t, rec.Header().Get("Content-Type")).Contains(tc.contentType)
			gt.Equal(t, tc.body, rec.Body.String())
			gt.Equal(t, tc.cache, rec.Header().Get("Cache-Control"))
		})
	}
}

func TestSPAHandlerAPIPathsAreNotHTML(t *testing.T) {
	spa := newSPA(t)

	for _, p := range []string{"/api", "/api/unknown", "/api/../api/x"} {
		rec := httptest.NewRecorder()
		spa.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, p, nil))
		gt.Equal(t, http.StatusNotFound, rec.Code)
		gt.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	}
}

func TestNewSPAHandlerRequiresIndex(t *testing.T) {
	_, err := controller.NewSPAHandler(http.FS(fstest.MapFS{
		"assets/app.js": {Data: []byte("x")},
	}))
	gt.Error(t, err)
}
