package frontend

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed all:dist
var dist embed.FS

// ErrNotBuilt is returned when dist has no index.html, as in a checkout
// where the dashboard SPA was never built
var ErrNotBuilt = &fs.PathError{Op: "open", Path: "dist/index.html", Err: fs.ErrNotExist}

// GetHTTPFS returns the built dashboard SPA rooted at dist
func GetHTTPFS() (http.FileSystem, error) {
	sub, err := fs.Sub(dist, "dist")
	if err != nil {
		return nil, err
	}
	if _, err := fs.Stat(sub, "index.html"); err != nil {
		return nil, ErrNotBuilt
	}
	return http.FS(sub), nil
}
