// Package site serves the embedded dashboard front-end.
package site

import (
	"context"
	"errors"
	"net/http"
)

// Error constants
var (
	ErrGenerate = errors.New("dashboard site generation failed")
	ErrServe    = errors.New("dashboard site serve failed")
)

// Register attaches the embedded dashboard pages to mux. The overview
// page is served at / (with /dashboard as an alias) and the metric
// compare page at /compare.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	files := http.FileServer(FS())
	mux.Handle("/", files)
	mux.HandleFunc("/dashboard", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, SubFS(), "index.html")
	})
	mux.HandleFunc("/compare", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, SubFS(), "compare.html")
	})
}
