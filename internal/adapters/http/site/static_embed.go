package site

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static/*
var staticFS embed.FS

// SubFS exposes a sub-filesystem rooted at static/.
func SubFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// Should never happen if the embedded tree is intact.
		return staticFS
	}
	return sub
}

// FS returns an http.FileSystem for the embedded dashboard pages.
func FS() http.FileSystem {
	return http.FS(SubFS())
}
