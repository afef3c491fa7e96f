package server

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// handleBoard serves a prebuilt board UI from fsys. Paths that are not files
// fall back to index.html so the UI can do its own routing.
func handleBoard(fsys fs.FS) http.HandlerFunc {
	fileServer := http.FileServerFS(fsys)

	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(path.Clean(r.URL.Path), "/")
		if name == "" {
			name = "."
		}
		info, err := fs.Stat(fsys, name)
		if err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, r)
			return
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		http.ServeFileFS(w, r, fsys, "index.html")
	}
}
