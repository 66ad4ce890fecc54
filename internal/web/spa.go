package web

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// SPAHandler serves files out of dir and hands index.html to every path
// that matches nothing on disk, so client-side routes survive a reload.
type SPAHandler struct {
	dir   string
	files http.Handler
}

func NewSPAHandler(dir string) *SPAHandler {
	return &SPAHandler{
		dir:   dir,
		files: http.FileServer(http.Dir(dir)),
	}
}

func (h *SPAHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rel := strings.TrimPrefix(filepath.Clean(r.URL.Path), "/")
	if rel != "" && rel != "." {
		if info, err := os.Stat(filepath.Join(h.dir, rel)); err == nil && !info.IsDir() {
			h.files.ServeHTTP(w, r)
			return
		}
	}

	http.ServeFile(w, r, filepath.Join(h.dir, "index.html"))
}
