package web

import (
	"net/http"
	"os"
	"path/filepath"

	"libman/internal/httpx"
)

// trackedFiles are the site files whose newest mtime the UI shows in its
// footer.
var trackedFiles = []string{
	"index.html",
	"script.js",
	"styles.css",
}

type lastModifiedResponse struct {
	LastModified string `json:"lastModified"`
	FileName     string `json:"fileName"`
	Timestamp    int64  `json:"timestamp"`
}

// LastModifiedHandler reports the most recently changed tracked file.
type LastModifiedHandler struct {
	dir string
}

func NewLastModifiedHandler(dir string) *LastModifiedHandler {
	return &LastModifiedHandler{dir: dir}
}

// Report handles GET /api/last-modified
// @Summary Newest modification time among the site's files
// @Tags site
// @Produce json
// @Success 200 {object} web.lastModifiedResponse
// @Router /api/last-modified [get]
func (h *LastModifiedHandler) Report(w http.ResponseWriter, r *http.Request) {
	resp := lastModifiedResponse{
		LastModified: "알 수 없음",
		FileName:     "none",
	}

	for _, name := range trackedFiles {
		info, err := os.Stat(filepath.Join(h.dir, name))
		if err != nil {
			continue
		}
		if ts := info.ModTime().UnixMilli(); ts > resp.Timestamp {
			resp.Timestamp = ts
			resp.FileName = name
			resp.LastModified = info.ModTime().Format("2006-01-02 15:04:05")
		}
	}

	httpx.JSON(w, http.StatusOK, resp)
}
