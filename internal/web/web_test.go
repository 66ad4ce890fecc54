package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSiteDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>libman</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "styles.css"), []byte("body {}"), 0o644))
	return dir
}

func TestSPAHandler_ServesExistingFile(t *testing.T) {
	h := NewSPAHandler(newSiteDir(t))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/styles.css", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "body {}", w.Body.String())
}

func TestSPAHandler_FallsBackToIndex(t *testing.T) {
	h := NewSPAHandler(newSiteDir(t))

	for _, path := range []string{"/", "/books/42", "/no/such/route"} {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusOK, w.Code, "path %s", path)
		assert.Contains(t, w.Body.String(), "libman", "path %s", path)
	}
}

func TestLastModifiedHandler(t *testing.T) {
	dir := newSiteDir(t)

	// styles.css is the newest tracked file.
	newer := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, "styles.css"), newer, newer))

	h := NewLastModifiedHandler(dir)
	w := httptest.NewRecorder()
	h.Report(w, httptest.NewRequest(http.MethodGet, "/api/last-modified", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp lastModifiedResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "styles.css", resp.FileName)
	assert.Equal(t, newer.UnixMilli(), resp.Timestamp)
	assert.NotEqual(t, "알 수 없음", resp.LastModified)
}

func TestLastModifiedHandler_EmptyDir(t *testing.T) {
	h := NewLastModifiedHandler(t.TempDir())

	w := httptest.NewRecorder()
	h.Report(w, httptest.NewRequest(http.MethodGet, "/api/last-modified", nil))

	var resp lastModifiedResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "알 수 없음", resp.LastModified)
	assert.Equal(t, "none", resp.FileName)
	assert.Zero(t, resp.Timestamp)
}
