package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	book Book
	err  error
}

func (s *stubResolver) Resolve(ctx context.Context, rawISBN string) (Book, error) {
	return s.book, s.err
}

func doLookup(h *HTTPHandler, isbn string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/isbn/"+isbn, nil)
	r.SetPathValue("isbn", isbn)
	h.Lookup(w, r)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

func TestHTTPHandler_Lookup_Success(t *testing.T) {
	h := NewHTTPHandler(&stubResolver{book: Book{
		Title:       "Effective TypeScript",
		Author:      "Dan Vanderkam",
		PublishDate: "2019-10-01",
		Pages:       "264",
		Description: "TypeScript guide",
	}})

	w := doLookup(h, "9780134685991")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	body := decodeBody(t, w)
	assert.Equal(t, "Effective TypeScript", body["title"])
	assert.Equal(t, "Dan Vanderkam", body["author"])
	assert.Equal(t, "2019-10-01", body["publishDate"])
	assert.Equal(t, "264", body["pages"])
	assert.Equal(t, "TypeScript guide", body["description"])
}

func TestHTTPHandler_Lookup_InvalidFormat(t *testing.T) {
	h := NewHTTPHandler(&stubResolver{err: &ValidationError{Message: "Invalid ISBN format"}})

	w := doLookup(h, "abc123")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, map[string]any{"error": "Invalid ISBN format"}, decodeBody(t, w))
}

func TestHTTPHandler_Lookup_WrongLength(t *testing.T) {
	h := NewHTTPHandler(&stubResolver{err: &ValidationError{Message: "ISBN must be 10 or 13 digits"}})

	w := doLookup(h, "123456789")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, map[string]any{"error": "ISBN must be 10 or 13 digits"}, decodeBody(t, w))
}

func TestHTTPHandler_Lookup_NotFound(t *testing.T) {
	h := NewHTTPHandler(&stubResolver{err: &NotFoundError{ISBN: "9799999999999"}})

	w := doLookup(h, "9799999999999")

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Book not found", body["error"])
	assert.Equal(t, ManualEntryPrompt, body["message"])
}

func TestHTTPHandler_Lookup_InternalError(t *testing.T) {
	h := NewHTTPHandler(&stubResolver{err: errors.New("pool exhausted")})

	w := doLookup(h, "9780134685991")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeBody(t, w)
	assert.NotEmpty(t, body["error"])
}

// The full chain against fake upstreams: national library hangs past its
// stage budget, Open Library answers but its author endpoint is down, so
// the response carries every field except the author.
func TestHTTPHandler_Lookup_ChainWithTimeouts(t *testing.T) {
	national := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	t.Cleanup(national.Close)

	openLib := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/isbn/9780134685991.json" {
			fmt.Fprint(w, `{"title": "Effective TypeScript", "authors": [{"key": "/authors/OL1A"}], "publish_date": "2019-10-01", "number_of_pages": 264}`)
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(openLib.Close)

	resolver := NewResolver([]Provider{
		NewNationalLibrary(national.URL, "test-key", "libman-test"),
		NewOpenLibrary(openLib.URL, "libman-test", 100, 50*time.Millisecond),
	}, StaticFallback(), 100*time.Millisecond)
	h := NewHTTPHandler(resolver)

	w := doLookup(h, "978-0-13-468599-1")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Effective TypeScript", body["title"])
	assert.Equal(t, "", body["author"])
	assert.Equal(t, "2019-10-01", body["publishDate"])
	assert.Equal(t, "264", body["pages"])
}
