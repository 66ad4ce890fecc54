package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// NationalLibrary looks up ISBNs against the National Library of Korea
// Seoji search API (서지정보유통지원시스템).
type NationalLibrary struct {
	httpClient *http.Client
	baseURL    string
	certKey    string
	userAgent  string
}

// seojiResponse matches SearchApi.do with result_style=json.
type seojiResponse struct {
	Docs []struct {
		Title            string `json:"TITLE"`
		Author           string `json:"AUTHOR"`
		PublishPredate   string `json:"PUBLISH_PREDATE"`
		Page             string `json:"PAGE"`
		BookIntroduction string `json:"BOOK_INTRODUCTION"`
	} `json:"docs"`
}

func NewNationalLibrary(baseURL, certKey, userAgent string) *NationalLibrary {
	return &NationalLibrary{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		certKey:    certKey,
		userAgent:  userAgent,
	}
}

func (n *NationalLibrary) Name() string {
	return "national_library"
}

// Lookup issues one GET with the ISBN as a query parameter and maps the
// first doc of the result collection. An empty collection is ErrNotFound.
func (n *NationalLibrary) Lookup(ctx context.Context, isbn string) (Book, error) {
	q := url.Values{}
	q.Set("cert_key", n.certKey)
	q.Set("result_style", "json")
	q.Set("page_no", "1")
	q.Set("page_size", "1")
	q.Set("isbn", isbn)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"/seoji/SearchApi.do?"+q.Encode(), nil)
	if err != nil {
		return Book{}, err
	}
	req.Header.Set("User-Agent", n.userAgent)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return Book{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Book{}, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var body seojiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Book{}, fmt.Errorf("decode seoji response: %w", err)
	}
	if len(body.Docs) == 0 {
		return Book{}, ErrNotFound
	}

	doc := body.Docs[0]
	return Book{
		Title:       doc.Title,
		Author:      doc.Author,
		PublishDate: formatPredate(doc.PublishPredate),
		Pages:       doc.Page,
		Description: doc.BookIntroduction,
	}, nil
}

// formatPredate turns the API's compact YYYYMMDD form into YYYY-MM-DD.
// Anything else passes through untouched.
func formatPredate(s string) string {
	if t, err := time.Parse("20060102", s); err == nil {
		return t.Format("2006-01-02")
	}
	return s
}
