package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// OpenLibrary looks up ISBNs against openlibrary.org edition documents.
// The edition names authors only by key, so a successful primary lookup
// is followed by at most one author request to resolve a display name.
type OpenLibrary struct {
	httpClient    *http.Client
	baseURL       string
	userAgent     string
	limiter       *rate.Limiter
	authorTimeout time.Duration
}

// editionDoc matches /isbn/{isbn}.json. Description can be a plain string
// or {"type": ..., "value": ...}, so it stays raw until normalized.
type editionDoc struct {
	Title   string `json:"title"`
	Authors []struct {
		Key string `json:"key"`
	} `json:"authors"`
	PublishDate   string          `json:"publish_date"`
	NumberOfPages int             `json:"number_of_pages"`
	Description   json.RawMessage `json:"description"`
}

type authorDoc struct {
	Name string `json:"name"`
}

func NewOpenLibrary(baseURL, userAgent string, rps int, authorTimeout time.Duration) *OpenLibrary {
	if authorTimeout <= 0 {
		authorTimeout = 1500 * time.Millisecond
	}
	if rps <= 0 {
		rps = 5
	}
	return &OpenLibrary{
		httpClient:    &http.Client{},
		baseURL:       baseURL,
		userAgent:     userAgent,
		limiter:       rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
		authorTimeout: authorTimeout,
	}
}

func (o *OpenLibrary) Name() string {
	return "openlibrary"
}

func (o *OpenLibrary) Lookup(ctx context.Context, isbn string) (Book, error) {
	var edition editionDoc
	if err := o.get(ctx, fmt.Sprintf("%s/isbn/%s.json", o.baseURL, isbn), &edition); err != nil {
		return Book{}, err
	}
	if edition.Title == "" {
		return Book{}, ErrNotFound
	}

	book := Book{
		Title:       edition.Title,
		Author:      o.resolveAuthor(ctx, edition),
		PublishDate: edition.PublishDate,
		Description: normalizeDescription(edition.Description),
	}
	if edition.NumberOfPages > 0 {
		book.Pages = strconv.Itoa(edition.NumberOfPages)
	}
	return book, nil
}

// resolveAuthor fetches the display name for the edition's first author
// key under its own shorter deadline. Any failure here leaves the author
// empty; it never fails the stage.
func (o *OpenLibrary) resolveAuthor(ctx context.Context, edition editionDoc) string {
	if len(edition.Authors) == 0 || edition.Authors[0].Key == "" {
		return ""
	}

	key := strings.TrimPrefix(edition.Authors[0].Key, "/authors/")

	authorCtx, cancel := context.WithTimeout(ctx, o.authorTimeout)
	defer cancel()

	var author authorDoc
	if err := o.get(authorCtx, fmt.Sprintf("%s/authors/%s.json", o.baseURL, key), &author); err != nil {
		return ""
	}
	return author.Name
}

func (o *OpenLibrary) get(ctx context.Context, url string, target interface{}) error {
	if err := o.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", o.userAgent)

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(target)
}

// normalizeDescription accepts both shapes Open Library uses for
// descriptions: a bare string or an object with a "value" field.
func normalizeDescription(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var obj struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.Value
	}
	return ""
}
