package metadata

import (
	"context"
	"log"
	"regexp"
	"strings"
	"time"
)

var isbnPattern = regexp.MustCompile(`^[0-9-]+$`)

// Resolver runs the provider chain for one ISBN: providers in priority
// order, each bounded by its own timeout, then the static fallback table.
// Resolve returns exactly one outcome per call; a stage that times out or
// errors never reaches the caller, it only advances the chain.
type Resolver struct {
	providers []Provider
	fallback  map[string]Book
	timeout   time.Duration
}

// NewResolver builds a resolver over the given providers. The fallback
// table may be nil; timeout <= 0 falls back to 2 seconds.
func NewResolver(providers []Provider, fallback map[string]Book, timeout time.Duration) *Resolver {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &Resolver{
		providers: providers,
		fallback:  fallback,
		timeout:   timeout,
	}
}

// Resolve validates rawISBN and walks the chain. It returns the first
// successful Book, or *ValidationError for malformed input, or
// *NotFoundError when all providers and the fallback table came up empty.
func (r *Resolver) Resolve(ctx context.Context, rawISBN string) (Book, error) {
	if !isbnPattern.MatchString(rawISBN) {
		return Book{}, &ValidationError{Message: "Invalid ISBN format"}
	}

	isbn := strings.ReplaceAll(rawISBN, "-", "")
	if len(isbn) != 10 && len(isbn) != 13 {
		return Book{}, &ValidationError{Message: "ISBN must be 10 or 13 digits"}
	}

	for _, p := range r.providers {
		book, err := r.attempt(ctx, p, isbn)
		if err == nil && book.Title != "" {
			return book, nil
		}
		if err != nil && ctx.Err() != nil {
			// The caller is gone; no point in trying further stages.
			return Book{}, ctx.Err()
		}
		log.Printf("isbn lookup provider=%s isbn=%s miss err=%v", p.Name(), isbn, err)
	}

	if book, ok := r.fallback[isbn]; ok {
		return book, nil
	}

	return Book{}, &NotFoundError{ISBN: isbn}
}

// attempt runs one stage under its own deadline. The cancel is deferred so
// the stage's outstanding request is aborted on every exit path.
func (r *Resolver) attempt(ctx context.Context, p Provider, isbn string) (Book, error) {
	stageCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return p.Lookup(stageCtx, isbn)
}
