package metadata

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a provider that answered but had no data
// for the ISBN. The resolver treats it like any other lookup failure
// and moves on to the next provider.
var ErrNotFound = errors.New("no metadata for isbn")

// Book is the common metadata shape all providers normalize into.
// Fields a provider cannot supply stay empty strings.
type Book struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	PublishDate string `json:"publishDate"`
	Pages       string `json:"pages"`
	Description string `json:"description"`
}

// Provider is one external metadata source. Lookup receives a clean
// (hyphen-free, length-checked) ISBN and a context that carries the
// per-stage deadline; implementations must honor cancellation so an
// expired stage actively aborts its in-flight request.
type Provider interface {
	Name() string
	Lookup(ctx context.Context, isbn string) (Book, error)
}

// ValidationError rejects a malformed ISBN before any provider is contacted.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError means every provider and the fallback table were exhausted.
type NotFoundError struct {
	ISBN string
}

func (e *NotFoundError) Error() string {
	return "book not found: " + e.ISBN
}

// ManualEntryPrompt is the user-facing message attached to a NotFoundError
// response, asking for manual entry.
const ManualEntryPrompt = "해당 ISBN의 도서 정보를 찾을 수 없습니다. 수동으로 입력해주세요."
