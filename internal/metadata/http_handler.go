package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

// BookResolver is what the handler needs from the resolution chain.
type BookResolver interface {
	Resolve(ctx context.Context, rawISBN string) (Book, error)
}

type HTTPHandler struct {
	resolver BookResolver
}

func NewHTTPHandler(resolver BookResolver) *HTTPHandler {
	return &HTTPHandler{resolver: resolver}
}

// Lookup handles GET /api/isbn/{isbn}
// @Summary Look up book metadata by ISBN
// @Description Resolve metadata through the provider chain (national library, Open Library, static fallback)
// @Tags isbn
// @Produce json
// @Param isbn path string true "ISBN, 10 or 13 digits, hyphens allowed"
// @Success 200 {object} metadata.Book
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/isbn/{isbn} [get]
func (h *HTTPHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	isbn := r.PathValue("isbn")

	book, err := h.resolver.Resolve(r.Context(), isbn)
	if err != nil {
		var validationErr *ValidationError
		var notFoundErr *NotFoundError
		switch {
		case errors.As(err, &validationErr):
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error": validationErr.Message,
			})
		case errors.As(err, &notFoundErr):
			writeJSON(w, http.StatusNotFound, map[string]string{
				"error":   "Book not found",
				"message": ManualEntryPrompt,
			})
		case errors.Is(err, context.Canceled):
			// Client went away mid-resolution; nothing useful to send.
		default:
			writeJSON(w, http.StatusInternalServerError, map[string]string{
				"error": "internal server error",
			})
		}
		return
	}

	writeJSON(w, http.StatusOK, book)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
