package book

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"libman/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// bookPayload is the create/update request body.
type bookPayload struct {
	Title         string   `json:"title" validate:"required,max=300"`
	Author        string   `json:"author" validate:"required,max=200"`
	ISBN          string   `json:"isbn" validate:"omitempty,isbn"`
	Genre         string   `json:"genre" validate:"max=100"`
	PublishedDate string   `json:"published_date" validate:"omitempty,datetime=2006-01-02"`
	Pages         *int     `json:"pages" validate:"omitempty,gte=1"`
	Language      string   `json:"language" validate:"max=50"`
	Description   string   `json:"description"`
	Price         *float64 `json:"price" validate:"omitempty,gte=0"`
	StockQuantity int      `json:"stock_quantity" validate:"gte=0"`
}

func (p *bookPayload) toBook() Book {
	return Book{
		Title:         p.Title,
		Author:        p.Author,
		ISBN:          p.ISBN,
		Genre:         p.Genre,
		PublishedDate: p.PublishedDate,
		Pages:         p.Pages,
		Language:      p.Language,
		Description:   p.Description,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
	}
}

func decodePayload(w http.ResponseWriter, r *http.Request) (*bookPayload, bool) {
	var p bookPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid JSON body")
		return nil, false
	}
	if fieldErrors := ValidateStruct(&p); fieldErrors != nil {
		httpx.JSON(w, http.StatusBadRequest, map[string]any{
			"error":  "validation failed",
			"fields": fieldErrors,
		})
		return nil, false
	}
	return &p, true
}

// List handles GET /api/books
// @Summary List catalog books
// @Tags books
// @Produce json
// @Param genre query string false "Filter by genre"
// @Param q query string false "Search title/author/genre/ISBN"
// @Param sort query string false "Sort key: title, author, published_date, price, created_at"
// @Param desc query bool false "Sort descending"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Success 200 {object} httpx.ListResponse
// @Router /api/books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(query.Get("page_size"))
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	q := Query{
		Genre:  query.Get("genre"),
		Q:      query.Get("q"),
		Sort:   query.Get("sort"),
		Desc:   query.Get("desc") == "true",
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	}

	books, total, err := h.service.List(r.Context(), q)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "server error")
		return
	}
	if books == nil {
		books = []Book{}
	}

	httpx.List(w, books, page, pageSize, total)
}

// Get handles GET /api/books/{id}
// @Summary Get one book
// @Tags books
// @Produce json
// @Success 200 {object} book.Book
// @Failure 404 {object} map[string]string
// @Router /api/books/{id} [get]
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "book not found")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "server error")
		return
	}
	httpx.JSON(w, http.StatusOK, b)
}

// Create handles POST /api/books
// @Summary Add a book to the catalog
// @Tags books
// @Accept json
// @Produce json
// @Success 201 {object} book.Book
// @Failure 400 {object} map[string]string
// @Router /api/books [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := decodePayload(w, r)
	if !ok {
		return
	}

	b := p.toBook()
	if err := h.service.Create(r.Context(), &b); err != nil {
		httpx.Error(w, http.StatusInternalServerError, "server error")
		return
	}
	httpx.JSON(w, http.StatusCreated, b)
}

// Update handles PUT /api/books/{id}
// @Summary Update a catalog book
// @Tags books
// @Accept json
// @Produce json
// @Success 200 {object} book.Book
// @Failure 404 {object} map[string]string
// @Router /api/books/{id} [put]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	p, ok := decodePayload(w, r)
	if !ok {
		return
	}

	b := p.toBook()
	b.ID = r.PathValue("id")
	if err := h.service.Update(r.Context(), &b); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "book not found")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "server error")
		return
	}
	httpx.JSON(w, http.StatusOK, b)
}

// Delete handles DELETE /api/books/{id}
// @Summary Remove a book from the catalog
// @Tags books
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/books/{id} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "book not found")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Stats handles GET /api/books/stats
// @Summary Catalog totals
// @Tags books
// @Produce json
// @Success 200 {object} book.Stats
// @Router /api/books/stats [get]
func (h *HTTPHandler) Stats(w http.ResponseWriter, r *http.Request) {
	s, err := h.service.Stats(r.Context())
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "server error")
		return
	}
	httpx.JSON(w, http.StatusOK, s)
}

// Export handles GET /api/books/export
// @Summary Download the catalog as CSV
// @Tags books
// @Produce text/csv
// @Success 200
// @Router /api/books/export [get]
func (h *HTTPHandler) Export(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.service.ExportCSV(r.Context(), &buf); err != nil {
		httpx.Error(w, http.StatusInternalServerError, "server error")
		return
	}

	filename := fmt.Sprintf("books_%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	_, _ = buf.WriteTo(w)
}
