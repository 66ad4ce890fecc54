package book

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// Book is one catalog record. Optional numeric columns are pointers so
// an absent value round-trips as null instead of zero.
type Book struct {
	ID            string    `json:"id"`
	ISBN          string    `json:"isbn,omitempty"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Genre         string    `json:"genre,omitempty"`
	PublishedDate string    `json:"published_date,omitempty"`
	Pages         *int      `json:"pages,omitempty"`
	Language      string    `json:"language,omitempty"`
	Description   string    `json:"description,omitempty"`
	Price         *float64  `json:"price,omitempty"`
	StockQuantity int       `json:"stock_quantity"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Query defines filters and pagination for listing books.
type Query struct {
	Genre  string
	Q      string
	Sort   string
	Desc   bool
	Limit  int
	Offset int
}

// Stats summarizes the catalog for the dashboard header.
type Stats struct {
	TotalBooks  int     `json:"total_books"`
	TotalGenres int     `json:"total_genres"`
	TotalStock  int     `json:"total_stock"`
	AvgPrice    float64 `json:"avg_price"`
}
