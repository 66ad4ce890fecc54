package book

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Service provides catalog business logic on top of the repository.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns books matching the query plus the unpaged total.
func (s *Service) List(ctx context.Context, q Query) ([]Book, int, error) {
	return s.repo.List(ctx, q)
}

func (s *Service) GetByID(ctx context.Context, id string) (Book, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, b *Book) error {
	return s.repo.Create(ctx, b)
}

func (s *Service) Update(ctx context.Context, b *Book) error {
	return s.repo.Update(ctx, b)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	return s.repo.Stats(ctx)
}

// csvHeader matches the columns of the UI's CSV download.
var csvHeader = []string{"ID", "도서명", "저자", "ISBN", "출판일", "장르", "페이지", "언어", "설명", "가격", "재고", "등록일"}

// ExportCSV streams the whole catalog as CSV.
func (s *Service) ExportCSV(ctx context.Context, w io.Writer) error {
	books, err := s.repo.All(ctx)
	if err != nil {
		return fmt.Errorf("export books: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, b := range books {
		pages := ""
		if b.Pages != nil {
			pages = strconv.Itoa(*b.Pages)
		}
		price := ""
		if b.Price != nil {
			price = strconv.FormatFloat(*b.Price, 'f', -1, 64)
		}
		record := []string{
			b.ID,
			b.Title,
			b.Author,
			b.ISBN,
			b.PublishedDate,
			b.Genre,
			pages,
			b.Language,
			b.Description,
			price,
			strconv.Itoa(b.StockQuantity),
			b.CreatedAt.Format("2006-01-02"),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
