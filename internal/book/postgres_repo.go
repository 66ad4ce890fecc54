package book

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

const bookColumns = `id, isbn, title, author, genre, published_date, pages, language, description, price, stock_quantity, created_at, updated_at`

func scanBook(row pgx.Row) (Book, error) {
	var b Book
	err := row.Scan(
		&b.ID, &b.ISBN, &b.Title, &b.Author, &b.Genre, &b.PublishedDate,
		&b.Pages, &b.Language, &b.Description, &b.Price, &b.StockQuantity,
		&b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

// sortColumns maps the UI's sort keys onto real columns. Anything else
// falls back to newest-first.
var sortColumns = map[string]string{
	"title":          "title",
	"author":         "author",
	"published_date": "published_date",
	"price":          "price",
	"created_at":     "created_at",
}

func (r *PostgresRepo) List(ctx context.Context, q Query) ([]Book, int, error) {
	clauses := []string{"1=1"}
	args := []any{}
	argn := 1

	if q.Genre != "" {
		clauses = append(clauses, fmt.Sprintf("genre = $%d", argn))
		args = append(args, q.Genre)
		argn++
	}

	if q.Q != "" {
		clauses = append(clauses, fmt.Sprintf("(title ILIKE $%d OR author ILIKE $%d OR genre ILIKE $%d OR isbn ILIKE $%d)", argn, argn, argn, argn))
		args = append(args, "%"+q.Q+"%")
		argn++
	}

	where := "WHERE " + strings.Join(clauses, " AND ")

	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM books "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	orderBy := "created_at DESC"
	if col, ok := sortColumns[q.Sort]; ok {
		dir := "ASC"
		if q.Desc {
			dir = "DESC"
		}
		orderBy = col + " " + dir
	}

	dataSQL := fmt.Sprintf(`SELECT %s FROM books %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		bookColumns, where, orderBy, argn, argn+1)
	args = append(args, q.Limit, q.Offset)

	rows, err := r.db.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, b)
	}
	return out, total, rows.Err()
}

func (r *PostgresRepo) All(ctx context.Context) ([]Book, error) {
	rows, err := r.db.Query(ctx, fmt.Sprintf("SELECT %s FROM books ORDER BY created_at DESC", bookColumns))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Book, error) {
	row := r.db.QueryRow(ctx, fmt.Sprintf("SELECT %s FROM books WHERE id = $1", bookColumns), id)
	b, err := scanBook(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) Create(ctx context.Context, b *Book) error {
	const query = `
		INSERT INTO books (id, isbn, title, author, genre, published_date, pages, language, description, price, stock_quantity, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now(), now())
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		b.ISBN, b.Title, b.Author, b.Genre, b.PublishedDate,
		b.Pages, b.Language, b.Description, b.Price, b.StockQuantity,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert book: %w", err)
	}
	return nil
}

func (r *PostgresRepo) Update(ctx context.Context, b *Book) error {
	const query = `
		UPDATE books SET
			isbn = $2, title = $3, author = $4, genre = $5, published_date = $6,
			pages = $7, language = $8, description = $9, price = $10, stock_quantity = $11,
			updated_at = now()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRow(ctx, query,
		b.ID, b.ISBN, b.Title, b.Author, b.Genre, b.PublishedDate,
		b.Pages, b.Language, b.Description, b.Price, b.StockQuantity,
	).Scan(&b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("update book: %w", err)
	}
	return nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM books WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) Stats(ctx context.Context) (Stats, error) {
	const query = `
		SELECT
			COUNT(*),
			COUNT(DISTINCT genre) FILTER (WHERE genre <> ''),
			COALESCE(SUM(stock_quantity), 0),
			COALESCE(ROUND(AVG(price), 2), 0)
		FROM books`

	var s Stats
	err := r.db.QueryRow(ctx, query).Scan(&s.TotalBooks, &s.TotalGenres, &s.TotalStock, &s.AvgPrice)
	if err != nil {
		return Stats{}, fmt.Errorf("catalog stats: %w", err)
	}
	return s, nil
}
