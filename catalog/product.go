// CLAUDE:SUMMARY Product reads — raw documents normalized on the way out, LIKE-based search over name and description.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/sunrisefront/sunrise/normalize"
)

// InsertProduct stores a raw backend product document. The name,
// description, and slug columns exist only for search and lookup; the doc
// column is the source of truth.
func (s *Store) InsertProduct(ctx context.Context, id, slug, name, description string, doc []byte) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO products (id, slug, name, description, doc, created_at)
		VALUES (?,?,?,?,?,?)
		ON CONFLICT(id) DO UPDATE SET slug=excluded.slug, name=excluded.name,
			description=excluded.description, doc=excluded.doc`,
		id, slug, name, description, string(doc), time.Now().UnixMilli(),
	)
	return err
}

// GetProduct retrieves a product by id or slug, normalized. Returns
// (nil, nil) when no row matches.
func (s *Store) GetProduct(ctx context.Context, idOrSlug string) (*normalize.Product, error) {
	var doc string
	err := s.DB.QueryRowContext(ctx, `
		SELECT doc FROM products WHERE id = ? OR slug = ?`,
		idOrSlug, idOrSlug).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return normalize.ProductFromJSON([]byte(doc))
}

// SearchProducts returns products whose name or description contains the
// query, case-insensitively. Empty query lists everything. Limit <= 0
// means no limit.
func (s *Store) SearchProducts(ctx context.Context, query string, limit int) ([]*normalize.Product, error) {
	if limit <= 0 {
		limit = -1
	}
	pat := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	rows, err := s.DB.QueryContext(ctx, `
		SELECT doc FROM products
		WHERE lower(name) LIKE ? OR lower(description) LIKE ?
		ORDER BY name LIMIT ?`,
		pat, pat, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

// ProductsInCategory returns products referencing the category id. Category
// membership lives inside the raw documents, so this filters post-scan.
func (s *Store) ProductsInCategory(ctx context.Context, categoryID string) ([]*normalize.Product, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT doc FROM products ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	all, err := scanProducts(rows)
	if err != nil {
		return nil, err
	}
	var out []*normalize.Product
	for _, p := range all {
		for _, c := range p.Categories {
			if c.ID == categoryID || c.Slug == categoryID {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

// CountProducts returns the catalog size.
func (s *Store) CountProducts(ctx context.Context) (int, error) {
	var n int
	err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&n)
	return n, err
}

func scanProducts(rows *sql.Rows) ([]*normalize.Product, error) {
	var out []*normalize.Product
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		p, err := normalize.ProductFromJSON([]byte(doc))
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
