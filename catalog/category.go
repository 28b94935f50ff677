// CLAUDE:SUMMARY Category reads and the navigation tree reassembled from parent_id rows.
package catalog

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sunrisefront/sunrise/normalize"
)

// NavigationNode is one entry of the storefront navigation tree.
type NavigationNode struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Slug     string            `json:"slug"`
	Path     string            `json:"path"`
	Children []*NavigationNode `json:"children,omitempty"`
}

// InsertCategory stores a category row.
func (s *Store) InsertCategory(ctx context.Context, c *normalize.Category, position int) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO categories (id, name, slug, description, parent_id, position)
		VALUES (?,?,?,?,?,?)
		ON CONFLICT(id) DO UPDATE SET name=excluded.name, slug=excluded.slug,
			description=excluded.description, parent_id=excluded.parent_id,
			position=excluded.position`,
		c.ID, c.Name, c.Slug, c.Description, nullStr(c.ParentID), position,
	)
	return err
}

// GetCategory retrieves a category by id or slug. Returns (nil, nil) when
// no row matches.
func (s *Store) GetCategory(ctx context.Context, idOrSlug string) (*normalize.Category, error) {
	c := &normalize.Category{}
	var parentID sql.NullString
	err := s.DB.QueryRowContext(ctx, `
		SELECT id, name, slug, description, parent_id
		FROM categories WHERE id = ? OR slug = ?`,
		idOrSlug, idOrSlug).Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &parentID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c.ParentID = parentID.String
	return c, nil
}

// ListCategories returns all categories in navigation order.
func (s *Store) ListCategories(ctx context.Context) ([]*normalize.Category, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, name, slug, description, parent_id
		FROM categories ORDER BY position, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*normalize.Category
	for rows.Next() {
		c := &normalize.Category{}
		var parentID sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &parentID); err != nil {
			return nil, err
		}
		c.ParentID = parentID.String
		out = append(out, c)
	}
	return out, rows.Err()
}

// Navigation reassembles the category tree. Top-level nodes are categories
// without a parent; paths are /products/<slug>.
func (s *Store) Navigation(ctx context.Context) ([]*NavigationNode, error) {
	cats, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	nodes := make(map[string]*NavigationNode, len(cats))
	for _, c := range cats {
		nodes[c.ID] = &NavigationNode{
			ID:   c.ID,
			Name: c.Name,
			Slug: c.Slug,
			Path: "/products/" + c.Slug,
		}
	}

	var roots []*NavigationNode
	for _, c := range cats {
		n := nodes[c.ID]
		if c.ParentID != "" {
			if parent, ok := nodes[c.ParentID]; ok {
				parent.Children = append(parent.Children, n)
				continue
			}
		}
		roots = append(roots, n)
	}
	return roots, nil
}

func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}
