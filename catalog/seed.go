// CLAUDE:SUMMARY Deterministic demo catalog — fixed products in both backend document shapes, category tree, idempotent.
package catalog

import (
	"context"
	"fmt"

	"github.com/sunrisefront/sunrise/normalize"
)

type seedProduct struct {
	id, slug, name, description string
	doc                         string
}

// Half the seed documents use the nested masterData shape and half the flat
// shape, so every read path exercises both normalizer branches.
var seedProducts = []seedProduct{
	{
		id: "prod-linen-shirt", slug: "linen-shirt", name: "Linen Shirt",
		description: "A crisp linen shirt for warm days.",
		doc: `{
			"id": "prod-linen-shirt",
			"masterData": {"current": {
				"name": {"en": "Linen Shirt", "de": "Leinenhemd"},
				"description": {"en": "A crisp linen shirt for warm days."},
				"slug": {"en": "linen-shirt"},
				"categories": [{"id": "cat-shirts", "name": {"en": "Shirts"}, "slug": {"en": "shirts"}}],
				"masterVariant": {
					"sku": "SUN-LS-001",
					"images": [{"url": "https://cdn.sunrise.example/img/linen-shirt.jpg"}],
					"prices": [{"value": {"centAmount": 4995, "currencyCode": "EUR"}}],
					"availability": "InStock",
					"attributes": [{"name": "brand", "value": "Sunrise"}]
				}
			}},
			"rating": {"value": 4.6, "count": 31}
		}`,
	},
	{
		id: "prod-denim-jacket", slug: "denim-jacket", name: "Denim Jacket",
		description: "Classic denim jacket with a relaxed fit.",
		doc: `{
			"id": "prod-denim-jacket",
			"masterData": {"current": {
				"name": {"en": "Denim Jacket"},
				"description": {"en": "Classic denim jacket with a relaxed fit."},
				"slug": {"en": "denim-jacket"},
				"categories": [{"id": "cat-men", "name": {"en": "Men"}, "slug": {"en": "men"}}],
				"masterVariant": {
					"sku": "SUN-DJ-002",
					"images": [{"url": "https://cdn.sunrise.example/img/denim-jacket.jpg"}],
					"prices": [{"value": {"centAmount": 8900, "currencyCode": "EUR"}}],
					"availability": "InStock",
					"attributes": [{"name": "brand", "value": "Sunrise"}]
				}
			}}
		}`,
	},
	{
		id: "prod-summer-dress", slug: "summer-dress", name: "Summer Dress",
		description: "Light floral dress in breathable cotton.",
		doc: `{
			"id": "prod-summer-dress",
			"name": "Summer Dress",
			"description": "Light floral dress in breathable cotton.",
			"sku": "SUN-SD-003",
			"slug": "summer-dress",
			"images": ["https://cdn.sunrise.example/img/summer-dress.jpg"],
			"price": {"value": {"centAmount": 6450, "currencyCode": "EUR"}},
			"categories": [{"id": "cat-dresses", "name": "Dresses", "slug": "dresses"}],
			"availability": "InStock",
			"brand": "Sunrise",
			"rating": {"value": 4.8, "count": 54}
		}`,
	},
	{
		id: "prod-leather-belt", slug: "leather-belt", name: "Leather Belt",
		description: "Full-grain leather belt with brass buckle.",
		doc: `{
			"id": "prod-leather-belt",
			"name": "Leather Belt",
			"description": "Full-grain leather belt with brass buckle.",
			"sku": "SUN-LB-004",
			"slug": "leather-belt",
			"images": ["https://cdn.sunrise.example/img/leather-belt.jpg"],
			"price": {"value": {"centAmount": 3500, "currencyCode": "EUR"}},
			"categories": [{"id": "cat-accessories", "name": "Accessories", "slug": "accessories"}],
			"availability": "InStock",
			"brand": "Sunrise"
		}`,
	},
	{
		id: "prod-canvas-sneakers", slug: "canvas-sneakers", name: "Canvas Sneakers",
		description: "Low-top canvas sneakers with rubber sole.",
		doc: `{
			"id": "prod-canvas-sneakers",
			"name": "Canvas Sneakers",
			"description": "Low-top canvas sneakers with rubber sole.",
			"sku": "SUN-CS-005",
			"slug": "canvas-sneakers",
			"images": ["https://cdn.sunrise.example/img/canvas-sneakers.jpg"],
			"price": {"value": {"centAmount": 5900, "currencyCode": "EUR"}},
			"categories": [{"id": "cat-accessories", "name": "Accessories", "slug": "accessories"}],
			"availability": "OutOfStock",
			"brand": "Sunrise",
			"rating": {"value": 4.1, "count": 9}
		}`,
	},
	{
		id: "prod-wool-scarf", slug: "wool-scarf", name: "Wool Scarf",
		description: "Merino wool scarf, woven in herringbone.",
		doc: `{
			"id": "prod-wool-scarf",
			"masterData": {"current": {
				"name": {"en": "Wool Scarf"},
				"description": {"en": "Merino wool scarf, woven in herringbone."},
				"slug": {"en": "wool-scarf"},
				"categories": [{"id": "cat-accessories", "name": {"en": "Accessories"}, "slug": {"en": "accessories"}}],
				"masterVariant": {
					"sku": "SUN-WS-006",
					"images": [{"url": "https://cdn.sunrise.example/img/wool-scarf.jpg"}],
					"prices": [{"value": {"centAmount": 2750, "currencyCode": "EUR"}}],
					"availability": "OutOfStock",
					"attributes": [{"name": "brand", "value": "Sunrise"}]
				}
			}}
		}`,
	},
}

var seedCategories = []*normalize.Category{
	{ID: "cat-men", Name: "Men", Slug: "men", Description: "Menswear"},
	{ID: "cat-women", Name: "Women", Slug: "women", Description: "Womenswear"},
	{ID: "cat-accessories", Name: "Accessories", Slug: "accessories", Description: "Belts, scarves, and more"},
	{ID: "cat-shirts", Name: "Shirts", Slug: "shirts", ParentID: "cat-men"},
	{ID: "cat-dresses", Name: "Dresses", Slug: "dresses", ParentID: "cat-women"},
}

// Seed populates the catalog with the demo data. Idempotent: re-seeding an
// already-seeded database rewrites the same rows.
func (s *Store) Seed(ctx context.Context) error {
	for i, c := range seedCategories {
		if err := s.InsertCategory(ctx, c, i); err != nil {
			return fmt.Errorf("seed category %s: %w", c.ID, err)
		}
	}
	for _, p := range seedProducts {
		if err := s.InsertProduct(ctx, p.id, p.slug, p.name, p.description, []byte(p.doc)); err != nil {
			return fmt.Errorf("seed product %s: %w", p.id, err)
		}
	}
	return nil
}
