package catalog

import (
	"context"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/sunrisefront/sunrise/dbopen"
	"github.com/sunrisefront/sunrise/normalize"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	db := dbopen.OpenMemory(t)
	if _, err := db.Exec(Schema); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	s := &Store{DB: db}
	if err := s.Seed(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return s
}

func TestSeedIdempotent(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	before, err := s.CountProducts(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if err := s.Seed(ctx); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	after, err := s.CountProducts(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if before != after {
		t.Fatalf("re-seed changed product count: %d -> %d", before, after)
	}
}

func TestGetProduct_ByIDAndSlug(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	byID, err := s.GetProduct(ctx, "prod-linen-shirt")
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if byID == nil {
		t.Fatal("get by id: nil")
	}
	bySlug, err := s.GetProduct(ctx, "linen-shirt")
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if bySlug == nil || bySlug.ID != byID.ID {
		t.Fatalf("slug lookup returned %+v", bySlug)
	}
	if byID.Name != "Linen Shirt" {
		t.Errorf("Name = %q, nested document not normalized", byID.Name)
	}
	if byID.Price.CentAmount != 4995 || byID.Price.Currency != "EUR" {
		t.Errorf("Price = %+v", byID.Price)
	}
	if byID.Brand != "Sunrise" {
		t.Errorf("Brand = %q, attribute not lifted", byID.Brand)
	}
}

func TestGetProduct_Missing(t *testing.T) {
	s := testStore(t)
	p, err := s.GetProduct(context.Background(), "no-such-product")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p != nil {
		t.Fatalf("got %+v, want nil for missing product", p)
	}
}

func TestSearchProducts(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	hits, err := s.SearchProducts(ctx, "SHIRT", 0)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(hits) != 1 || hits[0].Slug != "linen-shirt" {
		t.Fatalf("search shirt: %d hits", len(hits))
	}

	all, err := s.SearchProducts(ctx, "", 0)
	if err != nil {
		t.Fatalf("search all: %v", err)
	}
	if len(all) != len(seedProducts) {
		t.Fatalf("empty query returned %d, want %d", len(all), len(seedProducts))
	}

	limited, err := s.SearchProducts(ctx, "", 2)
	if err != nil {
		t.Fatalf("search limited: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("limit 2 returned %d", len(limited))
	}
}

func TestProductsInCategory(t *testing.T) {
	s := testStore(t)
	got, err := s.ProductsInCategory(context.Background(), "cat-accessories")
	if err != nil {
		t.Fatalf("category products: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("accessories has %d products, want 3", len(got))
	}
	for _, p := range got {
		if p.Availability != normalize.InStock && p.Availability != normalize.OutOfStock {
			t.Errorf("product %s has unnormalized availability %q", p.ID, p.Availability)
		}
	}
}

func TestNavigationTree(t *testing.T) {
	s := testStore(t)
	roots, err := s.Navigation(context.Background())
	if err != nil {
		t.Fatalf("navigation: %v", err)
	}
	if len(roots) != 3 {
		t.Fatalf("got %d roots, want 3", len(roots))
	}

	byID := map[string]*NavigationNode{}
	for _, r := range roots {
		byID[r.ID] = r
	}
	men, ok := byID["cat-men"]
	if !ok {
		t.Fatal("cat-men missing from roots")
	}
	if len(men.Children) != 1 || men.Children[0].ID != "cat-shirts" {
		t.Fatalf("men children = %+v", men.Children)
	}
	if men.Path != "/products/men" {
		t.Errorf("Path = %q", men.Path)
	}
}

func TestGetCategory(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	c, err := s.GetCategory(ctx, "dresses")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if c == nil || c.ID != "cat-dresses" {
		t.Fatalf("got %+v", c)
	}
	if c.ParentID != "cat-women" {
		t.Errorf("ParentID = %q", c.ParentID)
	}

	missing, err := s.GetCategory(ctx, "no-such")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("got %+v, want nil", missing)
	}
}
