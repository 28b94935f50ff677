package normalize

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const flatShirt = `{
	"id": "p-100",
	"name": "Linen Shirt",
	"description": "<p>A <b>crisp</b> linen shirt.</p>",
	"sku": "SHIRT-100",
	"slug": "linen-shirt",
	"images": ["https://img.example.com/shirt-1.jpg", {"url": "https://img.example.com/shirt-2.jpg"}],
	"price": {"value": {"centAmount": 12345, "currencyCode": "USD"}},
	"categories": [{"id": "c-1", "name": "Shirts", "slug": "shirts"}],
	"availability": "InStock",
	"brand": "Sunrise",
	"rating": {"value": 4.5, "count": 12}
}`

const nestedShirt = `{
	"id": "p-100",
	"masterData": {
		"current": {
			"name": {"en": "Linen Shirt", "de": "Leinenhemd"},
			"description": {"en": "<p>A <b>crisp</b> linen shirt.</p>"},
			"slug": {"en": "linen-shirt"},
			"categories": [{"id": "c-1", "name": {"en": "Shirts"}, "slug": {"en": "shirts"}}],
			"masterVariant": {
				"sku": "SHIRT-100",
				"images": [{"url": "https://img.example.com/shirt-1.jpg"}, {"url": "https://img.example.com/shirt-2.jpg"}],
				"prices": [{"value": {"centAmount": 12345, "currencyCode": "USD"}}],
				"availability": "InStock",
				"attributes": [{"name": "brand", "value": "Sunrise"}]
			}
		}
	},
	"rating": {"value": 4.5, "count": 12}
}`

func TestProduct_ShapesConverge(t *testing.T) {
	flat, err := ProductFromJSON([]byte(flatShirt))
	if err != nil {
		t.Fatalf("flat: %v", err)
	}
	nested, err := ProductFromJSON([]byte(nestedShirt))
	if err != nil {
		t.Fatalf("nested: %v", err)
	}
	if diff := cmp.Diff(flat, nested); diff != "" {
		t.Errorf("flat and nested shapes diverge (-flat +nested):\n%s", diff)
	}
}

func TestProduct_FlatFields(t *testing.T) {
	p, err := ProductFromJSON([]byte(flatShirt))
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "Linen Shirt" {
		t.Errorf("Name = %q", p.Name)
	}
	if p.Description != "A crisp linen shirt." {
		t.Errorf("Description = %q, markup not stripped", p.Description)
	}
	if p.Price.CentAmount != 12345 || p.Price.Currency != "USD" {
		t.Errorf("Price = %+v", p.Price)
	}
	if len(p.Images) != 2 {
		t.Errorf("Images = %v", p.Images)
	}
	if p.Availability != InStock {
		t.Errorf("Availability = %q", p.Availability)
	}
	if p.Rating == nil || p.Rating.Value != 4.5 || p.Rating.Count != 12 {
		t.Errorf("Rating = %+v", p.Rating)
	}
}

func TestProduct_AvailabilityNonLiteral(t *testing.T) {
	for _, raw := range []string{`"instock"`, `"available"`, `"IN_STOCK"`, `""`} {
		p, err := ProductFromJSON([]byte(`{"id": "p", "name": "x", "availability": ` + raw + `}`))
		if err != nil {
			t.Fatalf("availability %s: %v", raw, err)
		}
		if p.Availability != OutOfStock {
			t.Errorf("availability %s → %q, want OutOfStock", raw, p.Availability)
		}
	}
}

func TestProduct_Fallbacks(t *testing.T) {
	p, err := ProductFromJSON([]byte(`{"id": "p-empty"}`))
	if err != nil {
		t.Fatal(err)
	}
	if p.Images == nil {
		t.Error("Images is nil, want empty slice")
	}
	if p.Price.Currency != "EUR" {
		t.Errorf("Currency = %q, want EUR fallback", p.Price.Currency)
	}
	if p.Availability != OutOfStock {
		t.Errorf("Availability = %q", p.Availability)
	}
	if p.Rating != nil {
		t.Errorf("Rating = %+v, want nil", p.Rating)
	}
}

func TestProduct_NestedWithoutVariant(t *testing.T) {
	p, err := ProductFromJSON([]byte(`{"id": "p", "masterData": {"current": {"name": {"en": "Bare"}}}}`))
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "Bare" {
		t.Errorf("Name = %q", p.Name)
	}
	if p.Availability != OutOfStock || p.Price.Currency != "EUR" {
		t.Errorf("variant fallbacks missing: %+v", p)
	}
}

func TestProduct_RatingZeroCountOmitted(t *testing.T) {
	p, err := ProductFromJSON([]byte(`{"id": "p", "rating": {"value": 5, "count": 0}}`))
	if err != nil {
		t.Fatal(err)
	}
	if p.Rating != nil {
		t.Errorf("Rating = %+v, want nil for zero count", p.Rating)
	}
}

func TestCategory_BothShapes(t *testing.T) {
	flat, err := CategoryFromJSON([]byte(`{"id": "c-1", "name": "Shirts", "slug": "shirts", "parentId": "c-0"}`))
	if err != nil {
		t.Fatal(err)
	}
	nested, err := CategoryFromJSON([]byte(`{"id": "c-1", "name": {"en": "Shirts"}, "slug": {"en": "shirts"}, "parent": {"id": "c-0"}}`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(flat, nested); diff != "" {
		t.Errorf("category shapes diverge:\n%s", diff)
	}
}

func TestFlexString_LocalizedFallbackOrder(t *testing.T) {
	var f flexString
	if err := f.UnmarshalJSON([]byte(`{"fr": "Chemise", "de": "Hemd"}`)); err != nil {
		t.Fatal(err)
	}
	// No "en" key: first key in sorted order wins.
	if f.String() != "Hemd" {
		t.Errorf("got %q, want %q", f.String(), "Hemd")
	}
}
