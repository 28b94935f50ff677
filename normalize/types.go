package normalize

import "fmt"

// Availability is the normalized stock state. Only the literal raw value
// "InStock" maps to InStock; everything else, including absence, maps to
// OutOfStock.
type Availability string

const (
	InStock    Availability = "InStock"
	OutOfStock Availability = "OutOfStock"
)

// Price is a monetary amount in integer minor units.
type Price struct {
	CentAmount int64  `json:"centAmount"`
	Currency   string `json:"currencyCode"`
}

// Display renders the amount as a fixed-point decimal string with exactly
// two fraction digits. Integer arithmetic only, so the result is exact for
// every int64 amount: 12345 renders as "123.45".
func (p Price) Display() string {
	cents := p.CentAmount
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// Rating aggregates review statistics. Nil when the product has no reviews.
type Rating struct {
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// CategoryRef is a category reference carried on a product.
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Product is the canonical product shape consumed by the schema and SEO
// builders. Every field a consumer dereferences without a guard has a
// defined fallback: strings default to "", Images to an empty slice,
// Currency to EUR, Availability to OutOfStock. Rating stays nil when no
// review data exists and is omitted downstream rather than emitted as null.
type Product struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	SKU          string        `json:"sku"`
	Slug         string        `json:"slug"`
	Images       []string      `json:"images"`
	Price        Price         `json:"price"`
	Categories   []CategoryRef `json:"categories"`
	Availability Availability  `json:"availability"`
	Brand        string        `json:"brand"`
	Rating       *Rating       `json:"rating,omitempty"`
}

// Category is the canonical category shape.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ParentID    string `json:"parentId"`
}
