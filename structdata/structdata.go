// CLAUDE:SUMMARY Pure builders mapping normalized commerce records to schema.org JSON-LD objects (Product, BreadcrumbList, CollectionPage, FAQ, WebSite, Organization, cart ItemList).
// Package structdata builds schema.org-shaped records from normalized
// domain objects.
//
// Every builder is a pure function: no I/O, no registry access, no errors.
// Missing optional input never throws; fields without a value are left out
// of the record entirely rather than emitted as null or empty. The caller
// (the page schema orchestrator) decides under which element id a record is
// registered.
package structdata

import (
	"fmt"

	"github.com/sunrisefront/sunrise/normalize"
)

// Record is one JSON-serializable schema.org object. Builders always set
// the @context/@type pair.
type Record map[string]any

const schemaContext = "https://schema.org"

// Site carries the site-wide identity every schema shares.
type Site struct {
	Name    string
	URL     string
	Locale  string
	LogoURL string
}

// availabilityURI maps the normalized availability to its schema.org URI.
func availabilityURI(a normalize.Availability) string {
	if a == normalize.InStock {
		return "https://schema.org/InStock"
	}
	return "https://schema.org/OutOfStock"
}

// FormatCents renders an integer minor-unit amount as a fixed-point decimal
// string with exactly two fraction digits. Exact for all int64 values:
// 12345 renders as "123.45".
func FormatCents(cents int64) string {
	return normalize.Price{CentAmount: cents}.Display()
}

// BuildProductSchema maps a normalized product to a schema.org Product.
// Brand falls back to the site name, currency to EUR (already guaranteed by
// the normalizer), rating is omitted when absent.
func BuildProductSchema(p *normalize.Product, site Site) Record {
	rec := Record{
		"@context": schemaContext,
		"@type":    "Product",
		"name":     p.Name,
	}
	if p.Description != "" {
		rec["description"] = p.Description
	}
	if p.SKU != "" {
		rec["sku"] = p.SKU
	}
	if len(p.Images) > 0 {
		rec["image"] = p.Images
	}

	brand := p.Brand
	if brand == "" {
		brand = site.Name
	}
	rec["brand"] = Record{"@type": "Brand", "name": brand}

	offer := Record{
		"@type":         "Offer",
		"price":         FormatCents(p.Price.CentAmount),
		"priceCurrency": p.Price.Currency,
		"availability":  availabilityURI(p.Availability),
	}
	if p.Slug != "" && site.URL != "" {
		offer["url"] = site.URL + "/products/" + p.Slug
	}
	rec["offers"] = offer

	if p.Rating != nil {
		rec["aggregateRating"] = Record{
			"@type":       "AggregateRating",
			"ratingValue": p.Rating.Value,
			"reviewCount": p.Rating.Count,
		}
	}
	return rec
}

// Breadcrumb is one entry of a breadcrumb trail, root first.
type Breadcrumb struct {
	Name string
	URL  string
}

// BuildBreadcrumbSchema maps a breadcrumb trail to a schema.org
// BreadcrumbList. Positions are 1-based in trail order.
func BuildBreadcrumbSchema(trail []Breadcrumb) Record {
	items := make([]Record, 0, len(trail))
	for i, b := range trail {
		item := Record{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     b.Name,
		}
		if b.URL != "" {
			item["item"] = b.URL
		}
		items = append(items, item)
	}
	return Record{
		"@context":        schemaContext,
		"@type":           "BreadcrumbList",
		"itemListElement": items,
	}
}

// BuildOrganizationSchema maps the site identity to a schema.org OnlineStore.
// This is the site-wide "ecommerce" record present on every page type.
func BuildOrganizationSchema(site Site) Record {
	rec := Record{
		"@context": schemaContext,
		"@type":    "OnlineStore",
		"name":     site.Name,
	}
	if site.URL != "" {
		rec["url"] = site.URL
	}
	if site.LogoURL != "" {
		rec["logo"] = site.LogoURL
	}
	return rec
}

// BuildWebsiteSchema maps the site identity to a schema.org WebSite with a
// SearchAction, which is what enables sitelinks search boxes.
func BuildWebsiteSchema(site Site) Record {
	rec := Record{
		"@context": schemaContext,
		"@type":    "WebSite",
		"name":     site.Name,
	}
	if site.URL != "" {
		rec["url"] = site.URL
		rec["potentialAction"] = Record{
			"@type":       "SearchAction",
			"target":      site.URL + "/search?q={search_term_string}",
			"query-input": "required name=search_term_string",
		}
	}
	return rec
}

// BuildCategorySchema maps a category and its product listing to a
// schema.org CollectionPage holding an ItemList.
func BuildCategorySchema(c *normalize.Category, products []*normalize.Product, site Site) Record {
	rec := Record{
		"@context": schemaContext,
		"@type":    "CollectionPage",
		"name":     c.Name,
	}
	if c.Description != "" {
		rec["description"] = c.Description
	}
	if c.Slug != "" && site.URL != "" {
		rec["url"] = site.URL + "/products/" + c.Slug
	}
	if len(products) > 0 {
		rec["mainEntity"] = productList(products, site)
	}
	return rec
}

// BuildSearchResultsSchema maps a search query and its hits to a schema.org
// SearchResultsPage.
func BuildSearchResultsSchema(query string, results []*normalize.Product, site Site) Record {
	rec := Record{
		"@context": schemaContext,
		"@type":    "SearchResultsPage",
		"name":     fmt.Sprintf("Search results for %q", query),
	}
	if len(results) > 0 {
		rec["mainEntity"] = productList(results, site)
	}
	return rec
}

// CartItem is one cart line: a normalized product plus its quantity.
type CartItem struct {
	Product  *normalize.Product
	Quantity int
}

// BuildCartSchema maps cart lines to a schema.org ItemList of Products.
// Quantities ride on the list items as orderQuantity.
func BuildCartSchema(items []CartItem, site Site) Record {
	elems := make([]Record, 0, len(items))
	for i, it := range items {
		elem := Record{
			"@type":    "ListItem",
			"position": i + 1,
			"item":     BuildProductSchema(it.Product, site),
		}
		if it.Quantity > 0 {
			elem["orderQuantity"] = it.Quantity
		}
		elems = append(elems, elem)
	}
	return Record{
		"@context":        schemaContext,
		"@type":           "ItemList",
		"name":            "Shopping Cart",
		"numberOfItems":   len(items),
		"itemListElement": elems,
	}
}

// FAQ is one question/answer pair.
type FAQ struct {
	Question string
	Answer   string
}

// BuildFAQSchema maps question/answer pairs to a schema.org FAQPage.
func BuildFAQSchema(faqs []FAQ) Record {
	items := make([]Record, 0, len(faqs))
	for _, f := range faqs {
		items = append(items, Record{
			"@type":          "Question",
			"name":           f.Question,
			"acceptedAnswer": Record{"@type": "Answer", "text": f.Answer},
		})
	}
	return Record{
		"@context":   schemaContext,
		"@type":      "FAQPage",
		"mainEntity": items,
	}
}

func productList(products []*normalize.Product, site Site) Record {
	elems := make([]Record, 0, len(products))
	for i, p := range products {
		elems = append(elems, Record{
			"@type":    "ListItem",
			"position": i + 1,
			"item":     BuildProductSchema(p, site),
		})
	}
	return Record{
		"@type":           "ItemList",
		"numberOfItems":   len(products),
		"itemListElement": elems,
	}
}
