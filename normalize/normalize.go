// CLAUDE:SUMMARY Normalizes the two incompatible raw product/category shapes (nested master-data variant vs flat) into canonical records.
// Package normalize reconciles the two raw shapes of product and category
// data into one canonical record.
//
// The upstream catalog API nests the sellable state under
// masterData.current.masterVariant with localized name/description maps,
// while the mocked data source uses flat top-level fields with plain strings.
// Detection is structural, not flag-based: if the nested current-variant path
// is present the nested adapter runs, otherwise the flat adapter does. The
// rest of the system only ever sees the canonical shape, so this package is
// the single seam isolating that disagreement.
package normalize

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var stripTags = bluemonday.StrictPolicy()

// raw covers both input shapes. Exactly one adapter consumes it, chosen by
// the structural predicate in Product/Category below.
type rawProduct struct {
	ID         string         `json:"id"`
	MasterData *rawMasterData `json:"masterData"`

	// Flat shape fields.
	Name         flexString    `json:"name"`
	Description  flexString    `json:"description"`
	SKU          string        `json:"sku"`
	Slug         flexString    `json:"slug"`
	Images       []flexImage   `json:"images"`
	Price        *rawPrice     `json:"price"`
	Categories   []rawCategory `json:"categories"`
	Availability string        `json:"availability"`
	Brand        string        `json:"brand"`
	Rating       *rawRating    `json:"rating"`
}

type rawMasterData struct {
	Current *rawCurrent `json:"current"`
}

type rawCurrent struct {
	Name          flexString    `json:"name"`
	Description   flexString    `json:"description"`
	Slug          flexString    `json:"slug"`
	Categories    []rawCategory `json:"categories"`
	MasterVariant *rawVariant   `json:"masterVariant"`
}

type rawVariant struct {
	SKU          string        `json:"sku"`
	Images       []flexImage   `json:"images"`
	Prices       []rawPrice    `json:"prices"`
	Price        *rawPrice     `json:"price"`
	Availability string        `json:"availability"`
	Attributes   []rawAttr     `json:"attributes"`
}

type rawAttr struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

type rawPrice struct {
	Value struct {
		CentAmount   int64  `json:"centAmount"`
		CurrencyCode string `json:"currencyCode"`
	} `json:"value"`
}

type rawCategory struct {
	ID       string     `json:"id"`
	Name     flexString `json:"name"`
	Slug     flexString `json:"slug"`
	Desc     flexString `json:"description"`
	ParentID string     `json:"parentId"`
	Parent   *struct {
		ID string `json:"id"`
	} `json:"parent"`
}

type rawRating struct {
	Value   float64 `json:"value"`
	Average float64 `json:"averageRating"`
	Count   int     `json:"count"`
}

// ProductFromJSON normalizes a raw product document in either shape.
func ProductFromJSON(data []byte) (*Product, error) {
	var r rawProduct
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("normalize: decode product: %w", err)
	}
	if r.MasterData != nil && r.MasterData.Current != nil {
		return nestedProduct(&r), nil
	}
	return flatProduct(&r), nil
}

func flatProduct(r *rawProduct) *Product {
	p := &Product{
		ID:           r.ID,
		Name:         r.Name.String(),
		Description:  cleanText(r.Description.String()),
		SKU:          r.SKU,
		Slug:         r.Slug.String(),
		Images:       imageURLs(r.Images),
		Categories:   categoryRefs(r.Categories),
		Availability: availability(r.Availability),
		Brand:        r.Brand,
	}
	p.Price = price(r.Price, nil)
	p.Rating = rating(r.Rating)
	return p
}

func nestedProduct(r *rawProduct) *Product {
	cur := r.MasterData.Current
	p := &Product{
		ID:          r.ID,
		Name:        cur.Name.String(),
		Description: cleanText(cur.Description.String()),
		Slug:        cur.Slug.String(),
		Categories:  categoryRefs(cur.Categories),
	}
	v := cur.MasterVariant
	if v != nil {
		p.SKU = v.SKU
		p.Images = imageURLs(v.Images)
		p.Availability = availability(v.Availability)
		p.Price = price(v.Price, v.Prices)
		p.Brand = attrString(v.Attributes, "brand")
	} else {
		p.Images = []string{}
		p.Availability = OutOfStock
		p.Price = Price{Currency: "EUR"}
	}
	p.Rating = rating(r.Rating)
	return p
}

// CategoryFromJSON normalizes a raw category document in either shape.
func CategoryFromJSON(data []byte) (*Category, error) {
	var r rawCategory
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("normalize: decode category: %w", err)
	}
	c := &Category{
		ID:          r.ID,
		Name:        r.Name.String(),
		Slug:        r.Slug.String(),
		Description: cleanText(r.Desc.String()),
		ParentID:    r.ParentID,
	}
	if c.ParentID == "" && r.Parent != nil {
		c.ParentID = r.Parent.ID
	}
	return c, nil
}

// --- field helpers ---

func availability(raw string) Availability {
	if raw == string(InStock) {
		return InStock
	}
	return OutOfStock
}

func price(single *rawPrice, list []rawPrice) Price {
	p := single
	if p == nil && len(list) > 0 {
		p = &list[0]
	}
	if p == nil {
		return Price{Currency: "EUR"}
	}
	out := Price{CentAmount: p.Value.CentAmount, Currency: p.Value.CurrencyCode}
	if out.Currency == "" {
		out.Currency = "EUR"
	}
	return out
}

func imageURLs(imgs []flexImage) []string {
	urls := make([]string, 0, len(imgs))
	for _, im := range imgs {
		if im.URL != "" {
			urls = append(urls, im.URL)
		}
	}
	return urls
}

func categoryRefs(cats []rawCategory) []CategoryRef {
	refs := make([]CategoryRef, 0, len(cats))
	for _, c := range cats {
		refs = append(refs, CategoryRef{ID: c.ID, Name: c.Name.String(), Slug: c.Slug.String()})
	}
	return refs
}

func rating(r *rawRating) *Rating {
	if r == nil || r.Count == 0 {
		return nil
	}
	val := r.Value
	if val == 0 {
		val = r.Average
	}
	return &Rating{Value: val, Count: r.Count}
}

func attrString(attrs []rawAttr, name string) string {
	for _, a := range attrs {
		if a.Name != name {
			continue
		}
		var s string
		if err := json.Unmarshal(a.Value, &s); err == nil {
			return s
		}
	}
	return ""
}

// cleanText strips markup and collapses whitespace so descriptions are safe
// to embed into meta tags and JSON-LD text fields.
func cleanText(s string) string {
	if s == "" {
		return ""
	}
	return strings.Join(strings.Fields(stripTags.Sanitize(s)), " ")
}

// --- flexible field types ---

// flexString accepts a plain JSON string or a localized map ({"en": "..."}).
// For maps, "en" wins, otherwise the first key in sorted order.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("string or localized map expected: %w", err)
	}
	if v, ok := m["en"]; ok {
		*f = flexString(v)
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > 0 {
		*f = flexString(m[keys[0]])
	}
	return nil
}

func (f flexString) String() string { return string(f) }

// flexImage accepts "https://..." or {"url": "https://..."}.
type flexImage struct {
	URL string `json:"url"`
}

func (f *flexImage) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.URL = s
		return nil
	}
	type alias flexImage
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return fmt.Errorf("image url or object expected: %w", err)
	}
	f.URL = a.URL
	return nil
}
