package seotags

import (
	"fmt"

	"github.com/sunrisefront/sunrise/normalize"
)

// ProductTags builds the tag set for a product detail page.
func ProductTags(p *normalize.Product, site Site) []Tag {
	in := BasicSEO{
		Title:       p.Name,
		Description: p.Description,
		OGType:      "product",
	}
	if p.Slug != "" {
		in.Path = "/products/" + p.Slug
	}
	if len(p.Images) > 0 {
		in.ImageURL = p.Images[0]
	}
	tags := BasicTags(in, site)
	tags = append(tags,
		Tag{Attr: "property", Key: "product:price:amount", Content: p.Price.Display()},
		Tag{Attr: "property", Key: "product:price:currency", Content: p.Price.Currency},
		Tag{Attr: "property", Key: "product:availability", Content: string(p.Availability)},
	)
	return tags
}

// CategoryTags builds the tag set for a category listing page.
func CategoryTags(c *normalize.Category, site Site) []Tag {
	in := BasicSEO{
		Title:       c.Name,
		Description: c.Description,
	}
	if c.Slug != "" {
		in.Path = "/products/" + c.Slug
	}
	if in.Description == "" {
		in.Description = fmt.Sprintf("Browse %s at %s.", c.Name, site.Name)
	}
	return BasicTags(in, site)
}

// SearchTags builds the tag set for a search results page.
func SearchTags(query string, total int, site Site) []Tag {
	return BasicTags(BasicSEO{
		Title:       fmt.Sprintf("Search: %s", query),
		Description: fmt.Sprintf("%d results for %q at %s.", total, query, site.Name),
		Path:        "/search",
	}, site)
}
