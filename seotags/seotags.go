// CLAUDE:SUMMARY Pure builders mapping commerce records to fixed meta/link tag sets — titles, descriptions, Open Graph, Twitter Card, crawler and AI-agent directives.
// Package seotags builds the fixed, named meta and link tag sets for each
// page kind.
//
// Builders are pure: they return tag slices and never touch the registry.
// Each tag carries the attribute it is keyed on (name= or property=), which
// is what lets the registry replace rather than append on re-assertion.
package seotags

import (
	"strings"
)

// Tag is one <meta> element, keyed by its name= or property= attribute.
type Tag struct {
	Attr    string // "name" or "property"
	Key     string
	Content string
}

// Link is one <link> element, keyed by its rel= attribute.
type Link struct {
	Rel  string
	Href string
}

// Site carries the site-wide identity and agent endpoints shared by all
// SEO tag sets.
type Site struct {
	Name        string
	URL         string
	TwitterSite string
	AIAPIPath   string
	MCPPath     string
}

// maxDescriptionRunes bounds meta descriptions; search engines truncate
// around this length anyway.
const maxDescriptionRunes = 160

// crawlerAgents is the fixed set of crawler directives re-asserted on every
// basic-SEO call. AI crawlers are listed explicitly so the index policy
// reaches them even when they ignore the generic robots rule.
var crawlerAgents = []string{
	"robots",
	"googlebot",
	"bingbot",
	"gptbot",
	"claudebot",
	"perplexitybot",
}

// BasicSEO is the input for the tag set every page shares.
type BasicSEO struct {
	Title       string
	Description string
	Path        string
	ImageURL    string
	OGType      string // defaults to "website"
}

// BasicTags builds the shared tag set: title/description, Open Graph,
// Twitter Card, crawler directives ("index, follow"), and the AI
// discoverability metas.
func BasicTags(in BasicSEO, site Site) []Tag {
	title := in.Title
	if title == "" {
		title = site.Name
	} else if site.Name != "" && title != site.Name {
		title = title + " | " + site.Name
	}
	desc := Truncate(in.Description, maxDescriptionRunes)
	ogType := in.OGType
	if ogType == "" {
		ogType = "website"
	}

	tags := []Tag{
		{Attr: "name", Key: "title", Content: title},
		{Attr: "name", Key: "description", Content: desc},
		{Attr: "property", Key: "og:title", Content: title},
		{Attr: "property", Key: "og:description", Content: desc},
		{Attr: "property", Key: "og:type", Content: ogType},
		{Attr: "property", Key: "og:site_name", Content: site.Name},
		{Attr: "name", Key: "twitter:card", Content: "summary_large_image"},
		{Attr: "name", Key: "twitter:title", Content: title},
		{Attr: "name", Key: "twitter:description", Content: desc},
	}
	if site.URL != "" && in.Path != "" {
		tags = append(tags, Tag{Attr: "property", Key: "og:url", Content: site.URL + in.Path})
	}
	if in.ImageURL != "" {
		tags = append(tags,
			Tag{Attr: "property", Key: "og:image", Content: in.ImageURL},
			Tag{Attr: "name", Key: "twitter:image", Content: in.ImageURL},
		)
	}
	if site.TwitterSite != "" {
		tags = append(tags, Tag{Attr: "name", Key: "twitter:site", Content: site.TwitterSite})
	}
	tags = append(tags, CrawlerTags(true)...)
	tags = append(tags, AITags(site)...)
	return tags
}

// CrawlerTags builds the directive set for every known crawler agent.
// index=true asserts "index, follow"; false asserts "noindex, nofollow".
func CrawlerTags(index bool) []Tag {
	content := "index, follow"
	if !index {
		content = "noindex, nofollow"
	}
	tags := make([]Tag, 0, len(crawlerAgents))
	for _, agent := range crawlerAgents {
		tags = append(tags, Tag{Attr: "name", Key: agent, Content: content})
	}
	return tags
}

// AITags builds the machine-readable hints describing this storefront to
// AI agents.
func AITags(site Site) []Tag {
	return []Tag{
		{Attr: "name", Key: "ai-content-type", Content: "e-commerce"},
		{Attr: "name", Key: "ai-industry", Content: "retail"},
		{Attr: "name", Key: "ai-features", Content: "product-catalog,search,cart,checkout"},
	}
}

// AILinks builds the discovery links pointing agents at the REST surface
// and the MCP endpoint.
func AILinks(site Site) []Link {
	var links []Link
	if site.AIAPIPath != "" {
		links = append(links, Link{Rel: "ai-api", Href: site.URL + site.AIAPIPath})
	}
	if site.MCPPath != "" {
		links = append(links, Link{Rel: "mcp-server", Href: site.URL + site.MCPPath})
	}
	return links
}

// CheckoutTags builds the checkout page set: same shape as BasicTags but
// with the crawler policy overridden to "noindex, nofollow". Checkout pages
// carry session-bound state that must never land in an index.
func CheckoutTags(site Site) []Tag {
	tags := BasicTags(BasicSEO{Title: "Checkout", Path: "/checkout"}, site)
	return replaceCrawlerTags(tags, CrawlerTags(false))
}

func replaceCrawlerTags(tags, directives []Tag) []Tag {
	byKey := make(map[string]Tag, len(directives))
	for _, d := range directives {
		byKey[d.Key] = d
	}
	out := tags[:0]
	for _, tag := range tags {
		if d, ok := byKey[tag.Key]; ok && tag.Attr == "name" {
			out = append(out, d)
			continue
		}
		out = append(out, tag)
	}
	return out
}

// Truncate bounds s to at most n runes, appending an ellipsis when cut.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	cut := strings.TrimRight(string(runes[:n-1]), " ")
	return cut + "…"
}
