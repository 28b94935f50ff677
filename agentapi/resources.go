// CLAUDE:SUMMARY MCP resources — fixed sunrise:// uri table over site info, catalog, categories, page structure, schema types.
package agentapi

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const resourceMIME = "application/json"

type resourceEntry struct {
	name        string
	description string
	read        func(context.Context) (any, error)
}

// resourceTable is the fixed uri lookup. Unknown uris fail; there is no
// template expansion.
func (s *Service) resourceTable() map[string]resourceEntry {
	return map[string]resourceEntry{
		"sunrise://site/info": {
			name:        "Site Info",
			description: "Store identity: name, base URL, locale, currency, version.",
			read:        s.readSiteInfo,
		},
		"sunrise://products/catalog": {
			name:        "Product Catalog",
			description: "The full demo product catalog, normalized.",
			read: func(ctx context.Context) (any, error) {
				res, err := s.searchProducts(ctx, "", 50)
				if err != nil {
					return nil, err
				}
				return res.Products, nil
			},
		},
		"sunrise://categories/tree": {
			name:        "Category Tree",
			description: "Category hierarchy as the storefront navigation tree.",
			read: func(ctx context.Context) (any, error) {
				return s.getNavigation(ctx)
			},
		},
		"sunrise://pages/structure": {
			name:        "Page Structure",
			description: "Page types the storefront serves and the route patterns that select them.",
			read: func(context.Context) (any, error) {
				return pageStructure, nil
			},
		},
		"sunrise://schema/types": {
			name:        "Schema Types",
			description: "schema.org types emitted per page type.",
			read: func(context.Context) (any, error) {
				return schemaTypes, nil
			},
		},
	}
}

// SiteInfo is the store identity document shared by the site/info resource
// and the REST discovery surface.
type SiteInfo struct {
	Name     string `json:"name"`
	BaseURL  string `json:"baseUrl"`
	Locale   string `json:"locale"`
	Currency string `json:"currency"`
	Version  string `json:"version"`
}

func (s *Service) readSiteInfo(context.Context) (any, error) {
	return &SiteInfo{
		Name:     s.config.SiteName,
		BaseURL:  s.config.BaseURL,
		Locale:   "en",
		Currency: "EUR",
		Version:  s.config.Version,
	}, nil
}

var pageStructure = []map[string]string{
	{"pageType": "home", "route": "/", "description": "Landing page with organization schema"},
	{"pageType": "category", "route": "/products", "description": "Category listing with CollectionPage schema"},
	{"pageType": "product", "route": "/products/:slug", "description": "Product detail with Product schema"},
	{"pageType": "search", "route": "/search", "description": "Search results with SearchResultsPage schema"},
	{"pageType": "cart", "route": "/cart", "description": "Cart with ItemList schema"},
	{"pageType": "checkout", "route": "/checkout", "description": "Checkout, excluded from indexing"},
}

var schemaTypes = map[string][]string{
	"home":     {"WebSite", "OnlineStore", "FAQPage"},
	"category": {"WebSite", "CollectionPage", "BreadcrumbList"},
	"product":  {"WebSite", "Product", "BreadcrumbList"},
	"search":   {"WebSite", "SearchResultsPage"},
	"cart":     {"WebSite", "ItemList"},
	"checkout": {"WebSite"},
}

// ReadResource resolves a sunrise:// uri against the fixed table. Used by
// both the MCP server and the HTTP resources/read endpoint.
func (s *Service) ReadResource(ctx context.Context, uri string) (json.RawMessage, error) {
	entry, ok := s.resourceTable()[uri]
	if !ok {
		return nil, fmt.Errorf("unknown resource uri %q", uri)
	}
	payload, err := entry.read(ctx)
	if err != nil {
		return nil, err
	}
	return json.Marshal(payload)
}

// ResourceURIs lists the table in stable registration order.
func (s *Service) ResourceURIs() []string {
	return []string{
		"sunrise://site/info",
		"sunrise://products/catalog",
		"sunrise://categories/tree",
		"sunrise://pages/structure",
		"sunrise://schema/types",
	}
}

func (s *Service) registerResources(srv *mcp.Server) {
	table := s.resourceTable()
	for _, uri := range s.ResourceURIs() {
		entry := table[uri]
		res := &mcp.Resource{
			URI:         uri,
			Name:        entry.name,
			Description: entry.description,
			MIMEType:    resourceMIME,
		}
		srv.AddResource(res, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
			data, err := s.ReadResource(ctx, req.Params.URI)
			if err != nil {
				return nil, err
			}
			return &mcp.ReadResourceResult{
				Contents: []*mcp.ResourceContents{{
					URI:      req.Params.URI,
					MIMEType: resourceMIME,
					Text:     string(data),
				}},
			}, nil
		})
	}
}
