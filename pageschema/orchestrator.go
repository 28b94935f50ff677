// CLAUDE:SUMMARY Page schema orchestrator — classifies routes, clears superseded page-scoped tags, dispatches per-type handlers that fill the tag registry.
// Package pageschema manages the machine-readable head content of the
// storefront: JSON-LD structured data, SEO meta tags, and agent discovery
// links.
//
// On every route change the orchestrator classifies the page, clears the
// page-scoped tags of the previous page, and dispatches to the handler for
// the detected type. Handlers call the pure builders in structdata and
// seotags and register the results in the tag registry, which owns all tag
// lifetimes.
//
// Updates are two-phase: a route change immediately applies the page type
// with an empty payload (site-wide schemas and generic SEO only), and the
// view calls back with real data once it resolves. Each update advances a
// generation counter; data-ready callbacks carry the generation of the
// navigation they belong to, and writes from superseded generations are
// discarded. A slow fetch can therefore never land its schemas on top of a
// newer page.
//
// Usage:
//
//	o := pageschema.New(cfg, logger)
//	defer o.Close()
//	gen := o.HandleRouteChange("/products/linen-shirt")
//	// ... data resolves ...
//	o.UpdateAt(gen, pageschema.PageProduct, &pageschema.PageData{Product: p})
package pageschema

import (
	"encoding/json"
	"io"
	"log/slog"
	"sync"

	"github.com/sunrisefront/sunrise/normalize"
	"github.com/sunrisefront/sunrise/seotags"
	"github.com/sunrisefront/sunrise/structdata"
)

// The page-scoped schema ids cleared at the start of every update. Site-wide
// schemas (website-schema) live outside this list and survive navigation.
const (
	IDProductSchema    = "product-schema"
	IDBreadcrumbSchema = "breadcrumb-schema"
	IDEcommerceSchema  = "ecommerce-schema"
	IDFAQSchema        = "faq-schema"
	IDCategorySchema   = "category-schema"
	IDSearchSchema     = "search-schema"

	IDWebsiteSchema = "website-schema"
)

var pageScopedIDs = []string{
	IDProductSchema,
	IDBreadcrumbSchema,
	IDEcommerceSchema,
	IDFAQSchema,
	IDCategorySchema,
	IDSearchSchema,
}

// Config holds the orchestrator configuration.
type Config struct {
	SiteName    string `yaml:"site_name"`
	BaseURL     string `yaml:"base_url"`
	Locale      string `yaml:"locale"`
	TwitterSite string `yaml:"twitter_site"`
	AIAPIPath   string `yaml:"ai_api_path"`
	MCPPath     string `yaml:"mcp_path"`
}

func (c *Config) defaults() {
	if c.SiteName == "" {
		c.SiteName = "Sunrise Shop"
	}
	if c.BaseURL == "" {
		c.BaseURL = "https://shop.example.com"
	}
	if c.Locale == "" {
		c.Locale = "en"
	}
	if c.AIAPIPath == "" {
		c.AIAPIPath = "/api/ai/capabilities"
	}
	if c.MCPPath == "" {
		c.MCPPath = "/api/mcp"
	}
}

// PageData is the optional payload a view supplies once its data resolves.
// Handlers skip every schema whose field is absent; an empty PageData is
// valid and yields only the generic/site-wide tags.
type PageData struct {
	Product     *normalize.Product
	Category    *normalize.Category
	Products    []*normalize.Product
	Breadcrumbs []structdata.Breadcrumb
	Query       string
	Total       int
	CartItems   []structdata.CartItem
	FAQs        []structdata.FAQ
	Title       string
	Description string
	Path        string
}

// PageContext is the observable "what page are we on" state. Superseded
// wholesale by every update; never merged.
type PageContext struct {
	Type       PageType
	Data       *PageData
	Generation uint64
}

// Orchestrator coordinates classification, tag clearing, and per-type
// handlers over one shared tag registry. Safe for concurrent use; all
// mutation runs under one lock so tag removal always precedes re-creation
// within an update and no reader observes two generations of a page's
// schemas at once.
type Orchestrator struct {
	mu       sync.Mutex
	registry *TagRegistry
	config   *Config
	logger   *slog.Logger
	current  PageContext

	schemaSite structdata.Site
	seoSite    seotags.Site
}

// New creates an Orchestrator with its own registry and registers the
// site-wide tags that survive navigation.
func New(cfg *Config, logger *slog.Logger) *Orchestrator {
	if cfg == nil {
		cfg = &Config{}
	}
	cfg.defaults()
	if logger == nil {
		logger = slog.Default()
	}
	o := &Orchestrator{
		registry: NewTagRegistry(),
		config:   cfg,
		logger:   logger,
		schemaSite: structdata.Site{
			Name:   cfg.SiteName,
			URL:    cfg.BaseURL,
			Locale: cfg.Locale,
		},
		seoSite: seotags.Site{
			Name:        cfg.SiteName,
			URL:         cfg.BaseURL,
			TwitterSite: cfg.TwitterSite,
			AIAPIPath:   cfg.AIAPIPath,
			MCPPath:     cfg.MCPPath,
		},
	}
	o.registry.AddSchema(structdata.BuildWebsiteSchema(o.schemaSite), IDWebsiteSchema)
	for _, link := range seotags.AILinks(o.seoSite) {
		o.registry.SetLink(link)
	}
	return o
}

// Close tears the orchestrator down, clearing every tag it owns.
func (o *Orchestrator) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.registry.ClearAll()
	return nil
}

// Registry exposes the underlying registry (rendering, tests).
func (o *Orchestrator) Registry() *TagRegistry {
	return o.registry
}

// Current returns the page context of the most recent update.
func (o *Orchestrator) Current() PageContext {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.current
}

// HandleRouteChange classifies the path and applies an empty update for the
// detected type. Returns the generation of this navigation; the caller
// passes it to UpdateAt once page data resolves.
func (o *Orchestrator) HandleRouteChange(path string) uint64 {
	pt := DetectPageType(path)
	o.logger.Debug("route change", "path", path, "page_type", string(pt))
	return o.UpdatePageSchemas(pt, nil)
}

// UpdatePageSchemas replaces the page-scoped head state: it removes the six
// page-scoped schema ids, stores the new context, and dispatches to exactly
// one per-type handler. Returns the new generation.
func (o *Orchestrator) UpdatePageSchemas(pt PageType, data *PageData) uint64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.update(pt, data)
}

// UpdateAt applies an update only if gen is still the current generation.
// Data-ready callbacks from superseded navigations are discarded; returns
// whether the update was applied.
func (o *Orchestrator) UpdateAt(gen uint64, pt PageType, data *PageData) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if gen != o.current.Generation {
		o.logger.Debug("stale page update discarded",
			"generation", gen, "current", o.current.Generation, "page_type", string(pt))
		return false
	}
	o.update(pt, data)
	return true
}

// update assumes o.mu is held. Removal always precedes re-creation.
func (o *Orchestrator) update(pt PageType, data *PageData) uint64 {
	for _, id := range pageScopedIDs {
		o.registry.Remove(id)
	}
	if data == nil {
		data = &PageData{}
	}
	o.current = PageContext{
		Type:       pt,
		Data:       data,
		Generation: o.current.Generation + 1,
	}

	switch pt {
	case PageProduct:
		o.handleProductPage(data)
	case PageCategory:
		o.handleCategoryPage(data)
	case PageHome:
		o.handleHomePage(data)
	case PageSearch:
		o.handleSearchPage(data)
	case PageCart:
		o.handleCartPage(data)
	default:
		o.handleGenericPage(pt, data)
	}
	return o.current.Generation
}

// Render writes the current head markup fragment.
func (o *Orchestrator) Render(w io.Writer) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.registry.Render(w)
}

// Schema returns the JSON payload registered under a schema id.
func (o *Orchestrator) Schema(id string) (json.RawMessage, bool) {
	return o.registry.Schema(id)
}

// --- per-type handlers ---

func (o *Orchestrator) handleProductPage(data *PageData) {
	if data.Product == nil {
		o.setBasic(seotags.BasicSEO{Title: data.Title, Description: data.Description, Path: data.Path})
		return
	}
	p := data.Product
	o.registry.AddSchema(structdata.BuildProductSchema(p, o.schemaSite), IDProductSchema)
	o.registry.SetMetaAll(seotags.ProductTags(p, o.seoSite))

	trail := data.Breadcrumbs
	if trail == nil {
		trail = o.productTrail(p)
	}
	if len(trail) > 0 {
		o.registry.AddSchema(structdata.BuildBreadcrumbSchema(trail), IDBreadcrumbSchema)
	}
}

func (o *Orchestrator) handleCategoryPage(data *PageData) {
	if data.Category == nil {
		o.setBasic(seotags.BasicSEO{Title: data.Title, Description: data.Description, Path: data.Path})
		return
	}
	c := data.Category
	o.registry.AddSchema(structdata.BuildCategorySchema(c, data.Products, o.schemaSite), IDCategorySchema)
	o.registry.SetMetaAll(seotags.CategoryTags(c, o.seoSite))

	if len(data.Breadcrumbs) > 0 {
		o.registry.AddSchema(structdata.BuildBreadcrumbSchema(data.Breadcrumbs), IDBreadcrumbSchema)
	}
}

func (o *Orchestrator) handleHomePage(data *PageData) {
	o.registry.AddSchema(structdata.BuildOrganizationSchema(o.schemaSite), IDEcommerceSchema)
	if len(data.FAQs) > 0 {
		o.registry.AddSchema(structdata.BuildFAQSchema(data.FAQs), IDFAQSchema)
	}
	o.setBasic(seotags.BasicSEO{Title: data.Title, Description: data.Description, Path: "/"})
}

func (o *Orchestrator) handleSearchPage(data *PageData) {
	if data.Query != "" {
		o.registry.AddSchema(structdata.BuildSearchResultsSchema(data.Query, data.Products, o.schemaSite), IDSearchSchema)
		o.registry.SetMetaAll(seotags.SearchTags(data.Query, data.Total, o.seoSite))
		return
	}
	o.setBasic(seotags.BasicSEO{Title: "Search", Path: "/search"})
}

func (o *Orchestrator) handleCartPage(data *PageData) {
	if len(data.CartItems) > 0 {
		o.registry.AddSchema(structdata.BuildCartSchema(data.CartItems, o.schemaSite), IDEcommerceSchema)
	}
	o.setBasic(seotags.BasicSEO{Title: "Cart", Path: "/cart"})
}

func (o *Orchestrator) handleGenericPage(pt PageType, data *PageData) {
	if pt == PageCheckout {
		o.registry.SetMetaAll(seotags.CheckoutTags(o.seoSite))
		return
	}
	o.setBasic(seotags.BasicSEO{Title: data.Title, Description: data.Description, Path: data.Path})
}

func (o *Orchestrator) setBasic(in seotags.BasicSEO) {
	o.registry.SetMetaAll(seotags.BasicTags(in, o.seoSite))
}

// productTrail derives a breadcrumb trail from the product's first category.
func (o *Orchestrator) productTrail(p *normalize.Product) []structdata.Breadcrumb {
	trail := []structdata.Breadcrumb{{Name: "Home", URL: o.config.BaseURL + "/"}}
	if len(p.Categories) > 0 {
		c := p.Categories[0]
		if c.Name != "" {
			crumb := structdata.Breadcrumb{Name: c.Name}
			if c.Slug != "" {
				crumb.URL = o.config.BaseURL + "/products/" + c.Slug
			}
			trail = append(trail, crumb)
		}
	}
	if p.Name != "" {
		trail = append(trail, structdata.Breadcrumb{Name: p.Name})
	}
	return trail
}
