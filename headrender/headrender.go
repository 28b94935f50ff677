// CLAUDE:SUMMARY GET /head surface — classifies a path, loads catalog data, and renders the head markup fragment.
// Package headrender serves the rendered head fragment for any storefront
// path: JSON-LD scripts, SEO metas, and agent discovery links, exactly as
// the page at that path would carry them.
package headrender

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/sunrisefront/sunrise/catalog"
	"github.com/sunrisefront/sunrise/normalize"
	"github.com/sunrisefront/sunrise/pageschema"
	"github.com/sunrisefront/sunrise/structdata"
)

// Renderer drives one orchestrator from HTTP requests. Requests serialize
// through mu so a render always observes its own update.
type Renderer struct {
	mu    sync.Mutex
	orch  *pageschema.Orchestrator
	store *catalog.Store
	log   *slog.Logger
}

// New creates a Renderer around an orchestrator and the catalog.
func New(orch *pageschema.Orchestrator, store *catalog.Store, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{orch: orch, store: store, log: logger}
}

// ServeHTTP handles GET /head?path=<storefront path>.
func (h *Renderer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		path = "/"
	}
	query := r.URL.Query().Get("q")

	fragment, err := h.RenderPath(r.Context(), path, query)
	if err != nil {
		h.log.Error("head render", "path", path, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(fragment)
}

// RenderPath runs the full page lifecycle for a path: route change, data
// load, data-ready update, render.
func (h *Renderer) RenderPath(ctx context.Context, path, query string) ([]byte, error) {
	pt := pageschema.DetectPageType(path)
	data, pt, err := h.loadData(ctx, pt, path, query)
	if err != nil {
		return nil, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	gen := h.orch.HandleRouteChange(path)
	h.orch.UpdateAt(gen, pt, data)

	var buf bytes.Buffer
	if err := h.orch.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// loadData fetches whatever the page type needs from the catalog. Missing
// data is not an error: the page falls back to its generic tags. A listing
// path whose trailing segment addresses a category rather than a product
// comes back reclassified as a category page.
func (h *Renderer) loadData(ctx context.Context, pt pageschema.PageType, path, query string) (*pageschema.PageData, pageschema.PageType, error) {
	data := &pageschema.PageData{Path: path}

	switch pt {
	case pageschema.PageProduct:
		slug := lastSegment(path)
		p, err := h.store.GetProduct(ctx, slug)
		if err != nil {
			return nil, pt, err
		}
		if p != nil {
			data.Product = p
			return data, pt, nil
		}
		if c, err := h.store.GetCategory(ctx, slug); err == nil && c != nil {
			catData, err := h.categoryData(ctx, path, c)
			return catData, pageschema.PageCategory, err
		}
	case pageschema.PageSearch:
		if query != "" {
			hits, err := h.store.SearchProducts(ctx, query, 0)
			if err != nil {
				return nil, pt, err
			}
			data.Query = query
			data.Total = len(hits)
			data.Products = hits
		}
	case pageschema.PageCart:
		products, err := h.store.SearchProducts(ctx, "", 2)
		if err != nil {
			return nil, pt, err
		}
		for i, p := range products {
			data.CartItems = append(data.CartItems, structdata.CartItem{Product: p, Quantity: i + 1})
		}
	}
	return data, pt, nil
}

func (h *Renderer) categoryData(ctx context.Context, path string, c *normalize.Category) (*pageschema.PageData, error) {
	products, err := h.store.ProductsInCategory(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	return &pageschema.PageData{
		Path:     path,
		Category: c,
		Products: products,
	}, nil
}

func lastSegment(path string) string {
	path = strings.TrimRight(path, "/")
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}
