// CLAUDE:SUMMARY HTTP agent surface — POST /mcp lifecycle+tool dispatch over the shared table, GET discovery routes under /ai.
package agentapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sunrisefront/sunrise/dispatch"
)

// mcpRequest is the POST /mcp body. Method selects a lifecycle endpoint;
// when method is empty and name is set the body is a bare tool call.
type mcpRequest struct {
	Method    string          `json:"method,omitempty"`
	Params    json.RawMessage `json:"params,omitempty"`
	Name      string          `json:"name,omitempty"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

type toolCallParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

type resourceReadParams struct {
	URI string `json:"uri"`
}

type promptGetParams struct {
	Name      string            `json:"name"`
	Arguments map[string]string `json:"arguments"`
}

// Table builds the dispatch table backing POST /mcp: the seven tools under
// their own names plus the lifecycle methods. Every call is stateless.
func (s *Service) Table() *dispatch.Table {
	t := dispatch.New(dispatch.WithLogger(s.logger))

	t.Register("search_products", func(ctx context.Context, payload []byte) ([]byte, error) {
		var r searchProductsRequest
		if err := unmarshalArgs(payload, &r); err != nil {
			return nil, err
		}
		return marshalCall(s.searchProducts(ctx, r.Query, r.Limit))
	})
	t.Register("get_product", func(ctx context.Context, payload []byte) ([]byte, error) {
		var r getProductRequest
		if err := unmarshalArgs(payload, &r); err != nil {
			return nil, err
		}
		return marshalCall(s.getProduct(ctx, r.ProductID))
	})
	t.Register("get_categories", func(ctx context.Context, _ []byte) ([]byte, error) {
		return marshalCall(s.getCategories(ctx))
	})
	t.Register("get_cart", func(ctx context.Context, _ []byte) ([]byte, error) {
		return marshalCall(s.getCart(ctx))
	})
	t.Register("add_to_cart", func(ctx context.Context, payload []byte) ([]byte, error) {
		var r addToCartRequest
		if err := unmarshalArgs(payload, &r); err != nil {
			return nil, err
		}
		return marshalCall(s.addToCart(ctx, r.ProductID, r.Quantity, r.VariantID))
	})
	t.Register("get_user_info", func(ctx context.Context, _ []byte) ([]byte, error) {
		return marshalCall(s.getUserInfo(ctx))
	})
	t.Register("get_navigation", func(ctx context.Context, _ []byte) ([]byte, error) {
		return marshalCall(s.getNavigation(ctx))
	})

	t.Register("initialize", func(_ context.Context, _ []byte) ([]byte, error) {
		return json.Marshal(map[string]any{
			"protocolVersion": "2025-06-18",
			"serverInfo":      map[string]string{"name": s.config.SiteName, "version": s.config.Version},
			"capabilities":    map[string]any{"tools": map[string]any{}, "resources": map[string]any{}, "prompts": map[string]any{}},
		})
	})
	t.Register("tools/list", func(_ context.Context, _ []byte) ([]byte, error) {
		names := []string{
			"search_products", "get_product", "get_categories",
			"get_cart", "add_to_cart", "get_user_info", "get_navigation",
		}
		return json.Marshal(map[string]any{"tools": names})
	})
	t.Register("tools/call", func(ctx context.Context, payload []byte) ([]byte, error) {
		var p toolCallParams
		if err := unmarshalArgs(payload, &p); err != nil {
			return nil, err
		}
		return t.Call(ctx, p.Name, p.Arguments)
	})
	t.Register("resources/list", func(_ context.Context, _ []byte) ([]byte, error) {
		return json.Marshal(map[string]any{"resources": s.ResourceURIs()})
	})
	t.Register("resources/read", func(ctx context.Context, payload []byte) ([]byte, error) {
		var p resourceReadParams
		if err := unmarshalArgs(payload, &p); err != nil {
			return nil, err
		}
		data, err := s.ReadResource(ctx, p.URI)
		if err != nil {
			return nil, err
		}
		return json.Marshal(map[string]any{"uri": p.URI, "mimeType": resourceMIME, "contents": data})
	})
	t.Register("prompts/list", func(_ context.Context, _ []byte) ([]byte, error) {
		return json.Marshal(map[string]any{"prompts": s.PromptNames()})
	})
	t.Register("prompts/get", func(_ context.Context, payload []byte) ([]byte, error) {
		var p promptGetParams
		if err := unmarshalArgs(payload, &p); err != nil {
			return nil, err
		}
		desc, text, err := s.GetPrompt(p.Name, p.Arguments)
		if err != nil {
			return nil, err
		}
		return json.Marshal(map[string]any{
			"description": desc,
			"messages":    []map[string]string{{"role": "user", "content": text}},
		})
	})

	return t
}

// Routes builds the HTTP agent surface. Mount under /api.
func (s *Service) Routes() chi.Router {
	table := s.Table()
	r := chi.NewRouter()

	r.Post("/mcp", func(w http.ResponseWriter, req *http.Request) {
		var body mcpRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		method := body.Method
		payload := body.Params
		if method == "" && body.Name != "" {
			method = "tools/call"
			p, _ := json.Marshal(toolCallParams{Name: body.Name, Arguments: body.Arguments})
			payload = p
		}

		resp, err := table.Call(req.Context(), method, payload)
		if err != nil {
			var notFound *dispatch.ErrToolNotFound
			if errors.As(err, &notFound) {
				writeError(w, http.StatusNotFound, err)
				return
			}
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if resp == nil {
			resp = []byte(`null`)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(resp)
	})

	r.Route("/ai", func(r chi.Router) {
		r.Get("/capabilities", s.handleCapabilities)
		r.Get("/site-info", s.handleSiteInfo)
		r.Get("/products", s.handleProducts)
		r.Get("/products/{id}", s.handleProductByID)
		r.Get("/categories", s.handleCategories)
		r.Get("/search", s.handleSearch)
		r.Get("/structure", s.handleStructure)
		r.Get("/schema", s.handleSchema)
		r.Get("/sitemap", s.handleSitemap)
	})

	return r
}

// --- discovery handlers ---

func (s *Service) handleCapabilities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":    s.config.SiteName,
		"version": s.config.Version,
		"tools": []string{
			"search_products", "get_product", "get_categories",
			"get_cart", "add_to_cart", "get_user_info", "get_navigation",
		},
		"resources": s.ResourceURIs(),
		"prompts":   s.PromptNames(),
		"endpoints": map[string]string{
			"mcp":       "/api/mcp",
			"discovery": "/api/ai",
		},
	})
}

func (s *Service) handleSiteInfo(w http.ResponseWriter, r *http.Request) {
	info, _ := s.readSiteInfo(r.Context())
	writeJSON(w, http.StatusOK, info)
}

func (s *Service) handleProducts(w http.ResponseWriter, r *http.Request) {
	res, err := s.searchProducts(r.Context(), "", 0)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, res.Products)
}

func (s *Service) handleProductByID(w http.ResponseWriter, r *http.Request) {
	p, err := s.getProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Service) handleCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.getCategories(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, cats)
}

func (s *Service) handleSearch(w http.ResponseWriter, r *http.Request) {
	res, err := s.searchProducts(r.Context(), r.URL.Query().Get("q"), 0)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Service) handleStructure(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, pageStructure)
}

func (s *Service) handleSchema(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, schemaTypes)
}

// handleSitemap derives sitemap entries from the fixed routes plus every
// product and category slug.
func (s *Service) handleSitemap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	urls := []string{
		s.config.BaseURL + "/",
		s.config.BaseURL + "/products",
		s.config.BaseURL + "/search",
	}
	cats, err := s.getCategories(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	for _, c := range cats {
		urls = append(urls, s.config.BaseURL+"/products/"+c.Slug)
	}
	res, err := s.searchProducts(ctx, "", 0)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	for _, p := range res.Products {
		urls = append(urls, s.config.BaseURL+"/products/"+p.Slug)
	}
	writeJSON(w, http.StatusOK, map[string]any{"urls": urls})
}

// --- helpers ---

func unmarshalArgs(payload []byte, v any) error {
	if len(payload) == 0 {
		return errors.New("missing arguments")
	}
	return json.Unmarshal(payload, v)
}

func marshalCall(v any, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
