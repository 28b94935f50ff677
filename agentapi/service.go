// CLAUDE:SUMMARY Agent-facing service core — tool vocabulary over the mock catalog, shared by the MCP server and the HTTP surface.
// Package agentapi exposes the storefront to AI agents through a fixed tool
// vocabulary. The same seven operations back three surfaces: a real MCP
// server, a plain HTTP POST endpoint speaking the same contract, and a REST
// discovery surface for agents that only do GET.
//
// Every call is independently mocked. Carts in particular carry no session
// state: add_to_cart acknowledges with a fresh cart id and get_cart
// assembles a plausible cart from the catalog, so an addition is not
// guaranteed to show up in a later read.
package agentapi

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sunrisefront/sunrise/catalog"
	"github.com/sunrisefront/sunrise/idgen"
	"github.com/sunrisefront/sunrise/normalize"
)

// Config holds the agent API configuration.
type Config struct {
	SiteName string `yaml:"site_name"`
	BaseURL  string `yaml:"base_url"`
	Version  string `yaml:"version"`
}

func (c *Config) defaults() {
	if c.SiteName == "" {
		c.SiteName = "Sunrise Shop"
	}
	if c.BaseURL == "" {
		c.BaseURL = "https://shop.example.com"
	}
	if c.Version == "" {
		c.Version = "1.0.0"
	}
}

// Service is the agent-facing API over the catalog.
type Service struct {
	store  *catalog.Store
	config *Config
	logger *slog.Logger
	cartID idgen.Generator
}

// New creates the Service.
func New(store *catalog.Store, cfg *Config, logger *slog.Logger) *Service {
	if cfg == nil {
		cfg = &Config{}
	}
	cfg.defaults()
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:  store,
		config: cfg,
		logger: logger,
		cartID: idgen.Prefixed("cart_", idgen.NanoID(12)),
	}
}

// --- tool payloads ---

type searchResult struct {
	Query    string               `json:"query"`
	Total    int                  `json:"total"`
	Products []*normalize.Product `json:"results"`
}

type cartLine struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     normalize.Price `json:"price"`
}

type cartResult struct {
	CartID    string          `json:"id"`
	Lines     []cartLine      `json:"items"`
	Total     normalize.Price `json:"totalPrice"`
	ItemCount int             `json:"itemCount"`
}

type addToCartResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	VariantID int    `json:"variantId"`
}

type userInfo struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Locale    string `json:"locale"`
	Guest     bool   `json:"guest"`
}

func (s *Service) searchProducts(ctx context.Context, query string, limit int) (*searchResult, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	hits, err := s.store.SearchProducts(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	if hits == nil {
		hits = []*normalize.Product{}
	}
	return &searchResult{Query: query, Total: len(hits), Products: hits}, nil
}

func (s *Service) getProduct(ctx context.Context, id string) (*normalize.Product, error) {
	if id == "" {
		return nil, fmt.Errorf("product id is required")
	}
	p, err := s.store.GetProduct(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("product %q not found", id)
	}
	return p, nil
}

func (s *Service) getCategories(ctx context.Context) ([]*normalize.Category, error) {
	cats, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if cats == nil {
		cats = []*normalize.Category{}
	}
	return cats, nil
}

// getCart assembles a plausible cart from the first catalog products. No
// state is read or written; two calls may disagree with interleaved
// add_to_cart calls.
func (s *Service) getCart(ctx context.Context) (*cartResult, error) {
	products, err := s.store.SearchProducts(ctx, "", 2)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	cart := &cartResult{
		CartID: s.cartID(),
		Lines:  []cartLine{},
	}
	var total int64
	for i, p := range products {
		qty := i + 1
		cart.Lines = append(cart.Lines, cartLine{
			ProductID: p.ID,
			Name:      p.Name,
			Quantity:  qty,
			Price:     p.Price,
		})
		total += p.Price.CentAmount * int64(qty)
		cart.ItemCount += qty
	}
	cart.Total = normalize.Price{CentAmount: total, Currency: "EUR"}
	return cart, nil
}

func (s *Service) addToCart(ctx context.Context, productID string, quantity, variantID int) (*addToCartResult, error) {
	if quantity <= 0 {
		quantity = 1
	}
	if variantID <= 0 {
		variantID = 1 // master variant
	}
	// Validate the product exists even though nothing is persisted.
	p, err := s.getProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return &addToCartResult{
		Success:   true,
		Message:   fmt.Sprintf("Added %d x %s to cart", quantity, p.Name),
		ProductID: p.ID,
		Quantity:  quantity,
		VariantID: variantID,
	}, nil
}

func (s *Service) getUserInfo(context.Context) (*userInfo, error) {
	return &userInfo{
		ID:        "user-demo",
		Email:     "demo@sunrise.example",
		FirstName: "Demo",
		LastName:  "Shopper",
		Locale:    "en",
		Guest:     true,
	}, nil
}

func (s *Service) getNavigation(ctx context.Context) ([]*catalog.NavigationNode, error) {
	nav, err := s.store.Navigation(ctx)
	if err != nil {
		return nil, fmt.Errorf("navigation: %w", err)
	}
	if nav == nil {
		nav = []*catalog.NavigationNode{}
	}
	return nav, nil
}
