// CLAUDE:SUMMARY Registers the seven storefront MCP tools — search, product, categories, cart, user, navigation.
package agentapi

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sunrisefront/sunrise/kit"
)

// RegisterMCP registers the storefront tools, resources, and prompts on an
// MCP server.
func (s *Service) RegisterMCP(srv *mcp.Server) {
	s.registerSearchProductsTool(srv)
	s.registerGetProductTool(srv)
	s.registerGetCategoriesTool(srv)
	s.registerGetCartTool(srv)
	s.registerAddToCartTool(srv)
	s.registerGetUserInfoTool(srv)
	s.registerGetNavigationTool(srv)
	s.registerResources(srv)
	s.registerPrompts(srv)
}

// inputSchema builds a JSON Schema object with type "object".
func inputSchema(properties map[string]any, required []string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// --- search_products ---

type searchProductsRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

func (s *Service) registerSearchProductsTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "search_products",
		Description: "Search the product catalog by name or description. Returns matching products with prices and availability.",
		InputSchema: inputSchema(map[string]any{
			"query": map[string]any{"type": "string", "description": "Search query; empty lists the full catalog"},
			"limit": map[string]any{"type": "integer", "description": "Max results (default 20, cap 50)"},
		}, []string{"query"}),
	}

	endpoint := func(ctx context.Context, req any) (any, error) {
		r := req.(*searchProductsRequest)
		return s.searchProducts(ctx, r.Query, r.Limit)
	}

	decode := func(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var r searchProductsRequest
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &r}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}

// --- get_product ---

type getProductRequest struct {
	ProductID string `json:"productId"`
}

func (s *Service) registerGetProductTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "get_product",
		Description: "Get one product by id or slug, with price, images, availability, and category references.",
		InputSchema: inputSchema(map[string]any{
			"productId": map[string]any{"type": "string", "description": "Product id or URL slug"},
		}, []string{"productId"}),
	}

	endpoint := func(ctx context.Context, req any) (any, error) {
		r := req.(*getProductRequest)
		return s.getProduct(ctx, r.ProductID)
	}

	decode := func(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var r getProductRequest
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &r}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}

// --- get_categories ---

func (s *Service) registerGetCategoriesTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "get_categories",
		Description: "List all product categories in navigation order.",
		InputSchema: inputSchema(map[string]any{}, nil),
	}

	endpoint := func(ctx context.Context, _ any) (any, error) {
		return s.getCategories(ctx)
	}

	decode := func(_ *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		return &kit.MCPDecodeResult{Request: nil}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}

// --- get_cart ---

func (s *Service) registerGetCartTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "get_cart",
		Description: "Get the current shopping cart. Demo data: carts are assembled per call and carry no session state.",
		InputSchema: inputSchema(map[string]any{}, nil),
	}

	endpoint := func(ctx context.Context, _ any) (any, error) {
		return s.getCart(ctx)
	}

	decode := func(_ *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		return &kit.MCPDecodeResult{Request: nil}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}

// --- add_to_cart ---

type addToCartRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity,omitempty"`
	VariantID int    `json:"variantId,omitempty"`
}

func (s *Service) registerAddToCartTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "add_to_cart",
		Description: "Add a product to the cart. Demo data: acknowledges with a fresh cart id, nothing is persisted.",
		InputSchema: inputSchema(map[string]any{
			"productId": map[string]any{"type": "string", "description": "Product id or slug to add"},
			"quantity":  map[string]any{"type": "integer", "description": "Quantity (default 1)"},
			"variantId": map[string]any{"type": "integer", "description": "Variant (default 1, the master variant)"},
		}, []string{"productId"}),
	}

	endpoint := func(ctx context.Context, req any) (any, error) {
		r := req.(*addToCartRequest)
		return s.addToCart(ctx, r.ProductID, r.Quantity, r.VariantID)
	}

	decode := func(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var r addToCartRequest
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &r}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}

// --- get_user_info ---

func (s *Service) registerGetUserInfoTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "get_user_info",
		Description: "Get the current user record. Demo data: always the guest demo shopper.",
		InputSchema: inputSchema(map[string]any{}, nil),
	}

	endpoint := func(ctx context.Context, _ any) (any, error) {
		return s.getUserInfo(ctx)
	}

	decode := func(_ *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		return &kit.MCPDecodeResult{Request: nil}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}

// --- get_navigation ---

func (s *Service) registerGetNavigationTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "get_navigation",
		Description: "Get the storefront navigation tree: top-level categories with their children and paths.",
		InputSchema: inputSchema(map[string]any{}, nil),
	}

	endpoint := func(ctx context.Context, _ any) (any, error) {
		return s.getNavigation(ctx)
	}

	decode := func(_ *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		return &kit.MCPDecodeResult{Request: nil}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}
