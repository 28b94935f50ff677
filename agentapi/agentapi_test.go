package agentapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	_ "modernc.org/sqlite"

	"github.com/sunrisefront/sunrise/catalog"
	"github.com/sunrisefront/sunrise/dbopen"
	"github.com/sunrisefront/sunrise/normalize"
)

var testMCPImpl = &mcp.Implementation{Name: "sunrise-test", Version: "0.1.0"}

func testService(t *testing.T) *Service {
	t.Helper()
	db := dbopen.OpenMemory(t)
	if _, err := db.Exec(catalog.Schema); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	store := &catalog.Store{DB: db}
	if err := store.Seed(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return New(store, &Config{SiteName: "Sunrise Shop", BaseURL: "https://shop.example.com"}, nil)
}

func mcpSession(t *testing.T) *mcp.ClientSession {
	t.Helper()
	svc := testService(t)
	srv := mcp.NewServer(testMCPImpl, nil)
	svc.RegisterMCP(srv)

	serverT, clientT := mcp.NewInMemoryTransports()
	ctx := context.Background()
	go func() { _ = srv.Run(ctx, serverT) }()

	client := mcp.NewClient(testMCPImpl, nil)
	session, err := client.Connect(ctx, clientT, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { session.Close() })
	return session
}

func mcpCallTool(t *testing.T, session *mcp.ClientSession, name string, args any) string {
	t.Helper()
	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		t.Fatalf("CallTool(%s): %v", name, err)
	}
	if err := result.GetError(); err != nil {
		t.Fatalf("CallTool(%s) tool error: %v", name, err)
	}
	tc, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("CallTool(%s): expected TextContent", name)
	}
	return tc.Text
}

// --- MCP tools ---

func TestMCP_ToolVocabulary(t *testing.T) {
	session := mcpSession(t)

	list, err := session.ListTools(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListTools: %v", err)
	}
	want := map[string]bool{
		"search_products": true, "get_product": true, "get_categories": true,
		"get_cart": true, "add_to_cart": true, "get_user_info": true, "get_navigation": true,
	}
	for _, tool := range list.Tools {
		if !want[tool.Name] {
			t.Errorf("unexpected tool %q", tool.Name)
		}
		delete(want, tool.Name)
	}
	for name := range want {
		t.Errorf("missing tool %q", name)
	}
}

func TestMCP_SearchProducts(t *testing.T) {
	session := mcpSession(t)

	text := mcpCallTool(t, session, "search_products", map[string]any{"query": "shirt"})

	var resp searchResult
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Total != 1 {
		t.Fatalf("Total = %d, want 1", resp.Total)
	}
	if resp.Products[0].Slug != "linen-shirt" {
		t.Errorf("Slug = %q", resp.Products[0].Slug)
	}
}

func TestMCP_GetProduct(t *testing.T) {
	session := mcpSession(t)

	text := mcpCallTool(t, session, "get_product", map[string]any{"productId": "summer-dress"})

	var p normalize.Product
	if err := json.Unmarshal([]byte(text), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Name != "Summer Dress" {
		t.Errorf("Name = %q", p.Name)
	}
	if p.Price.CentAmount != 6450 {
		t.Errorf("CentAmount = %d", p.Price.CentAmount)
	}
}

func TestMCP_GetProduct_Unknown(t *testing.T) {
	session := mcpSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "get_product",
		Arguments: map[string]any{"productId": "no-such"},
	})
	if err != nil {
		t.Fatalf("CallTool: %v", err)
	}
	// Tool-level error: the session must survive.
	// GetError always returns nil on clients; IsError carries the flag here.
	if !result.IsError {
		t.Fatal("expected tool error for unknown product")
	}
	if txt := mcpCallTool(t, session, "get_user_info", map[string]any{}); txt == "" {
		t.Fatal("session did not survive the tool error")
	}
}

func TestMCP_CartIsStateless(t *testing.T) {
	session := mcpSession(t)

	text := mcpCallTool(t, session, "add_to_cart", map[string]any{"productId": "leather-belt", "quantity": 3})
	var added addToCartResult
	if err := json.Unmarshal([]byte(text), &added); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !added.Success || added.Quantity != 3 || added.VariantID != 1 {
		t.Fatalf("add_to_cart = %+v", added)
	}

	text = mcpCallTool(t, session, "get_cart", map[string]any{})
	var cart cartResult
	if err := json.Unmarshal([]byte(text), &cart); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !strings.HasPrefix(cart.CartID, "cart_") {
		t.Errorf("cart id = %q", cart.CartID)
	}
	// Independent mocks: the addition is not reflected in the read.
	for _, line := range cart.Lines {
		if line.ProductID == "prod-leather-belt" && line.Quantity == 3 {
			t.Error("get_cart reflected the add_to_cart call")
		}
	}
	var sum, count int64
	for _, line := range cart.Lines {
		sum += line.Price.CentAmount * int64(line.Quantity)
		count += int64(line.Quantity)
	}
	if cart.Total.CentAmount != sum {
		t.Errorf("Total = %d, lines sum to %d", cart.Total.CentAmount, sum)
	}
	if int64(cart.ItemCount) != count {
		t.Errorf("ItemCount = %d, quantities sum to %d", cart.ItemCount, count)
	}

	// Two reads assemble independent carts with distinct ids.
	var again cartResult
	if err := json.Unmarshal([]byte(mcpCallTool(t, session, "get_cart", map[string]any{})), &again); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if again.CartID == cart.CartID {
		t.Error("consecutive get_cart calls reused a cart id")
	}
}

func TestMCP_GetNavigation(t *testing.T) {
	session := mcpSession(t)

	text := mcpCallTool(t, session, "get_navigation", map[string]any{})
	var nav []*catalog.NavigationNode
	if err := json.Unmarshal([]byte(text), &nav); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(nav) != 3 {
		t.Fatalf("got %d roots, want 3", len(nav))
	}
}

func TestMCP_Resources(t *testing.T) {
	session := mcpSession(t)
	ctx := context.Background()

	list, err := session.ListResources(ctx, nil)
	if err != nil {
		t.Fatalf("ListResources: %v", err)
	}
	if len(list.Resources) != 5 {
		t.Fatalf("got %d resources, want 5", len(list.Resources))
	}

	res, err := session.ReadResource(ctx, &mcp.ReadResourceParams{URI: "sunrise://site/info"})
	if err != nil {
		t.Fatalf("ReadResource: %v", err)
	}
	var info SiteInfo
	if err := json.Unmarshal([]byte(res.Contents[0].Text), &info); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if info.Name != "Sunrise Shop" || info.Currency != "EUR" {
		t.Errorf("site info = %+v", info)
	}

	if _, err := session.ReadResource(ctx, &mcp.ReadResourceParams{URI: "sunrise://nope/nope"}); err == nil {
		t.Fatal("unknown uri must fail")
	}
}

func TestMCP_Prompts(t *testing.T) {
	session := mcpSession(t)
	ctx := context.Background()

	list, err := session.ListPrompts(ctx, nil)
	if err != nil {
		t.Fatalf("ListPrompts: %v", err)
	}
	if len(list.Prompts) != 3 {
		t.Fatalf("got %d prompts, want 3", len(list.Prompts))
	}

	got, err := session.GetPrompt(ctx, &mcp.GetPromptParams{
		Name:      "product_finder",
		Arguments: map[string]string{"description": "a warm scarf"},
	})
	if err != nil {
		t.Fatalf("GetPrompt: %v", err)
	}
	tc, ok := got.Messages[0].Content.(*mcp.TextContent)
	if !ok {
		t.Fatal("expected TextContent message")
	}
	if !strings.Contains(tc.Text, "a warm scarf") {
		t.Errorf("argument not interpolated: %q", tc.Text)
	}
}

// --- HTTP surface ---

func testHTTP(t *testing.T) *httptest.Server {
	t.Helper()
	svc := testService(t)
	ts := httptest.NewServer(svc.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func postMCP(t *testing.T, ts *httptest.Server, body string) (int, map[string]any) {
	t.Helper()
	resp, err := http.Post(ts.URL+"/mcp", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST /mcp: %v", err)
	}
	defer resp.Body.Close()
	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp.StatusCode, out
}

func TestHTTP_BareToolCall(t *testing.T) {
	ts := testHTTP(t)

	status, out := postMCP(t, ts, `{"name": "get_product", "arguments": {"productId": "linen-shirt"}}`)
	if status != http.StatusOK {
		t.Fatalf("status = %d: %v", status, out)
	}
	if out["name"] != "Linen Shirt" {
		t.Errorf("name = %v", out["name"])
	}
}

func TestHTTP_Lifecycle(t *testing.T) {
	ts := testHTTP(t)

	status, out := postMCP(t, ts, `{"method": "initialize"}`)
	if status != http.StatusOK {
		t.Fatalf("initialize status = %d", status)
	}
	if out["protocolVersion"] == nil {
		t.Error("initialize missing protocolVersion")
	}

	status, out = postMCP(t, ts, `{"method": "tools/list"}`)
	if status != http.StatusOK {
		t.Fatalf("tools/list status = %d", status)
	}
	tools, _ := out["tools"].([]any)
	if len(tools) != 7 {
		t.Errorf("tools/list returned %d tools", len(tools))
	}

	status, out = postMCP(t, ts, `{"method": "resources/read", "params": {"uri": "sunrise://schema/types"}}`)
	if status != http.StatusOK {
		t.Fatalf("resources/read status = %d: %v", status, out)
	}

	status, out = postMCP(t, ts, `{"method": "prompts/get", "params": {"name": "cart_helper"}}`)
	if status != http.StatusOK {
		t.Fatalf("prompts/get status = %d: %v", status, out)
	}

	status, out = postMCP(t, ts, `{"method": "no/such"}`)
	if status != http.StatusNotFound {
		t.Fatalf("unknown method status = %d: %v", status, out)
	}
}

func TestHTTP_ToolCallViaMethod(t *testing.T) {
	ts := testHTTP(t)

	status, out := postMCP(t, ts, `{"method": "tools/call", "params": {"name": "search_products", "arguments": {"query": "dress"}}}`)
	if status != http.StatusOK {
		t.Fatalf("status = %d: %v", status, out)
	}
	if out["total"].(float64) != 1 {
		t.Errorf("total = %v", out["total"])
	}
}

func TestHTTP_Discovery(t *testing.T) {
	ts := testHTTP(t)

	getJSON := func(path string) int {
		t.Helper()
		resp, err := http.Get(ts.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		defer resp.Body.Close()
		var v any
		if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
			t.Fatalf("GET %s: not JSON: %v", path, err)
		}
		return resp.StatusCode
	}

	for _, path := range []string{
		"/ai/capabilities", "/ai/site-info", "/ai/products",
		"/ai/products/prod-linen-shirt", "/ai/categories",
		"/ai/search?q=shirt", "/ai/structure", "/ai/schema", "/ai/sitemap",
	} {
		if status := getJSON(path); status != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, status)
		}
	}

	if status := getJSON("/ai/products/no-such"); status != http.StatusNotFound {
		t.Errorf("unknown product = %d, want 404", status)
	}
}

func TestHTTP_Sitemap(t *testing.T) {
	ts := testHTTP(t)

	resp, err := http.Get(ts.URL + "/ai/sitemap")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	var out struct {
		URLs []string `json:"urls"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	found := false
	for _, u := range out.URLs {
		if u == "https://shop.example.com/products/linen-shirt" {
			found = true
		}
	}
	if !found {
		t.Errorf("sitemap missing product url: %v", out.URLs)
	}
}
