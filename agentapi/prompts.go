// CLAUDE:SUMMARY MCP prompts — canned shopping-assistant prompt templates with optional arguments.
package agentapi

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type promptEntry struct {
	prompt *mcp.Prompt
	render func(args map[string]string) string
}

func (s *Service) promptTable() []promptEntry {
	return []promptEntry{
		{
			prompt: &mcp.Prompt{
				Name:        "shop_assistant",
				Description: "General shopping assistant for the store.",
				Arguments: []*mcp.PromptArgument{
					{Name: "topic", Description: "What the shopper needs help with", Required: false},
				},
			},
			render: func(args map[string]string) string {
				topic := args["topic"]
				if topic == "" {
					topic = "finding products"
				}
				return fmt.Sprintf(
					"You are a shopping assistant for %s. Help the customer with %s. "+
						"Use search_products and get_product to look up real catalog data before answering.",
					s.config.SiteName, topic)
			},
		},
		{
			prompt: &mcp.Prompt{
				Name:        "product_finder",
				Description: "Find products matching a shopper's description.",
				Arguments: []*mcp.PromptArgument{
					{Name: "description", Description: "What the shopper is looking for", Required: true},
				},
			},
			render: func(args map[string]string) string {
				return fmt.Sprintf(
					"Find products in the %s catalog matching: %s. "+
						"Call search_products, then get_product for promising hits, and summarize "+
						"name, price, and availability for each recommendation.",
					s.config.SiteName, args["description"])
			},
		},
		{
			prompt: &mcp.Prompt{
				Name:        "cart_helper",
				Description: "Review the cart and suggest next steps.",
			},
			render: func(map[string]string) string {
				return "Call get_cart, summarize the line items and total, and suggest " +
					"complementary products from search_products."
			},
		},
	}
}

func (s *Service) registerPrompts(srv *mcp.Server) {
	for _, entry := range s.promptTable() {
		render := entry.render
		desc := entry.prompt.Description
		srv.AddPrompt(entry.prompt, func(_ context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
			return &mcp.GetPromptResult{
				Description: desc,
				Messages: []*mcp.PromptMessage{{
					Role:    "user",
					Content: &mcp.TextContent{Text: render(req.Params.Arguments)},
				}},
			}, nil
		})
	}
}

// GetPrompt renders a prompt by name for the HTTP prompts/get endpoint.
func (s *Service) GetPrompt(name string, args map[string]string) (string, string, error) {
	for _, entry := range s.promptTable() {
		if entry.prompt.Name == name {
			return entry.prompt.Description, entry.render(args), nil
		}
	}
	return "", "", fmt.Errorf("unknown prompt %q", name)
}

// PromptNames lists the prompt vocabulary.
func (s *Service) PromptNames() []string {
	names := make([]string, 0, 3)
	for _, entry := range s.promptTable() {
		names = append(names, entry.prompt.Name)
	}
	return names
}
