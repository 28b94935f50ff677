package seotags

import (
	"strings"
	"testing"

	"github.com/sunrisefront/sunrise/normalize"
)

var testSite = Site{
	Name:      "Sunrise Shop",
	URL:       "https://shop.example.com",
	AIAPIPath: "/api/ai/capabilities",
	MCPPath:   "/api/mcp",
}

func findTag(tags []Tag, key string) (Tag, bool) {
	for _, tag := range tags {
		if tag.Key == key {
			return tag, true
		}
	}
	return Tag{}, false
}

func TestBasicTags_TitleComposition(t *testing.T) {
	tags := BasicTags(BasicSEO{Title: "Linen Shirt"}, testSite)
	title, ok := findTag(tags, "title")
	if !ok {
		t.Fatal("title missing")
	}
	if title.Content != "Linen Shirt | Sunrise Shop" {
		t.Errorf("title = %q", title.Content)
	}

	tags = BasicTags(BasicSEO{}, testSite)
	title, _ = findTag(tags, "title")
	if title.Content != "Sunrise Shop" {
		t.Errorf("empty title = %q", title.Content)
	}
}

func TestBasicTags_CrawlerDirectives(t *testing.T) {
	tags := BasicTags(BasicSEO{Title: "x"}, testSite)
	for _, agent := range []string{"robots", "googlebot", "bingbot", "gptbot", "claudebot", "perplexitybot"} {
		tag, ok := findTag(tags, agent)
		if !ok {
			t.Errorf("directive %q missing", agent)
			continue
		}
		if tag.Content != "index, follow" {
			t.Errorf("%s = %q, want index, follow", agent, tag.Content)
		}
	}
}

func TestBasicTags_AIMetas(t *testing.T) {
	tags := BasicTags(BasicSEO{}, testSite)
	if tag, _ := findTag(tags, "ai-content-type"); tag.Content != "e-commerce" {
		t.Errorf("ai-content-type = %q", tag.Content)
	}
	if tag, _ := findTag(tags, "ai-industry"); tag.Content != "retail" {
		t.Errorf("ai-industry = %q", tag.Content)
	}
	if tag, _ := findTag(tags, "ai-features"); !strings.Contains(tag.Content, "product-catalog") {
		t.Errorf("ai-features = %q", tag.Content)
	}
}

func TestCheckoutTags_NoindexOverride(t *testing.T) {
	tags := CheckoutTags(testSite)
	for _, agent := range []string{"robots", "googlebot", "bingbot"} {
		tag, ok := findTag(tags, agent)
		if !ok {
			t.Fatalf("directive %q missing on checkout", agent)
		}
		if tag.Content != "noindex, nofollow" {
			t.Errorf("checkout %s = %q, want noindex, nofollow", agent, tag.Content)
		}
	}
	// The rest of the basic set stays intact.
	if title, _ := findTag(tags, "title"); title.Content != "Checkout | Sunrise Shop" {
		t.Errorf("checkout title = %q", title.Content)
	}
}

func TestProductTags(t *testing.T) {
	p := &normalize.Product{
		Name:         "Linen Shirt",
		Description:  "A crisp linen shirt.",
		Slug:         "linen-shirt",
		Images:       []string{"https://img.example.com/shirt.jpg"},
		Price:        normalize.Price{CentAmount: 12345, Currency: "USD"},
		Availability: normalize.InStock,
	}
	tags := ProductTags(p, testSite)

	if tag, _ := findTag(tags, "og:type"); tag.Content != "product" {
		t.Errorf("og:type = %q", tag.Content)
	}
	if tag, _ := findTag(tags, "og:url"); tag.Content != "https://shop.example.com/products/linen-shirt" {
		t.Errorf("og:url = %q", tag.Content)
	}
	if tag, _ := findTag(tags, "og:image"); tag.Content != "https://img.example.com/shirt.jpg" {
		t.Errorf("og:image = %q", tag.Content)
	}
	if tag, _ := findTag(tags, "product:price:amount"); tag.Content != "123.45" {
		t.Errorf("price = %q", tag.Content)
	}
	if tag, _ := findTag(tags, "product:availability"); tag.Content != "InStock" {
		t.Errorf("availability = %q", tag.Content)
	}
}

func TestSearchTags(t *testing.T) {
	tags := SearchTags("linen", 7, testSite)
	desc, _ := findTag(tags, "description")
	if !strings.Contains(desc.Content, "7 results") || !strings.Contains(desc.Content, `"linen"`) {
		t.Errorf("description = %q", desc.Content)
	}
}

func TestAILinks(t *testing.T) {
	links := AILinks(testSite)
	if len(links) != 2 {
		t.Fatalf("links = %v", links)
	}
	if links[0].Rel != "ai-api" || links[0].Href != "https://shop.example.com/api/ai/capabilities" {
		t.Errorf("ai-api link = %+v", links[0])
	}
	if links[1].Rel != "mcp-server" || links[1].Href != "https://shop.example.com/api/mcp" {
		t.Errorf("mcp-server link = %+v", links[1])
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 160); got != "short" {
		t.Errorf("got %q", got)
	}
	long := strings.Repeat("a", 200)
	got := Truncate(long, 160)
	if runes := []rune(got); len(runes) != 160 {
		t.Errorf("truncated length = %d", len(runes))
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("missing ellipsis: %q", got[len(got)-8:])
	}
}

func TestTruncate_MultibyteSafe(t *testing.T) {
	s := strings.Repeat("é", 200)
	got := Truncate(s, 160)
	if !strings.HasSuffix(got, "…") {
		t.Error("missing ellipsis")
	}
	for _, r := range got {
		if r != 'é' && r != '…' {
			t.Fatalf("corrupted rune %q", r)
		}
	}
}