package pageschema

import "strings"

// PageType tags a route with its storefront page kind. Derived from the
// path on every navigation, never stored.
type PageType string

const (
	PageHome     PageType = "home"
	PageCategory PageType = "category"
	PageProduct  PageType = "product"
	PageSearch   PageType = "search"
	PageCart     PageType = "cart"
	PageCheckout PageType = "checkout"
	PageGeneric  PageType = "page"
)

// DetectPageType classifies a route path. Rules are evaluated in order,
// first match wins; the function is total over all strings.
//
// A product detail path has a slug segment after /products/, so
// "/products/linen-shirt" (3 segments) is a product page while "/products"
// is the category listing. Depth beyond 3 segments is not distinguished:
// "/products/x/y" still classifies as product.
func DetectPageType(path string) PageType {
	switch {
	case strings.Contains(path, "/products/") && len(strings.Split(path, "/")) > 2:
		return PageProduct
	case strings.Contains(path, "/products"):
		return PageCategory
	case path == "/" || strings.Contains(path, "/home"):
		return PageHome
	case strings.Contains(path, "/search"):
		return PageSearch
	case strings.Contains(path, "/cart"):
		return PageCart
	case strings.Contains(path, "/checkout"):
		return PageCheckout
	default:
		return PageGeneric
	}
}
