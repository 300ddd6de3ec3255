// internal/api/endpoints.go
package api

import "net/url"

// Endpoint paths of the remote storefront API. The paths are a fixed
// contract; the server owns their semantics.
const (
	EndpointLogin  = "/api/users/login"
	EndpointSignup = "/api/users/signup"

	// Declared for completeness; the client never calls it. Logout is a
	// purely local operation (see the session package).
	EndpointLogout = "/api/users/logout"

	EndpointSearchProducts = "/api/products/search-products"
	EndpointToggleLike     = "/api/products/like"

	EndpointLikedProducts = "/api/user-actions/liked-products"
	endpointCart          = "/api/user-actions/cart"
)

// CartEndpoint builds the cart path for a user
func CartEndpoint(userID string) string {
	return endpointCart + "?userId=" + url.QueryEscape(userID)
}
