// internal/domain/product/service.go
package product

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rajesh-kayal-dev/jubili-web-public/internal/api"
	"github.com/sirupsen/logrus"
)

// ToggleLikeRequest is the body of the like endpoint
type ToggleLikeRequest struct {
	ProductID string `json:"productId"`
}

// Service handles product calls against the storefront API
type Service struct {
	api    *api.Client
	logger *logrus.Logger
}

// NewService creates a new product service
func NewService(client *api.Client, logger *logrus.Logger) *Service {
	return &Service{
		api:    client,
		logger: logger,
	}
}

// Search searches products by name. The bearer token is optional; when
// present the server marks each result with the caller's like status.
func (s *Service) Search(ctx context.Context, query, token string) ([]Product, error) {
	params := url.Values{}
	params.Set("productName", query)

	var products []Product
	if err := s.api.Get(ctx, api.EndpointSearchProducts, params, token, &products); err != nil {
		return nil, fmt.Errorf("failed to fetch search results: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"query":   query,
		"results": len(products),
	}).Debug("Product search completed")
	return products, nil
}

// ToggleLike flips the caller's like on a product. Requires a bearer token.
func (s *Service) ToggleLike(ctx context.Context, productID, token string) error {
	req := ToggleLikeRequest{ProductID: productID}
	if err := s.api.Post(ctx, api.EndpointToggleLike, token, req, nil); err != nil {
		return fmt.Errorf("failed to toggle like: %w", err)
	}

	s.logger.WithField("product_id", productID).Debug("Like toggled")
	return nil
}

// LikedProducts retrieves the caller's liked products, materialized as
// display-only Product projections. Requires a bearer token.
func (s *Service) LikedProducts(ctx context.Context, token string) ([]Product, error) {
	var liked []LikedProduct
	if err := s.api.Get(ctx, api.EndpointLikedProducts, nil, token, &liked); err != nil {
		return nil, fmt.Errorf("failed to fetch liked products: %w", err)
	}

	products := make([]Product, len(liked))
	for i, lp := range liked {
		products[i] = lp.AsProduct()
	}
	return products, nil
}
