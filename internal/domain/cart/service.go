// internal/domain/cart/service.go
package cart

import (
	"context"
	"fmt"

	"github.com/rajesh-kayal-dev/jubili-web-public/internal/api"
	"github.com/sirupsen/logrus"
)

// Service handles cart calls against the storefront API
type Service struct {
	api    *api.Client
	logger *logrus.Logger
}

// NewService creates a new cart service
func NewService(client *api.Client, logger *logrus.Logger) *Service {
	return &Service{
		api:    client,
		logger: logger,
	}
}

// GetCart retrieves the server-computed cart for a user. The endpoint is
// unauthenticated; the user id travels as a query parameter.
func (s *Service) GetCart(ctx context.Context, userID string) (*CartResponse, error) {
	var response CartResponse
	if err := s.api.Get(ctx, api.CartEndpoint(userID), nil, "", &response); err != nil {
		return nil, fmt.Errorf("failed to fetch cart: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":     userID,
		"total_items": response.TotalItems,
	}).Debug("Cart fetched")
	return &response, nil
}
