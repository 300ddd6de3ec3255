// internal/state/cart.go
package state

import (
	"context"
	"errors"
	"sync"

	"github.com/rajesh-kayal-dev/jubili-web-public/internal/domain/cart"
	"github.com/rajesh-kayal-dev/jubili-web-public/internal/session"
	"github.com/sirupsen/logrus"
)

// CartStore owns the server-computed cart for the current user. The cart is
// replaced wholesale on every fetch; mutations (quantity change, item
// removal) are not wired in this version even though the data model
// supports them.
type CartStore struct {
	mu      sync.Mutex
	gen     uint64
	cart    *cart.CartResponse
	loading bool
	errMsg  string

	service *cart.Service
	session *session.Store
	logger  *logrus.Logger
}

// NewCartStore creates a cart store
func NewCartStore(service *cart.Service, sess *session.Store, logger *logrus.Logger) *CartStore {
	return &CartStore{
		service: service,
		session: sess,
		logger:  logger,
	}
}

// Cart returns the last fetched cart, or nil
func (s *CartStore) Cart() *cart.CartResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart
}

// Loading reports whether a fetch is in flight
func (s *CartStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last error message, or ""
func (s *CartStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// Fetch retrieves the cart. Without an authenticated user it fails closed:
// an error is recorded and no request is issued. On success the cart is
// replaced wholesale; on failure the prior cart stays visible alongside the
// error.
func (s *CartStore) Fetch(ctx context.Context) (*cart.CartResponse, error) {
	userID := s.session.UserID()
	if userID == "" {
		s.mu.Lock()
		s.errMsg = "User not authenticated"
		s.mu.Unlock()
		return nil, errors.New("user not authenticated")
	}

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	response, err := s.service.GetCart(ctx, userID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		// A newer fetch superseded this one; its response owns the state.
		s.logger.WithField("user_id", userID).Debug("Discarding stale cart response")
		return response, err
	}
	s.loading = false
	if err != nil {
		s.errMsg = err.Error()
		return nil, err
	}
	s.cart = response
	return response, nil
}
