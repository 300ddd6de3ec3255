// internal/state/liked.go
package state

import (
	"context"
	"errors"
	"sync"

	"github.com/rajesh-kayal-dev/jubili-web-public/internal/domain/product"
	"github.com/rajesh-kayal-dev/jubili-web-public/internal/session"
	"github.com/sirupsen/logrus"
)

// LikedStore owns the caller's liked-products list. Entries are display-only
// projections of the reduced liked-products shape.
type LikedStore struct {
	mu       sync.Mutex
	gen      uint64
	products []product.Product
	loading  bool
	errMsg   string

	service *product.Service
	session *session.Store
	logger  *logrus.Logger
}

// NewLikedStore creates a liked-products store
func NewLikedStore(service *product.Service, sess *session.Store, logger *logrus.Logger) *LikedStore {
	return &LikedStore{
		service: service,
		session: sess,
		logger:  logger,
	}
}

// Products returns a copy of the liked-products list
func (s *LikedStore) Products() []product.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	products := make([]product.Product, len(s.products))
	copy(products, s.products)
	return products
}

// Loading reports whether a fetch is in flight
func (s *LikedStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last error message, or ""
func (s *LikedStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// Fetch retrieves the liked-products list. Without a token it fails closed
// with a login prompt and no request.
func (s *LikedStore) Fetch(ctx context.Context) error {
	token := s.session.Token()
	if token == "" {
		s.mu.Lock()
		s.errMsg = "Please login to view liked products"
		s.mu.Unlock()
		return errors.New("not authenticated")
	}

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	products, err := s.service.LikedProducts(ctx, token)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		s.logger.Debug("Discarding stale liked-products response")
		return nil
	}
	s.loading = false
	if err != nil {
		s.errMsg = err.Error()
		return err
	}
	s.products = products
	return nil
}

// Unlike removes a product from the list optimistically, then confirms with
// the server. On failure the snapshot taken before the optimistic removal is
// restored immediately, and a refetch runs as secondary reconciliation so
// the list converges to the server's current state.
func (s *LikedStore) Unlike(ctx context.Context, productID string) error {
	token := s.session.Token()
	if token == "" {
		s.mu.Lock()
		s.errMsg = "Please login to unlike products"
		s.mu.Unlock()
		return errors.New("not authenticated")
	}

	s.mu.Lock()
	snapshot := make([]product.Product, len(s.products))
	copy(snapshot, s.products)

	kept := s.products[:0:0]
	for _, p := range s.products {
		if p.ProductID != productID {
			kept = append(kept, p)
		}
	}
	s.products = kept
	s.errMsg = ""
	s.mu.Unlock()

	if err := s.service.ToggleLike(ctx, productID, token); err != nil {
		s.mu.Lock()
		s.products = snapshot
		s.errMsg = err.Error()
		s.mu.Unlock()

		s.logger.WithFields(logrus.Fields{
			"product_id": productID,
			"error":      err.Error(),
		}).Warn("Unlike failed, reconciling with server")

		if refetchErr := s.Fetch(ctx); refetchErr != nil {
			// The rollback snapshot stays visible until a retry succeeds.
			s.logger.WithField("error", refetchErr.Error()).Warn("Reconciliation refetch failed")
		}
		return err
	}
	return nil
}
