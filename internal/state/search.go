// internal/state/search.go
package state

import (
	"context"
	"strings"
	"sync"

	"github.com/rajesh-kayal-dev/jubili-web-public/internal/domain/product"
	"github.com/rajesh-kayal-dev/jubili-web-public/internal/session"
	"github.com/sirupsen/logrus"
)

// SearchStore owns one search result set. An empty or whitespace-only query
// short-circuits to an empty result list without touching the network.
type SearchStore struct {
	mu      sync.Mutex
	gen     uint64
	query   string
	results []product.Product
	loading bool
	errMsg  string

	service *product.Service
	session *session.Store
	logger  *logrus.Logger
}

// NewSearchStore creates a search store
func NewSearchStore(service *product.Service, sess *session.Store, logger *logrus.Logger) *SearchStore {
	return &SearchStore{
		service: service,
		session: sess,
		logger:  logger,
	}
}

// Results returns a copy of the current result list
func (s *SearchStore) Results() []product.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	results := make([]product.Product, len(s.results))
	copy(results, s.results)
	return results
}

// Query returns the current query
func (s *SearchStore) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// Loading reports whether a search is in flight
func (s *SearchStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last error message, or ""
func (s *SearchStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// SetQuery updates the query and refetches. A blank query clears the
// results and any error without issuing a request.
func (s *SearchStore) SetQuery(ctx context.Context, query string) error {
	s.mu.Lock()
	s.query = query
	s.mu.Unlock()

	if strings.TrimSpace(query) == "" {
		s.mu.Lock()
		s.gen++ // invalidate any in-flight fetch
		s.results = []product.Product{}
		s.errMsg = ""
		s.loading = false
		s.mu.Unlock()
		return nil
	}
	return s.fetch(ctx, query)
}

// Retry refetches the current query. A no-op when the query is blank.
func (s *SearchStore) Retry(ctx context.Context) error {
	s.mu.Lock()
	query := s.query
	s.mu.Unlock()

	if strings.TrimSpace(query) == "" {
		return nil
	}
	return s.fetch(ctx, query)
}

func (s *SearchStore) fetch(ctx context.Context, query string) error {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	// Token captured per fetch, so a login or logout between keystrokes is
	// picked up by the next search.
	token := s.session.Token()
	results, err := s.service.Search(ctx, query, token)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		s.logger.WithField("query", query).Debug("Discarding stale search response")
		return nil
	}
	s.loading = false
	if err != nil {
		s.errMsg = err.Error()
		s.results = []product.Product{}
		return err
	}
	if results == nil {
		results = []product.Product{}
	}
	s.results = results
	return nil
}

// ApplyLikeToggle mirrors an already-confirmed like toggle into the result
// list: flips IsLiked and adjusts LikeCount by one. A pure local projection
// update; no refetch is issued.
func (s *SearchStore) ApplyLikeToggle(productID string, isLiked bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.results {
		if s.results[i].ProductID != productID {
			continue
		}
		s.results[i].IsLiked = isLiked
		if isLiked {
			s.results[i].LikeCount++
		} else {
			s.results[i].LikeCount--
		}
	}
}
