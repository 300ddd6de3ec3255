// internal/state/like.go
package state

import (
	"context"
	"errors"
	"sync"

	"github.com/rajesh-kayal-dev/jubili-web-public/internal/domain/product"
	"github.com/rajesh-kayal-dev/jubili-web-public/internal/session"
	"github.com/sirupsen/logrus"
)

// LikeState is the per-product like control, seeded from a product record.
// Toggle applies the change optimistically and restores the exact pre-toggle
// values when the server rejects it.
type LikeState struct {
	mu        sync.Mutex
	productID string
	liked     bool
	likeCount int
	errMsg    string

	service *product.Service
	session *session.Store
	logger  *logrus.Logger
}

// NewLikeState creates a like control seeded from a product
func NewLikeState(p product.Product, service *product.Service, sess *session.Store, logger *logrus.Logger) *LikeState {
	return &LikeState{
		productID: p.ProductID,
		liked:     p.IsLiked,
		likeCount: p.LikeCount,
		service:   service,
		session:   sess,
		logger:    logger,
	}
}

// Liked returns the current like flag
func (l *LikeState) Liked() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.liked
}

// LikeCount returns the current like count
func (l *LikeState) LikeCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.likeCount
}

// Err returns the last error message, or ""
func (l *LikeState) Err() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.errMsg
}

// Toggle flips the like optimistically and confirms with the server. Without
// a token the toggle surfaces an error like every other guarded operation.
// On server failure the pre-toggle snapshot is restored exactly.
func (l *LikeState) Toggle(ctx context.Context) (bool, error) {
	token := l.session.Token()
	if token == "" {
		l.mu.Lock()
		l.errMsg = "Please login to like products"
		l.mu.Unlock()
		return false, errors.New("not authenticated")
	}

	l.mu.Lock()
	prevLiked := l.liked
	prevCount := l.likeCount

	l.liked = !l.liked
	if l.liked {
		l.likeCount++
	} else {
		l.likeCount--
	}
	liked := l.liked
	l.errMsg = ""
	l.mu.Unlock()

	if err := l.service.ToggleLike(ctx, l.productID, token); err != nil {
		l.mu.Lock()
		l.liked = prevLiked
		l.likeCount = prevCount
		l.errMsg = err.Error()
		l.mu.Unlock()

		l.logger.WithFields(logrus.Fields{
			"product_id": l.productID,
			"error":      err.Error(),
		}).Warn("Like toggle failed, reverted")
		return prevLiked, err
	}
	return liked, nil
}
