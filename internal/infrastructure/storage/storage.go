// internal/infrastructure/storage/storage.go
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/rajesh-kayal-dev/jubili-web-public/internal/config"
)

// ErrNotFound is returned when a record does not exist
var ErrNotFound = errors.New("record not found")

// Store persists small keyed records for the session layer. Records are
// independent of each other; the store gives no multi-key transaction.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// New creates the session record store selected by configuration
func New(cfg *config.Config) (Store, error) {
	switch cfg.Session.Backend {
	case "file":
		return NewFileStore(cfg.Session.Dir), nil
	case "redis":
		return NewRedisStore(cfg)
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
}
