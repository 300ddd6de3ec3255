// internal/state/state_test.go
package state

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/rajesh-kayal-dev/jubili-web-public/internal/api"
	"github.com/rajesh-kayal-dev/jubili-web-public/internal/config"
	"github.com/rajesh-kayal-dev/jubili-web-public/internal/domain/cart"
	"github.com/rajesh-kayal-dev/jubili-web-public/internal/domain/product"
	"github.com/rajesh-kayal-dev/jubili-web-public/internal/infrastructure/storage"
	"github.com/rajesh-kayal-dev/jubili-web-public/internal/session"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testConfig(baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.API.BaseURL = baseURL
	cfg.API.RequestTimeout = 5 * time.Second
	return cfg
}

func newProductService(baseURL string) *product.Service {
	logger := testLogger()
	return product.NewService(api.NewClient(testConfig(baseURL), logger), logger)
}

func newCartService(baseURL string) *cart.Service {
	logger := testLogger()
	return cart.NewService(api.NewClient(testConfig(baseURL), logger), logger)
}

// newSession seeds a session store through its storage records: the raw
// token under auth_token and the serialized user under user_info. Empty
// values leave the corresponding record absent.
func newSession(t *testing.T, token, userJSON string) *session.Store {
	t.Helper()
	records := storage.NewFileStore(t.TempDir())
	ctx := context.Background()
	if token != "" {
		if err := records.Set(ctx, "auth_token", token); err != nil {
			t.Fatal(err)
		}
	}
	if userJSON != "" {
		if err := records.Set(ctx, "user_info", userJSON); err != nil {
			t.Fatal(err)
		}
	}
	return session.NewStore(nil, records, nil, testLogger())
}
