// internal/domain/cart/service_test.go
package cart

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rajesh-kayal-dev/jubili-web-public/internal/api"
	"github.com/rajesh-kayal-dev/jubili-web-public/internal/config"
	"github.com/sirupsen/logrus"
)

func newTestService(baseURL string) *Service {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cfg := &config.Config{}
	cfg.API.BaseURL = baseURL
	cfg.API.RequestTimeout = 5 * time.Second
	return NewService(api.NewClient(cfg, logger), logger)
}

func TestGetCartPassesTotalsThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("userId"); got != "u1" {
			t.Errorf("userId = %q, want u1", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"totalItems": 2,
			"items": [
				{"productId":"p1","productName":"Runner","quantity":1,"price":1000,"discountOnProduct":10,"discountAmount":100,"totalDiscountedPrice":900},
				{"productId":"p2","productName":"Walker","quantity":1,"price":500,"totalDiscountedPrice":500}
			],
			"totalOriginalPrice": 1500,
			"totalDiscount": 100,
			"subtotal": 1400,
			"shippingCharge": 50,
			"finalTotal": 1450,
			"message": "ok"
		}`))
	}))
	defer server.Close()

	cart, err := newTestService(server.URL).GetCart(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetCart: %v", err)
	}
	if cart.TotalItems != 2 || len(cart.Items) != 2 {
		t.Errorf("items = %d/%d, want 2/2", cart.TotalItems, len(cart.Items))
	}
	// Totals are server-computed values, passed through untouched.
	if cart.Subtotal != 1400 || cart.ShippingCharge != 50 || cart.FinalTotal != 1450 {
		t.Errorf("totals wrong: %+v", cart)
	}
}

func TestGetCartSurfacesServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Cart not found"}`))
	}))
	defer server.Close()

	_, err := newTestService(server.URL).GetCart(context.Background(), "u1")
	if err == nil {
		t.Fatal("expected error")
	}
}
