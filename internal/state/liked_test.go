// internal/state/liked_test.go
package state

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rajesh-kayal-dev/jubili-web-public/internal/api"
)

const likedTwo = `[
	{"productId":"p1","productName":"Runner","imageUrl":"run.jpg"},
	{"productId":"p2","productName":"Walker","imageUrl":"walk.jpg"}
]`

func TestLikedFetchRequiresToken(t *testing.T) {
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer server.Close()

	store := NewLikedStore(newProductService(server.URL), newSession(t, "", ""), testLogger())
	if err := store.Fetch(context.Background()); err == nil {
		t.Fatal("expected error without a token")
	}
	if requests.Load() != 0 {
		t.Error("no request should be issued without a token")
	}
	if store.Err() != "Please login to view liked products" {
		t.Errorf("Err() = %q", store.Err())
	}
}

func TestUnlikeRemovesOptimistically(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == api.EndpointLikedProducts:
			w.Write([]byte(likedTwo))
		case r.URL.Path == api.EndpointToggleLike:
			w.Write([]byte(`{"status":"unliked"}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	store := NewLikedStore(newProductService(server.URL), newSession(t, "tok", ""), testLogger())
	ctx := context.Background()

	if err := store.Fetch(ctx); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if err := store.Unlike(ctx, "p1"); err != nil {
		t.Fatalf("Unlike: %v", err)
	}

	products := store.Products()
	if len(products) != 1 || products[0].ProductID != "p2" {
		t.Errorf("products = %v, want [p2]", products)
	}
	if store.Err() != "" {
		t.Errorf("Err() = %q, want empty", store.Err())
	}
}

func TestUnlikeFailureRestoresAndReconciles(t *testing.T) {
	var likedFetches atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case api.EndpointLikedProducts:
			likedFetches.Add(1)
			w.Write([]byte(likedTwo))
		case api.EndpointToggleLike:
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message":"Like service down"}`))
		}
	}))
	defer server.Close()

	store := NewLikedStore(newProductService(server.URL), newSession(t, "tok", ""), testLogger())
	ctx := context.Background()

	if err := store.Fetch(ctx); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if err := store.Unlike(ctx, "p1"); err == nil {
		t.Fatal("expected unlike error")
	}

	// The snapshot is restored and the reconciliation refetch ran, so the
	// list converges to the server's current state.
	products := store.Products()
	if len(products) != 2 {
		t.Errorf("products = %d, want 2 after rollback", len(products))
	}
	if got := likedFetches.Load(); got != 2 {
		t.Errorf("liked-products fetches = %d, want 2 (initial + reconciliation)", got)
	}
}

func TestUnlikeWithoutTokenSurfacesError(t *testing.T) {
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer server.Close()

	store := NewLikedStore(newProductService(server.URL), newSession(t, "", ""), testLogger())
	if err := store.Unlike(context.Background(), "p1"); err == nil {
		t.Fatal("expected error without a token")
	}
	if requests.Load() != 0 {
		t.Error("no request should be issued without a token")
	}
}
