// internal/domain/product/service_test.go
package product

import (
	"context"
	"encoding/json"
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

func TestSearchNormalizesSingleImageURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("productName"); got != "shoe" {
			t.Errorf("productName = %q, want shoe", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"productId":"p1","productName":"Runner","imageUrls":"run.jpg","likeCount":3},
			{"productId":"p2","productName":"Walker","imageUrls":"walk.jpg","likeCount":1}
		]`))
	}))
	defer server.Close()

	products, err := newTestService(server.URL).Search(context.Background(), "shoe", "")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("got %d products, want 2", len(products))
	}
	for _, p := range products {
		if len(p.ImageURLs) != 1 {
			t.Errorf("product %s: ImageURLs = %v, want one element", p.ProductID, p.ImageURLs)
		}
	}
}

func TestSearchSendsOptionalBearer(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	service := newTestService(server.URL)
	if _, err := service.Search(context.Background(), "shoe", "tok"); err != nil {
		t.Fatalf("Search: %v", err)
	}
	if gotAuth != "Bearer tok" {
		t.Errorf("Authorization = %q, want bearer", gotAuth)
	}

	if _, err := service.Search(context.Background(), "shoe", ""); err != nil {
		t.Fatalf("Search: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want none without token", gotAuth)
	}
}

func TestToggleLikeSendsProductID(t *testing.T) {
	var gotBody ToggleLikeRequest
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Write([]byte(`{"status":"liked","is_liked":true}`))
	}))
	defer server.Close()

	if err := newTestService(server.URL).ToggleLike(context.Background(), "p1", "tok"); err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}
	if gotBody.ProductID != "p1" {
		t.Errorf("productId = %q, want p1", gotBody.ProductID)
	}
	if gotAuth != "Bearer tok" {
		t.Errorf("Authorization = %q, want bearer", gotAuth)
	}
}

func TestLikedProductsProjectsReducedShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"productId":"p1","productName":"Runner","productDescription":"fast","imageUrl":"run.jpg"}
		]`))
	}))
	defer server.Close()

	products, err := newTestService(server.URL).LikedProducts(context.Background(), "tok")
	if err != nil {
		t.Fatalf("LikedProducts: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("got %d products, want 1", len(products))
	}
	p := products[0]
	if !p.IsLiked || p.Price != 0 || p.LikeCount != 0 {
		t.Errorf("projection wrong: %+v", p)
	}
	if len(p.ImageURLs) != 1 || p.ImageURLs[0] != "run.jpg" {
		t.Errorf("ImageURLs = %v", p.ImageURLs)
	}
}
