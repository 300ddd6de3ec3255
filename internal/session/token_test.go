// internal/session/token_test.go
package session

import (
	"context"
	"encoding/base64"
	"fmt"
	"testing"
	"time"

	"github.com/rajesh-kayal-dev/jubili-web-public/internal/infrastructure/storage"
)

// makeToken builds an unsigned JWT; claim inspection never verifies.
func makeToken(t *testing.T, exp int64) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	claims := base64.RawURLEncoding.EncodeToString([]byte(fmt.Sprintf(`{"userId":"u1","exp":%d}`, exp)))
	return header + "." + claims + "."
}

func TestTokenClaims(t *testing.T) {
	records := storage.NewFileStore(t.TempDir())
	exp := time.Now().Add(24 * time.Hour).Unix()
	records.Set(context.Background(), tokenKey, makeToken(t, exp))

	store := NewStore(nil, records, nil, testLogger())

	claims, err := store.TokenClaims()
	if err != nil {
		t.Fatalf("TokenClaims: %v", err)
	}
	if got := claims["userId"]; got != "u1" {
		t.Errorf("userId claim = %v, want u1", got)
	}

	expiry, ok := store.TokenExpiry()
	if !ok {
		t.Fatal("TokenExpiry: no expiry found")
	}
	if expiry.Unix() != exp {
		t.Errorf("expiry = %v, want unix %d", expiry, exp)
	}
}

func TestTokenClaimsWithoutSession(t *testing.T) {
	store := NewStore(nil, storage.NewFileStore(t.TempDir()), nil, testLogger())
	if _, err := store.TokenClaims(); err == nil {
		t.Error("expected error without a stored token")
	}
	if _, ok := store.TokenExpiry(); ok {
		t.Error("expected no expiry without a stored token")
	}
}

func TestTokenClaimsMalformedToken(t *testing.T) {
	records := storage.NewFileStore(t.TempDir())
	records.Set(context.Background(), tokenKey, "not-a-jwt")

	store := NewStore(nil, records, nil, testLogger())
	if _, err := store.TokenClaims(); err == nil {
		t.Error("expected parse error for malformed token")
	}
}
