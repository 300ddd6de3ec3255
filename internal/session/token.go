// internal/session/token.go
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims returns the claims of the stored bearer token without
// verifying its signature. The client only inspects the token for display;
// validation belongs to the server.
func (s *Store) TokenClaims() (jwt.MapClaims, error) {
	token := s.Token()
	if token == "" {
		return nil, errors.New("no session token")
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to parse session token: %w", err)
	}
	return claims, nil
}

// TokenExpiry returns the expiry of the stored token when the token carries
// an exp claim
func (s *Store) TokenExpiry() (time.Time, bool) {
	claims, err := s.TokenClaims()
	if err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
