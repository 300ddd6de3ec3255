// internal/session/store.go
package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rajesh-kayal-dev/jubili-web-public/internal/domain/auth"
	"github.com/rajesh-kayal-dev/jubili-web-public/internal/infrastructure/storage"
	"github.com/sirupsen/logrus"
)

// Storage keys for the two independent session records. They are written
// separately, so an interrupted login can leave one without the other; no
// integrity check reconciles them on read.
const (
	tokenKey = "auth_token"
	userKey  = "user_info"
)

// Routes the session store navigates to after auth transitions
const (
	RouteHome  = "/"
	RouteLogin = "/login"
)

// Navigator receives route changes issued by the session store
type Navigator func(route string)

// Store holds the authenticated user and mediates login, signup and logout
// side effects: persisting or clearing the session records and navigating.
// All storage access goes through the injected record store, never through
// ambient globals.
type Store struct {
	mu      sync.Mutex
	user    *auth.User
	loading bool
	errMsg  string

	authService *auth.Service
	records     storage.Store
	navigate    Navigator
	logger      *logrus.Logger
}

// NewStore creates a session store, seeding the in-memory user from the
// persisted record when one exists. A malformed record is treated as no
// session.
func NewStore(authService *auth.Service, records storage.Store, navigate Navigator, logger *logrus.Logger) *Store {
	s := &Store{
		authService: authService,
		records:     records,
		navigate:    navigate,
		logger:      logger,
	}

	raw, err := records.Get(context.Background(), userKey)
	if err == nil {
		var user auth.User
		if err := json.Unmarshal([]byte(raw), &user); err == nil {
			s.user = &user
		} else {
			logger.WithField("error", err.Error()).Warn("Ignoring malformed user record")
		}
	}
	return s
}

// User returns the in-memory user, or nil when logged out
func (s *Store) User() *auth.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// UserID returns the current user id, or "" when logged out
func (s *Store) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return ""
	}
	return s.user.UserID
}

// Token reads the persisted token record on every call, so the value is
// always fresh relative to storage. It can still be stale relative to a
// logout racing in another process sharing the same backend.
func (s *Store) Token() string {
	token, err := s.records.Get(context.Background(), tokenKey)
	if err != nil {
		return ""
	}
	return token
}

// Loading reports whether a login or signup call is in flight
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last auth error message, or ""
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// Login authenticates and establishes a session. On success the token and
// user records are persisted, the in-memory user is set and navigation goes
// home. On failure the prior session is left untouched, the error message is
// recorded and the original error is returned so callers can react too.
// Concurrent calls are not serialized; the last response to resolve wins in
// storage.
func (s *Store) Login(ctx context.Context, credentials auth.LoginCredentials) (*auth.AuthResponse, error) {
	return s.authenticate(ctx, func() (*auth.AuthResponse, error) {
		return s.authService.Login(ctx, credentials)
	})
}

// Signup registers a new account and establishes a session with the same
// persistence and navigation side effects as Login.
func (s *Store) Signup(ctx context.Context, credentials auth.SignupCredentials) (*auth.AuthResponse, error) {
	return s.authenticate(ctx, func() (*auth.AuthResponse, error) {
		return s.authService.Signup(ctx, credentials)
	})
}

func (s *Store) authenticate(ctx context.Context, call func() (*auth.AuthResponse, error)) (*auth.AuthResponse, error) {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	response, err := call()
	if err != nil {
		s.mu.Lock()
		s.errMsg = err.Error()
		s.mu.Unlock()
		return nil, err
	}

	s.persistSession(ctx, response)

	s.mu.Lock()
	user := response.User
	s.user = &user
	s.mu.Unlock()

	s.redirect(RouteHome)
	return response, nil
}

// persistSession writes the two session records. The writes are independent;
// a failure on the second leaves the first in place (the documented desync
// window). Persist failures keep the in-memory session usable and are only
// logged.
func (s *Store) persistSession(ctx context.Context, response *auth.AuthResponse) {
	if err := s.records.Set(ctx, tokenKey, response.Token); err != nil {
		s.logger.WithField("error", err.Error()).Warn("Failed to persist token record")
	}

	encoded, err := json.Marshal(response.User)
	if err != nil {
		s.logger.WithField("error", err.Error()).Warn("Failed to encode user record")
		return
	}
	if err := s.records.Set(ctx, userKey, string(encoded)); err != nil {
		s.logger.WithField("error", err.Error()).Warn("Failed to persist user record")
	}
}

// Logout clears both session records and the in-memory user synchronously,
// then navigates to login. The token is not invalidated server-side and
// in-flight requests holding it are not cancelled.
func (s *Store) Logout() {
	ctx := context.Background()
	if err := s.records.Delete(ctx, tokenKey); err != nil {
		s.logger.WithField("error", err.Error()).Warn("Failed to delete token record")
	}
	if err := s.records.Delete(ctx, userKey); err != nil {
		s.logger.WithField("error", err.Error()).Warn("Failed to delete user record")
	}

	s.mu.Lock()
	s.user = nil
	s.errMsg = ""
	s.mu.Unlock()

	s.logger.Info("User logged out")
	s.redirect(RouteLogin)
}

func (s *Store) redirect(route string) {
	if s.navigate != nil {
		s.navigate(route)
	}
}
