// internal/domain/auth/service.go
package auth

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rajesh-kayal-dev/jubili-web-public/internal/api"
	"github.com/sirupsen/logrus"
)

// Service handles authentication calls against the storefront API
type Service struct {
	api    *api.Client
	logger *logrus.Logger
}

// NewService creates a new auth service
func NewService(client *api.Client, logger *logrus.Logger) *Service {
	return &Service{
		api:    client,
		logger: logger,
	}
}

// Login authenticates a user. The API contract puts the credentials in
// query parameters of a GET request.
func (s *Service) Login(ctx context.Context, credentials LoginCredentials) (*AuthResponse, error) {
	query := url.Values{}
	query.Set("email", credentials.Email)
	query.Set("password", credentials.Password)

	var response AuthResponse
	if err := s.api.Get(ctx, api.EndpointLogin, query, "", &response); err != nil {
		return nil, fmt.Errorf("failed to login: %w", err)
	}

	s.logger.WithField("user_id", response.User.UserID).Info("User logged in")
	return &response, nil
}

// Signup registers a new user account
func (s *Service) Signup(ctx context.Context, credentials SignupCredentials) (*AuthResponse, error) {
	var response AuthResponse
	if err := s.api.Post(ctx, api.EndpointSignup, "", credentials, &response); err != nil {
		return nil, fmt.Errorf("failed to sign up: %w", err)
	}

	s.logger.WithField("user_id", response.User.UserID).Info("User signed up")
	return &response, nil
}
