// internal/domain/payment/razorpay_service.go
package payment

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rajesh-kayal-dev/jubili-web-public/internal/config"
	"github.com/rajesh-kayal-dev/jubili-web-public/internal/domain/auth"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// CheckoutOptions is the options object handed to the Razorpay checkout
// widget. Amount is in paise.
type CheckoutOptions struct {
	Key         string  `json:"key"`
	Amount      int64   `json:"amount"`
	Currency    string  `json:"currency"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Prefill     Prefill `json:"prefill"`
	Theme       Theme   `json:"theme"`
}

// Prefill contains the fields the widget pre-populates
type Prefill struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

// Theme contains widget styling
type Theme struct {
	Color string `json:"color"`
}

// Result is what the widget hands to the success handler
type Result struct {
	RazorpayPaymentID string `json:"razorpay_payment_id"`
}

// Gateway is the opaque checkout widget: it takes an options object and a
// success handler and runs its own protocol behind Open.
type Gateway interface {
	Open(options CheckoutOptions, onSuccess func(Result)) error
}

// Service builds checkout options and triggers the payment widget. No real
// payment processing happens here; the gateway in use is a test-mode mock.
type Service struct {
	config  *config.Config
	gateway Gateway
	logger  *logrus.Logger
}

// NewService creates a new payment service
func NewService(cfg *config.Config, gateway Gateway, logger *logrus.Logger) *Service {
	return &Service{
		config:  cfg,
		gateway: gateway,
		logger:  logger,
	}
}

// CheckoutOptions builds the widget options for a rupee amount. Prefill
// fields come from the session user when present, else test-mode defaults.
func (s *Service) CheckoutOptions(amountRupees float64, user *auth.User) (CheckoutOptions, error) {
	if amountRupees <= 0 {
		return CheckoutOptions{}, fmt.Errorf("amount must be greater than 0")
	}

	// Convert rupees to paise without float drift
	paise := decimal.NewFromFloat(amountRupees).Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	prefill := Prefill{
		Name:    "Test User",
		Email:   "test@example.com",
		Contact: "9999999999",
	}
	if user != nil {
		prefill.Name = user.Name
		prefill.Email = user.Email
		if user.Phone != "" {
			prefill.Contact = user.Phone
		}
	}

	return CheckoutOptions{
		Key:         s.config.Payment.RazorpayKeyID,
		Amount:      paise,
		Currency:    s.config.Payment.Currency,
		Name:        s.config.Payment.StoreName,
		Description: s.config.Payment.Description,
		Prefill:     prefill,
		Theme:       Theme{Color: s.config.Payment.ThemeColor},
	}, nil
}

// StartPayment opens the checkout widget and returns the payment id reported
// by the success handler
func (s *Service) StartPayment(amountRupees float64, user *auth.User) (string, error) {
	options, err := s.CheckoutOptions(amountRupees, user)
	if err != nil {
		return "", err
	}

	var paymentID string
	if err := s.gateway.Open(options, func(result Result) {
		paymentID = result.RazorpayPaymentID
	}); err != nil {
		return "", fmt.Errorf("checkout failed: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"payment_id": paymentID,
		"amount":     options.Amount,
		"currency":   options.Currency,
	}).Info("Payment completed")
	return paymentID, nil
}

// MockGateway simulates the hosted checkout in test mode: it accepts the
// options, fabricates a payment id and invokes the success handler.
type MockGateway struct {
	logger *logrus.Logger
}

// NewMockGateway creates a test-mode gateway
func NewMockGateway(logger *logrus.Logger) *MockGateway {
	return &MockGateway{logger: logger}
}

// Open runs the mocked checkout flow synchronously
func (g *MockGateway) Open(options CheckoutOptions, onSuccess func(Result)) error {
	paymentID := "pay_" + strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:14])

	g.logger.WithFields(logrus.Fields{
		"key":      options.Key,
		"amount":   options.Amount,
		"currency": options.Currency,
	}).Info("Opening mock Razorpay checkout")

	onSuccess(Result{RazorpayPaymentID: paymentID})
	return nil
}
