package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"strings"
	"time"

	"hopebridge/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"
)

var ErrMissingStripeSecretKey = errors.New("missing STRIPE_SECRET_KEY")
var ErrStripeGatewayNotConfigured = errors.New("stripe gateway not configured")

// StripeGateway creates payment intents against Stripe. In mock mode no
// network call is made and a synthetic intent id/secret pair is returned,
// which keeps local development and CI independent of Stripe sandbox
// credentials.

type StripeGateway struct {
	api      *client.API
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*StripeGateway)(nil)

func NewStripeGateway(secretKey string) (*StripeGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &StripeGateway{mockMode: true}, nil
	}

	if secretKey == "" {
		log.Printf("[payment][gateway] missing STRIPE_SECRET_KEY")
		return nil, ErrMissingStripeSecretKey
	}

	api := &client.API{}
	api.Init(secretKey, nil)
	log.Printf("[payment][gateway] Stripe client initialized")

	return &StripeGateway{api: api}, nil
}

func (g *StripeGateway) CreateIntent(ctx context.Context, req interfaces.IntentRequest) (string, string, error) {
	if g != nil && g.mockMode {
		id := fmt.Sprintf("pi_mock_%s", strings.ReplaceAll(uuid.NewString(), "-", ""))
		secret := fmt.Sprintf("%s_secret_%d", id, time.Now().UTC().UnixNano())
		log.Printf("[payment][gateway] mock create success provider_intent_id=%s", id)
		return id, secret, nil
	}

	if g == nil || g.api == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", "", ErrStripeGatewayNotConfigured
	}
	log.Printf("[payment][gateway] create start amount=%.2f currency=%s", req.Amount, req.Currency)

	params := &stripe.PaymentIntentParams{
		Params:      stripe.Params{Context: ctx},
		Amount:      stripe.Int64(toMinorUnits(req.Amount)),
		Currency:    stripe.String(req.Currency),
		Description: stripe.String(req.Description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	for k, v := range req.Metadata {
		if v != "" {
			params.AddMetadata(k, v)
		}
	}

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed err=%v", err)
		return "", "", err
	}
	log.Printf("[payment][gateway] create success provider_intent_id=%s provider_status=%s", pi.ID, pi.Status)

	return pi.ID, pi.ClientSecret, nil
}

// toMinorUnits converts a major-unit amount to cents without drifting on
// binary float representations (24.99 -> 2499, never 2498).
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "STRIPE_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
