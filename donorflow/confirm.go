package donorflow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"
)

// ConfirmResult is the provider's view of a confirmation attempt.
type ConfirmResult struct {
	// Succeeded means the provider reported the payment settled. This is a
	// local signal; the backend status observed by the poller remains
	// authoritative and may lag behind it.
	Succeeded bool
	Status    string
}

// PaymentConfirmer owns the card collection and confirmation step of a
// payment intent. Implementations confirm against the provider using the
// intent's client secret and a return URL that forces in-page completion
// rather than a redirect round-trip.
type PaymentConfirmer interface {
	Confirm(ctx context.Context, clientSecret, returnURL string) (ConfirmResult, error)
}

// StripeConfirmer confirms payment intents against the Stripe API.
type StripeConfirmer struct {
	api *client.API
}

// NewStripeConfirmer returns a confirmer backed by the given secret key.
func NewStripeConfirmer(secretKey string) (*StripeConfirmer, error) {
	if secretKey == "" {
		return nil, errors.New("missing Stripe secret key")
	}

	api := &client.API{}
	api.Init(secretKey, nil)

	return &StripeConfirmer{api: api}, nil
}

// Confirm resolves the intent id from the client secret and confirms it.
// Provider-level failures come back as plain errors for inline display; the
// caller decides whether any state transition follows.
func (s *StripeConfirmer) Confirm(ctx context.Context, clientSecret, returnURL string) (ConfirmResult, error) {
	intentID, err := intentIDFromClientSecret(clientSecret)
	if err != nil {
		return ConfirmResult{}, err
	}

	params := &stripe.PaymentIntentConfirmParams{
		Params: stripe.Params{Context: ctx},
	}
	if returnURL != "" {
		params.ReturnURL = stripe.String(returnURL)
	}

	intent, err := s.api.PaymentIntents.Confirm(intentID, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			return ConfirmResult{}, fmt.Errorf("payment provider rejected the confirmation: %s", stripeErr.Msg)
		}
		return ConfirmResult{}, fmt.Errorf("payment confirmation request failed: %w", err)
	}

	return ConfirmResult{
		Succeeded: intent.Status == stripe.PaymentIntentStatusSucceeded,
		Status:    string(intent.Status),
	}, nil
}

// intentIDFromClientSecret extracts the payment intent id, which prefixes
// the "_secret" marker in every Stripe client secret.
func intentIDFromClientSecret(clientSecret string) (string, error) {
	id, _, found := strings.Cut(clientSecret, "_secret")
	if !found || id == "" {
		return "", fmt.Errorf("malformed client secret")
	}
	return id, nil
}
