package interfaces

import "context"

// IntentRequest carries what the gateway needs to open a payment intent.
// Amount is in the major currency unit; gateways convert to minor units.
type IntentRequest struct {
	Amount      float64
	Currency    string
	Description string
	Metadata    map[string]string
}

// IPaymentGateway abstracts the external payment provider (Stripe).
//
// CreateIntent opens a provider-side payment authorization and returns the
// provider intent id plus the client secret the embedded payment element
// confirms against.
type IPaymentGateway interface {
	CreateIntent(ctx context.Context, req IntentRequest) (providerIntentID string, clientSecret string, err error)
}
