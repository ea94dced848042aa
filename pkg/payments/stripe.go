package payments

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// StripeProvider creates payment intents through the Stripe API.
type StripeProvider struct {
	api *client.API
}

// NewStripeProvider creates a provider authenticated with secretKey.
// A nil backends value uses Stripe's production endpoints.
func NewStripeProvider(secretKey string, backends *stripe.Backends) *StripeProvider {
	return &StripeProvider{
		api: client.New(secretKey, backends),
	}
}

// CreatePaymentIntent creates a card payment intent for amount minor units of currency
// and returns its client secret.
func (p *StripeProvider) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}
