// Package checkout holds the payment-processor integration and the
// payment-recording flow that settles an order.
package checkout

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	stripe "github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
)

// IntentProcessor creates a client-side confirmation secret for a
// charge. The single implementation talks to Stripe; tests substitute
// a fake.
type IntentProcessor interface {
	CreateIntent(ctx context.Context, price float64) (clientSecret string, err error)
}

// StripeProcessor implements IntentProcessor against the Stripe API.
// All charges are card payments in USD; price is in major units.
type StripeProcessor struct{}

func NewStripeProcessor(secretKey string) *StripeProcessor {
	stripe.Key = secretKey
	return &StripeProcessor{}
}

func (p *StripeProcessor) CreateIntent(ctx context.Context, price float64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(int64(price * 100)),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	// Fresh key per intent; retries of the HTTP call inside stripe-go
	// stay idempotent without creating duplicate intents.
	params.SetIdempotencyKey(uuid.NewString())

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}
