package payment

import (
	"context"
	"errors"
	"net/http"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

// stripeClient implements IntentClient against the Stripe API.
type stripeClient struct{}

// NewStripeClient sets the account key for the stripe SDK and returns
// the client. Call once at startup.
func NewStripeClient(secretKey string) IntentClient {
	stripe.Key = secretKey
	return &stripeClient{}
}

func (s *stripeClient) Create(ctx context.Context, amountCents int64) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
	}
	params.Context = ctx
	params.AddMetadata("integration_check", "parkease_payment")

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, err
	}
	return toIntent(pi), nil
}

func (s *stripeClient) Get(ctx context.Context, id string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := paymentintent.Get(id, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode == http.StatusNotFound {
			return nil, ErrIntentNotFound
		}
		return nil, err
	}
	return toIntent(pi), nil
}

func toIntent(pi *stripe.PaymentIntent) *Intent {
	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		AmountCents:  pi.Amount,
	}
}
