package payment

import "context"

// Intent is the slice of the processor's payment-intent record the
// application cares about. Amounts are in minor currency units.
type Intent struct {
	ID           string
	ClientSecret string
	Status       string
	AmountCents  int64
}

// IntentClient talks to the external payment processor. No local state
// is kept about intents beyond the reservation linkage.
type IntentClient interface {
	Create(ctx context.Context, amountCents int64) (*Intent, error)
	// Get returns ErrIntentNotFound when the processor does not know
	// the identifier.
	Get(ctx context.Context, id string) (*Intent, error)
}

// ReservationLinker connects payment intents to reservations: attach
// at intent creation, confirm/cancel from webhook events. The
// confirm/cancel operations are idempotent.
type ReservationLinker interface {
	AttachPaymentIntent(ctx context.Context, reservationID int64, intentID string) error
	ConfirmByPaymentIntent(ctx context.Context, intentID string) error
	CancelByPaymentIntent(ctx context.Context, intentID string) error
}
