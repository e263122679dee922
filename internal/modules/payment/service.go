package payment

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"math"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	"parkease/internal/modules/reservation"
)

type Service struct {
	client        IntentClient
	reservations  ReservationLinker
	webhookSecret string
}

func NewService(client IntentClient, reservations ReservationLinker, webhookSecret string) *Service {
	return &Service{
		client:        client,
		reservations:  reservations,
		webhookSecret: webhookSecret,
	}
}

// CreateIntent converts the dollar amount to cents by rounding and
// delegates creation to the processor. When a reservation id is given,
// the intent id is stored on that reservation for later webhook
// reconciliation.
func (s *Service) CreateIntent(ctx context.Context, req CreateIntentRequest) (*CreateIntentResponse, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	cents := int64(math.Round(req.Amount * 100))
	intent, err := s.client.Create(ctx, cents)
	if err != nil {
		return nil, err
	}

	if req.ReservationID != nil {
		if err := s.reservations.AttachPaymentIntent(ctx, *req.ReservationID, intent.ID); err != nil {
			log.Printf("level=error msg=failed to link payment intent reservation_id=%d intent_id=%s err=%v",
				*req.ReservationID, intent.ID, err)
		}
	}

	return &CreateIntentResponse{
		ClientSecret: intent.ClientSecret,
		ID:           intent.ID,
	}, nil
}

// Status fetches the current state of an intent from the processor.
func (s *Service) Status(ctx context.Context, intentID string) (*StatusResponse, error) {
	intent, err := s.client.Get(ctx, intentID)
	if err != nil {
		return nil, err
	}
	return &StatusResponse{
		Status: intent.Status,
		Amount: float64(intent.AmountCents) / 100,
	}, nil
}

// HandleWebhook verifies and dispatches a processor event. Events for
// unknown intents or unhandled types are acknowledged and ignored;
// replaying an already-applied event changes nothing.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	var event stripe.Event
	if s.webhookSecret != "" {
		verified, err := webhook.ConstructEvent(payload, signature, s.webhookSecret)
		if err != nil {
			return ErrInvalidPayload
		}
		event = verified
	} else if err := json.Unmarshal(payload, &event); err != nil {
		return ErrInvalidPayload
	}

	switch string(event.Type) {
	case "payment_intent.succeeded":
		return s.applyIntentOutcome(ctx, event, s.reservations.ConfirmByPaymentIntent)
	case "payment_intent.payment_failed":
		return s.applyIntentOutcome(ctx, event, s.reservations.CancelByPaymentIntent)
	default:
		log.Printf("level=info msg=unhandled webhook event type=%s", event.Type)
		return nil
	}
}

func (s *Service) applyIntentOutcome(ctx context.Context, event stripe.Event, apply func(context.Context, string) error) error {
	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		return ErrInvalidPayload
	}

	if err := apply(ctx, pi.ID); err != nil {
		if errors.Is(err, reservation.ErrNotFound) {
			// No reservation is linked to this intent; nothing to
			// reconcile.
			log.Printf("level=info msg=webhook intent without reservation intent_id=%s type=%s", pi.ID, event.Type)
			return nil
		}
		return err
	}
	return nil
}
