package payment

import (
	"context"

	"lightscape/internal/domain"
	"lightscape/internal/repository"
)

// Intent is the processor-agnostic view of a payment intent.
type Intent struct {
	ID           string
	ClientSecret string
	Status       string
	AmountCents  int64
	Metadata     map[string]string
}

// IntentSucceeded is the processor status that releases the booking into
// the paid/confirmed state.
const IntentSucceeded = "succeeded"

// Gateway wraps the external payment processor.
type Gateway interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (*Intent, error)
	GetIntent(ctx context.Context, id string) (*Intent, error)
}

// BookingStore is the slice of booking storage the bridge touches.
type BookingStore interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdatePayment(ctx context.Context, id string, upd repository.PaymentUpdate) (*domain.Booking, error)
}
