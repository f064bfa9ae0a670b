package payment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"lightscape/internal/domain"
	"lightscape/internal/repository"
)

const defaultCurrency = "cad"

type Service struct {
	gateway  Gateway
	bookings BookingStore
	loggerf  func(format string, args ...interface{})
}

// NewService builds the payment bridge. A nil gateway means the processor
// key is absent; every operation then degrades to ErrNotConfigured instead
// of failing deeper in the stack.
func NewService(gateway Gateway, bookings BookingStore, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{gateway: gateway, bookings: bookings, loggerf: loggerf}
}

func (s *Service) Configured() bool {
	return s.gateway != nil
}

// CreateIntent opens a payment intent for the booking's amount in minor
// currency units, records the intent id on the booking and moves its
// payment status to processing.
func (s *Service) CreateIntent(ctx context.Context, req CreateIntentRequest) (*CreateIntentResponse, error) {
	if !s.Configured() {
		return nil, ErrNotConfigured
	}
	if req.BookingID == "" || req.Amount <= 0 {
		return nil, ErrValidation
	}

	if _, err := s.bookings.GetByID(ctx, req.BookingID); err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	cents := int64(math.Round(req.Amount * 100))
	intent, err := s.gateway.CreateIntent(ctx, cents, currency, map[string]string{
		"bookingId": req.BookingID,
		"service":   "christmas-lighting",
	})
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	processing := domain.PaymentProcessing
	_, err = s.bookings.UpdatePayment(ctx, req.BookingID, repository.PaymentUpdate{
		PaymentIntentID: &intent.ID,
		PaymentStatus:   &processing,
	})
	if err != nil {
		s.loggerf("level=error msg=failed to store intent on booking booking_id=%s intent_id=%s err=%v",
			req.BookingID, intent.ID, err)
		return nil, err
	}

	s.loggerf("level=info msg=payment intent created booking_id=%s intent_id=%s amount_cents=%d",
		req.BookingID, intent.ID, cents)

	return &CreateIntentResponse{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
	}, nil
}

// Confirm retrieves the intent from the processor. Only a succeeded intent
// mutates the booking; anything else leaves it untouched and reports
// ErrNotSucceeded for the client to retry on its side.
func (s *Service) Confirm(ctx context.Context, paymentIntentID string) (*domain.Booking, error) {
	if !s.Configured() {
		return nil, ErrNotConfigured
	}

	intent, err := s.gateway.GetIntent(ctx, paymentIntentID)
	if err != nil {
		return nil, fmt.Errorf("retrieve payment intent: %w", err)
	}

	if intent.Status != IntentSucceeded {
		s.loggerf("level=info msg=payment intent not succeeded intent_id=%s status=%s",
			paymentIntentID, intent.Status)
		return nil, ErrNotSucceeded
	}

	bookingID := intent.Metadata["bookingId"]
	if bookingID == "" {
		return nil, fmt.Errorf("payment intent %s has no booking reference", paymentIntentID)
	}

	paid := domain.PaymentPaid
	confirmed := domain.BookingConfirmed
	amount := float64(intent.AmountCents) / 100
	now := time.Now().UTC()

	b, err := s.bookings.UpdatePayment(ctx, bookingID, repository.PaymentUpdate{
		PaymentStatus: &paid,
		PaidAmount:    &amount,
		PaymentDate:   &now,
		Status:        &confirmed,
	})
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	s.loggerf("level=info msg=payment confirmed booking_id=%s intent_id=%s paid_amount=%.2f",
		bookingID, paymentIntentID, amount)

	return b, nil
}
