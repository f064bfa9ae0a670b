package booking

import (
	"context"
	"errors"

	"lightscape/internal/domain"
	"lightscape/internal/repository"
)

type Service struct {
	bookings BookingRepository
	pricing  PriceCalculator
}

func NewService(bookings BookingRepository, pricing PriceCalculator) *Service {
	return &Service{bookings: bookings, pricing: pricing}
}

// Create persists a new booking. The estimate always comes from the pricing
// calculator, never from the client, and new bookings start as
// pending/pending with the automated flag set.
func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if req.FullName == "" || req.Email == "" || req.Phone == "" || req.ServiceType == "" {
		return nil, ErrValidation
	}

	price := s.pricing.CalculatePrice(req.ServiceType, req.PropertySize)

	b := &domain.Booking{
		FullName:         req.FullName,
		Email:            req.Email,
		Phone:            req.Phone,
		Address:          req.Address,
		ServiceType:      req.ServiceType,
		ProjectDetails:   req.ProjectDetails,
		Status:           domain.BookingPending,
		EstimatedPrice:   float64(price),
		PaymentStatus:    domain.PaymentPending,
		AutomatedBooking: true,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// ListAll returns the admin dashboard payload.
func (s *Service) ListAll(ctx context.Context) (*AdminListResponse, error) {
	bookings, err := s.bookings.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := s.bookings.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	return &AdminListResponse{
		Bookings:        bookings,
		Total:           len(bookings),
		ByStatus:        counts.ByStatus,
		ByPaymentStatus: counts.ByPaymentStatus,
	}, nil
}

// UpdateStatus moves a booking through the lifecycle. Every transition is
// checked against the shared state machine, the admin path included.
func (s *Service) UpdateStatus(ctx context.Context, id string, status string) (*domain.Booking, error) {
	next := domain.BookingStatus(status)
	if !domain.ValidBookingStatus(next) {
		return nil, ErrInvalidStatus
	}

	current, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !domain.CanTransition(current.Status, next) {
		return nil, ErrInvalidTransition
	}

	return s.bookings.UpdateStatus(ctx, id, next)
}
