package portal

import (
	"context"
	"errors"

	"lightscape/internal/domain"
	"lightscape/internal/repository"
)

type Service struct {
	bookings BookingRepository
}

func NewService(bookings BookingRepository) *Service {
	return &Service{bookings: bookings}
}

// Authenticate treats an exact email+phone match over the bookings table as
// proof of ownership. No session or token is issued; callers re-supply the
// pair on every sensitive request. Not a real credential system.
func (s *Service) Authenticate(ctx context.Context, email, phone string) (string, error) {
	if email == "" || phone == "" {
		return "", ErrValidation
	}

	b, err := s.bookings.GetByEmailAndPhone(ctx, email, phone)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return "", ErrNoMatch
		}
		return "", err
	}
	return b.ID, nil
}

func (s *Service) ListBookings(ctx context.Context, email string) ([]domain.Booking, error) {
	if email == "" {
		return nil, ErrValidation
	}
	return s.bookings.GetByEmail(ctx, email)
}

// UpdateBooking applies the restricted customer patch (address, project
// details, phone). Anything else in the request body is ignored.
func (s *Service) UpdateBooking(ctx context.Context, id string, req UpdateBookingRequest) (*domain.Booking, error) {
	fields := map[string]interface{}{}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.ProjectDetails != nil {
		fields["project_details"] = *req.ProjectDetails
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}

	if len(fields) == 0 {
		return nil, ErrEmptyUpdate
	}

	b, err := s.bookings.UpdateFields(ctx, id, fields)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// CancelBooking cancels a booking on the customer's behalf. Unlike the
// admin path it refuses anything that has moved past pending.
func (s *Service) CancelBooking(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if b.Status != domain.BookingPending {
		return nil, ErrNotCancellable
	}

	return s.bookings.UpdateStatus(ctx, id, domain.BookingCancelled)
}
