package portal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"lightscape/internal/domain"
	"lightscape/internal/repository"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByEmail(ctx context.Context, email string) ([]domain.Booking, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByEmailAndPhone(ctx context.Context, email, phone string) (*domain.Booking, error) {
	args := m.Called(ctx, email, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*domain.Booking, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func TestService_Authenticate_Match(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := NewService(repo)

	repo.On("GetByEmailAndPhone", mock.Anything, "john@example.com", "(506) 555-0123").
		Return(&domain.Booking{ID: "b-1", Email: "john@example.com"}, nil)

	id, err := svc.Authenticate(context.Background(), "john@example.com", "(506) 555-0123")

	assert.NoError(t, err)
	assert.Equal(t, "b-1", id)
}

func TestService_Authenticate_NoMatch(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := NewService(repo)

	repo.On("GetByEmailAndPhone", mock.Anything, "nobody@example.com", "555").
		Return(nil, repository.ErrBookingNotFound)

	_, err := svc.Authenticate(context.Background(), "nobody@example.com", "555")

	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestService_Authenticate_MissingFields(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := NewService(repo)

	_, err := svc.Authenticate(context.Background(), "", "")

	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "GetByEmailAndPhone", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpdateBooking_RestrictedFields(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := NewService(repo)

	address := "456 Oak Avenue"
	phone := "(506) 555-9999"

	repo.On("UpdateFields", mock.Anything, "b-1", map[string]interface{}{
		"address": address,
		"phone":   phone,
	}).Return(&domain.Booking{ID: "b-1", Address: address, Phone: phone}, nil)

	b, err := svc.UpdateBooking(context.Background(), "b-1", UpdateBookingRequest{
		Address: &address,
		Phone:   &phone,
	})

	assert.NoError(t, err)
	assert.Equal(t, address, b.Address)
	repo.AssertExpectations(t)
}

func TestService_UpdateBooking_EmptyPatch(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := NewService(repo)

	_, err := svc.UpdateBooking(context.Background(), "b-1", UpdateBookingRequest{})

	assert.ErrorIs(t, err, ErrEmptyUpdate)
	repo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_CancelBooking_Pending(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, "b-1").
		Return(&domain.Booking{ID: "b-1", Status: domain.BookingPending}, nil)
	repo.On("UpdateStatus", mock.Anything, "b-1", domain.BookingCancelled).
		Return(&domain.Booking{ID: "b-1", Status: domain.BookingCancelled}, nil)

	b, err := svc.CancelBooking(context.Background(), "b-1")

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, b.Status)
}

func TestService_CancelBooking_Confirmed(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, "b-1").
		Return(&domain.Booking{ID: "b-1", Status: domain.BookingConfirmed}, nil)

	_, err := svc.CancelBooking(context.Background(), "b-1")

	assert.ErrorIs(t, err, ErrNotCancellable)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_CancelBooking_NotFound(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, "missing").Return(nil, repository.ErrBookingNotFound)

	_, err := svc.CancelBooking(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}
