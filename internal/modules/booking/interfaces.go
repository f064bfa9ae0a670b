package booking

import (
	"context"

	"lightscape/internal/domain"
	"lightscape/internal/repository"
)

// BookingRepository defines the storage operations this module needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetAll(ctx context.Context) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
	CountByStatus(ctx context.Context) (*repository.StatusCounts, error)
}

// PriceCalculator computes the server-side estimate at creation time.
type PriceCalculator interface {
	CalculatePrice(serviceType, propertySize string) int
}
