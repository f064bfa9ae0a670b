package portal

import (
	"context"

	"lightscape/internal/domain"
)

// BookingRepository is the slice of booking storage the customer portal uses.
// A booking row doubles as the customer record: presence of an exact
// email+phone match is the whole identity check.
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByEmail(ctx context.Context, email string) ([]domain.Booking, error)
	GetByEmailAndPhone(ctx context.Context, email, phone string) (*domain.Booking, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
}
