package testimonial

import (
	"context"

	"lightscape/internal/domain"
)

type TestimonialRepository interface {
	Create(ctx context.Context, t *domain.Testimonial) error
	GetAll(ctx context.Context) ([]domain.Testimonial, error)
	GetFeatured(ctx context.Context) ([]domain.Testimonial, error)
}
