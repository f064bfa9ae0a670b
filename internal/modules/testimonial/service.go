package testimonial

import (
	"context"

	"lightscape/internal/domain"
)

type Service struct {
	testimonials TestimonialRepository
}

func NewService(testimonials TestimonialRepository) *Service {
	return &Service{testimonials: testimonials}
}

// Create stores a new testimonial. Submissions are never featured on
// creation; promotion happens through seeding or direct curation.
func (s *Service) Create(ctx context.Context, req CreateTestimonialRequest) (*domain.Testimonial, error) {
	if req.Name == "" || req.Location == "" || req.Comment == "" || req.ServiceType == "" ||
		req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRequest
	}

	t := &domain.Testimonial{
		Name:        req.Name,
		Location:    req.Location,
		Rating:      req.Rating,
		Comment:     req.Comment,
		ServiceType: req.ServiceType,
		Featured:    false,
	}

	if err := s.testimonials.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) GetAll(ctx context.Context) ([]domain.Testimonial, error) {
	return s.testimonials.GetAll(ctx)
}

func (s *Service) GetFeatured(ctx context.Context) ([]domain.Testimonial, error) {
	return s.testimonials.GetFeatured(ctx)
}
