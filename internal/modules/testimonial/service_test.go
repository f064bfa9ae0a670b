package testimonial

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"lightscape/internal/domain"
)

type MockTestimonialRepository struct {
	mock.Mock
}

func (m *MockTestimonialRepository) Create(ctx context.Context, t *domain.Testimonial) error {
	args := m.Called(ctx, t)
	if t != nil {
		t.ID = "t-1"
	}
	return args.Error(0)
}

func (m *MockTestimonialRepository) GetAll(ctx context.Context) ([]domain.Testimonial, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Testimonial), args.Error(1)
}

func (m *MockTestimonialRepository) GetFeatured(ctx context.Context) ([]domain.Testimonial, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Testimonial), args.Error(1)
}

func TestService_Create_Success(t *testing.T) {
	repo := new(MockTestimonialRepository)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Testimonial")).Return(nil)

	out, err := svc.Create(context.Background(), CreateTestimonialRequest{
		Name:        "Sarah Johnson",
		Location:    "Saint John, NB",
		Rating:      5,
		Comment:     "The display was stunning all season.",
		ServiceType: "residential-deluxe",
	})

	assert.NoError(t, err)
	assert.Equal(t, "t-1", out.ID)
	assert.False(t, out.Featured)
	repo.AssertExpectations(t)
}

func TestService_Create_BadRating(t *testing.T) {
	repo := new(MockTestimonialRepository)
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateTestimonialRequest{
		Name:        "Sarah Johnson",
		Location:    "Saint John, NB",
		Rating:      6,
		Comment:     "ok",
		ServiceType: "custom",
	})

	assert.ErrorIs(t, err, ErrInvalidRequest)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
