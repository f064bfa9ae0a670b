package gallery

import (
	"context"
	"errors"

	"lightscape/internal/domain"
)

var ErrInvalidRequest = errors.New("invalid_request")

type GalleryRepository interface {
	Create(ctx context.Context, item *domain.GalleryItem) error
	GetAll(ctx context.Context) ([]domain.GalleryItem, error)
	GetFeatured(ctx context.Context) ([]domain.GalleryItem, error)
}

type Service struct {
	items GalleryRepository
}

func NewService(items GalleryRepository) *Service {
	return &Service{items: items}
}

func (s *Service) Create(ctx context.Context, req CreateGalleryItemRequest) (*domain.GalleryItem, error) {
	if req.Title == "" || req.ImageURL == "" || req.ServiceType == "" {
		return nil, ErrInvalidRequest
	}

	item := &domain.GalleryItem{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		ServiceType: req.ServiceType,
		Featured:    req.Featured,
	}

	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) GetAll(ctx context.Context) ([]domain.GalleryItem, error) {
	return s.items.GetAll(ctx)
}

func (s *Service) GetFeatured(ctx context.Context) ([]domain.GalleryItem, error) {
	return s.items.GetFeatured(ctx)
}
