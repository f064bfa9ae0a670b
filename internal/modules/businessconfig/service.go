package businessconfig

import (
	"context"
	"encoding/json"
	"errors"

	"lightscape/internal/domain"
	"lightscape/internal/repository"
)

const (
	defaultPrimaryColor   = "#dc2626"
	defaultSecondaryColor = "#16a34a"
)

type ConfigRepository interface {
	Create(ctx context.Context, cfg *domain.BusinessConfig) error
	GetAll(ctx context.Context) ([]domain.BusinessConfig, error)
	GetByType(ctx context.Context, businessType string) (*domain.BusinessConfig, error)
	UpdateByType(ctx context.Context, businessType string, fields map[string]interface{}) (*domain.BusinessConfig, error)
}

type Service struct {
	configs ConfigRepository
}

func NewService(configs ConfigRepository) *Service {
	return &Service{configs: configs}
}

func (s *Service) Create(ctx context.Context, req CreateConfigRequest) (*domain.BusinessConfig, error) {
	if req.BusinessType == "" || req.BusinessName == "" {
		return nil, ErrInvalidRequest
	}

	cfg := &domain.BusinessConfig{
		BusinessType:   req.BusinessType,
		BusinessName:   req.BusinessName,
		Description:    req.Description,
		IsActive:       true,
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,
		ContactPhone:   req.ContactPhone,
		ContactEmail:   req.ContactEmail,
		ServiceAreas:   req.ServiceAreas,
	}
	if req.IsActive != nil {
		cfg.IsActive = *req.IsActive
	}
	if cfg.PrimaryColor == "" {
		cfg.PrimaryColor = defaultPrimaryColor
	}
	if cfg.SecondaryColor == "" {
		cfg.SecondaryColor = defaultSecondaryColor
	}

	if err := s.configs.Create(ctx, cfg); err != nil {
		if errors.Is(err, repository.ErrConfigExists) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return cfg, nil
}

func (s *Service) GetAll(ctx context.Context) ([]domain.BusinessConfig, error) {
	return s.configs.GetAll(ctx)
}

func (s *Service) GetByType(ctx context.Context, businessType string) (*domain.BusinessConfig, error) {
	cfg, err := s.configs.GetByType(ctx, businessType)
	if err != nil {
		if errors.Is(err, repository.ErrConfigNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return cfg, nil
}

func (s *Service) Update(ctx context.Context, businessType string, req UpdateConfigRequest) (*domain.BusinessConfig, error) {
	fields := map[string]interface{}{}
	if req.BusinessName != nil {
		fields["business_name"] = *req.BusinessName
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if req.PrimaryColor != nil {
		fields["primary_color"] = *req.PrimaryColor
	}
	if req.SecondaryColor != nil {
		fields["secondary_color"] = *req.SecondaryColor
	}
	if req.ContactPhone != nil {
		fields["contact_phone"] = *req.ContactPhone
	}
	if req.ContactEmail != nil {
		fields["contact_email"] = *req.ContactEmail
	}
	if req.ServiceAreas != nil {
		areas, _ := json.Marshal(*req.ServiceAreas)
		fields["service_areas"] = string(areas)
	}

	if len(fields) == 0 {
		return nil, ErrInvalidRequest
	}

	cfg, err := s.configs.UpdateByType(ctx, businessType, fields)
	if err != nil {
		if errors.Is(err, repository.ErrConfigNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return cfg, nil
}
