package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"lightscape/internal/domain"
)

var (
	ErrConfigNotFound = errors.New("business config not found")
	ErrConfigExists   = errors.New("business config already exists")
)

type BusinessConfigRepository struct {
	db *gorm.DB
}

func NewBusinessConfigRepository(db *gorm.DB) *BusinessConfigRepository {
	return &BusinessConfigRepository{db: db}
}

type businessConfigModel struct {
	ID             string    `gorm:"column:id;primaryKey"`
	BusinessType   string    `gorm:"column:business_type;uniqueIndex"`
	BusinessName   string    `gorm:"column:business_name"`
	Description    *string   `gorm:"column:description"`
	IsActive       bool      `gorm:"column:is_active"`
	PrimaryColor   string    `gorm:"column:primary_color"`
	SecondaryColor string    `gorm:"column:secondary_color"`
	ContactPhone   *string   `gorm:"column:contact_phone"`
	ContactEmail   *string   `gorm:"column:contact_email"`
	ServiceAreas   string    `gorm:"column:service_areas;type:text"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (businessConfigModel) TableName() string { return "business_config" }

func toDomainBusinessConfig(m businessConfigModel) domain.BusinessConfig {
	cfg := domain.BusinessConfig{
		ID:             m.ID,
		BusinessType:   m.BusinessType,
		BusinessName:   m.BusinessName,
		IsActive:       m.IsActive,
		PrimaryColor:   m.PrimaryColor,
		SecondaryColor: m.SecondaryColor,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	if m.Description != nil {
		cfg.Description = *m.Description
	}
	if m.ContactPhone != nil {
		cfg.ContactPhone = *m.ContactPhone
	}
	if m.ContactEmail != nil {
		cfg.ContactEmail = *m.ContactEmail
	}
	_ = json.Unmarshal([]byte(m.ServiceAreas), &cfg.ServiceAreas)
	return cfg
}

func (r *BusinessConfigRepository) Create(ctx context.Context, cfg *domain.BusinessConfig) error {
	if cfg.ID == "" {
		cfg.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	cfg.CreatedAt = now
	cfg.UpdatedAt = now

	areas, _ := json.Marshal(cfg.ServiceAreas)
	m := businessConfigModel{
		ID:             cfg.ID,
		BusinessType:   cfg.BusinessType,
		BusinessName:   cfg.BusinessName,
		IsActive:       cfg.IsActive,
		PrimaryColor:   cfg.PrimaryColor,
		SecondaryColor: cfg.SecondaryColor,
		ServiceAreas:   string(areas),
		CreatedAt:      cfg.CreatedAt,
		UpdatedAt:      cfg.UpdatedAt,
	}
	if cfg.Description != "" {
		v := cfg.Description
		m.Description = &v
	}
	if cfg.ContactPhone != "" {
		v := cfg.ContactPhone
		m.ContactPhone = &v
	}
	if cfg.ContactEmail != "" {
		v := cfg.ContactEmail
		m.ContactEmail = &v
	}

	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrConfigExists
		}
		return err
	}
	return nil
}

func (r *BusinessConfigRepository) GetAll(ctx context.Context) ([]domain.BusinessConfig, error) {
	var rows []businessConfigModel
	if err := r.db.WithContext(ctx).Order("business_type ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.BusinessConfig, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainBusinessConfig(m))
	}
	return out, nil
}

func (r *BusinessConfigRepository) GetByType(ctx context.Context, businessType string) (*domain.BusinessConfig, error) {
	var m businessConfigModel
	err := r.db.WithContext(ctx).First(&m, "business_type = ?", businessType).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}
	cfg := toDomainBusinessConfig(m)
	return &cfg, nil
}

// UpdateByType patches the given columns and bumps updated_at.
func (r *BusinessConfigRepository) UpdateByType(ctx context.Context, businessType string, fields map[string]interface{}) (*domain.BusinessConfig, error) {
	fields["updated_at"] = time.Now().UTC()

	res := r.db.WithContext(ctx).
		Model(&businessConfigModel{}).
		Where("business_type = ?", businessType).
		Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrConfigNotFound
	}
	return r.GetByType(ctx, businessType)
}

// isUniqueViolation checks for a Postgres 23505 and falls back to string
// matching so the SQLite path behaves the same.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	s := err.Error()
	return strings.Contains(s, "UNIQUE constraint failed") ||
		strings.Contains(s, "duplicate key value violates unique constraint")
}
