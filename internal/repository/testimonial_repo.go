package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lightscape/internal/domain"
)

type TestimonialRepository struct {
	db *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) *TestimonialRepository {
	return &TestimonialRepository{db: db}
}

type testimonialModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Location    string    `gorm:"column:location"`
	Rating      float64   `gorm:"column:rating"`
	Comment     string    `gorm:"column:comment"`
	ServiceType string    `gorm:"column:service_type"`
	Featured    bool      `gorm:"column:featured"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (testimonialModel) TableName() string { return "testimonials" }

func toDomainTestimonial(m testimonialModel) domain.Testimonial {
	return domain.Testimonial{
		ID:          m.ID,
		Name:        m.Name,
		Location:    m.Location,
		Rating:      m.Rating,
		Comment:     m.Comment,
		ServiceType: m.ServiceType,
		Featured:    m.Featured,
		CreatedAt:   m.CreatedAt,
	}
}

func (r *TestimonialRepository) Create(ctx context.Context, t *domain.Testimonial) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	t.CreatedAt = time.Now().UTC()

	m := testimonialModel{
		ID:          t.ID,
		Name:        t.Name,
		Location:    t.Location,
		Rating:      t.Rating,
		Comment:     t.Comment,
		ServiceType: t.ServiceType,
		Featured:    t.Featured,
		CreatedAt:   t.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *TestimonialRepository) GetAll(ctx context.Context) ([]domain.Testimonial, error) {
	return r.list(ctx, false)
}

func (r *TestimonialRepository) GetFeatured(ctx context.Context) ([]domain.Testimonial, error) {
	return r.list(ctx, true)
}

func (r *TestimonialRepository) list(ctx context.Context, featuredOnly bool) ([]domain.Testimonial, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if featuredOnly {
		q = q.Where("featured = ?", true)
	}

	var rows []testimonialModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Testimonial, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainTestimonial(m))
	}
	return out, nil
}
