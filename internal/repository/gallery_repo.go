package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lightscape/internal/domain"
)

type GalleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

type galleryItemModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	Title       string    `gorm:"column:title"`
	Description *string   `gorm:"column:description"`
	ImageURL    string    `gorm:"column:image_url"`
	ServiceType string    `gorm:"column:service_type"`
	Featured    bool      `gorm:"column:featured"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (galleryItemModel) TableName() string { return "gallery_items" }

func toDomainGalleryItem(m galleryItemModel) domain.GalleryItem {
	item := domain.GalleryItem{
		ID:          m.ID,
		Title:       m.Title,
		ImageURL:    m.ImageURL,
		ServiceType: m.ServiceType,
		Featured:    m.Featured,
		CreatedAt:   m.CreatedAt,
	}
	if m.Description != nil {
		item.Description = *m.Description
	}
	return item
}

func (r *GalleryRepository) Create(ctx context.Context, item *domain.GalleryItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.CreatedAt = time.Now().UTC()

	m := galleryItemModel{
		ID:          item.ID,
		Title:       item.Title,
		ImageURL:    item.ImageURL,
		ServiceType: item.ServiceType,
		Featured:    item.Featured,
		CreatedAt:   item.CreatedAt,
	}
	if item.Description != "" {
		v := item.Description
		m.Description = &v
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *GalleryRepository) GetAll(ctx context.Context) ([]domain.GalleryItem, error) {
	return r.list(ctx, false)
}

func (r *GalleryRepository) GetFeatured(ctx context.Context) ([]domain.GalleryItem, error) {
	return r.list(ctx, true)
}

func (r *GalleryRepository) list(ctx context.Context, featuredOnly bool) ([]domain.GalleryItem, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if featuredOnly {
		q = q.Where("featured = ?", true)
	}

	var rows []galleryItemModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.GalleryItem, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainGalleryItem(m))
	}
	return out, nil
}
