package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lightscape/internal/domain"
)

var ErrMediaNotFound = errors.New("media item not found")

type MediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

type mediaItemModel struct {
	ID            string    `gorm:"column:id;primaryKey"`
	Filename      string    `gorm:"column:filename"`
	OriginalName  string    `gorm:"column:original_name"`
	MimeType      string    `gorm:"column:mime_type"`
	Size          int64     `gorm:"column:size"`
	URL           string    `gorm:"column:url"`
	Tags          string    `gorm:"column:tags;type:text"`
	BusinessTypes string    `gorm:"column:business_types;type:text"`
	UploadedBy    *string   `gorm:"column:uploaded_by"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (mediaItemModel) TableName() string { return "media_library" }

func toDomainMediaItem(m mediaItemModel) domain.MediaItem {
	item := domain.MediaItem{
		ID:           m.ID,
		Filename:     m.Filename,
		OriginalName: m.OriginalName,
		MimeType:     m.MimeType,
		Size:         m.Size,
		URL:          m.URL,
		CreatedAt:    m.CreatedAt,
	}
	if m.UploadedBy != nil {
		item.UploadedBy = *m.UploadedBy
	}
	_ = json.Unmarshal([]byte(m.Tags), &item.Tags)
	_ = json.Unmarshal([]byte(m.BusinessTypes), &item.BusinessTypes)
	return item
}

func (r *MediaRepository) Create(ctx context.Context, item *domain.MediaItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.CreatedAt = time.Now().UTC()

	tags, _ := json.Marshal(item.Tags)
	businessTypes, _ := json.Marshal(item.BusinessTypes)

	m := mediaItemModel{
		ID:            item.ID,
		Filename:      item.Filename,
		OriginalName:  item.OriginalName,
		MimeType:      item.MimeType,
		Size:          item.Size,
		URL:           item.URL,
		Tags:          string(tags),
		BusinessTypes: string(businessTypes),
		CreatedAt:     item.CreatedAt,
	}
	if item.UploadedBy != "" {
		v := item.UploadedBy
		m.UploadedBy = &v
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *MediaRepository) GetByID(ctx context.Context, id string) (*domain.MediaItem, error) {
	var m mediaItemModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, err
	}
	item := toDomainMediaItem(m)
	return &item, nil
}

func (r *MediaRepository) GetAll(ctx context.Context) ([]domain.MediaItem, error) {
	var rows []mediaItemModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.MediaItem, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainMediaItem(m))
	}
	return out, nil
}

// GetByBusinessType filters on the JSON-encoded business_types column. A
// LIKE over the quoted value works for both Postgres and SQLite text columns.
func (r *MediaRepository) GetByBusinessType(ctx context.Context, businessType string) ([]domain.MediaItem, error) {
	var rows []mediaItemModel
	err := r.db.WithContext(ctx).
		Where("business_types LIKE ?", `%"`+businessType+`"%`).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.MediaItem, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainMediaItem(m))
	}
	return out, nil
}

func (r *MediaRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&mediaItemModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMediaNotFound
	}
	return nil
}
