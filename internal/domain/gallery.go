package domain

import "time"

type GalleryItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url"`
	ServiceType string    `json:"service_type"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
}
