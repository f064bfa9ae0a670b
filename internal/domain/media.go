package domain

import "time"

// MediaItem is a row in the shared media library. The same library backs
// every storefront variant, so items carry the business types they apply to.
type MediaItem struct {
	ID            string    `json:"id"`
	Filename      string    `json:"filename"`
	OriginalName  string    `json:"original_name"`
	MimeType      string    `json:"mime_type"`
	Size          int64     `json:"size"`
	URL           string    `json:"url"`
	Tags          []string  `json:"tags,omitempty"`
	BusinessTypes []string  `json:"business_types,omitempty"`
	UploadedBy    string    `json:"uploaded_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
