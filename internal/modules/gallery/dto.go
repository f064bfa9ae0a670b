package gallery

type CreateGalleryItemRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl" binding:"required,url"`
	ServiceType string `json:"serviceType" binding:"required"`
	Featured    bool   `json:"featured"`
}
