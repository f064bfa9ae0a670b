package testimonial

type CreateTestimonialRequest struct {
	Name        string  `json:"name" binding:"required"`
	Location    string  `json:"location" binding:"required"`
	Rating      float64 `json:"rating" binding:"required,gte=1,lte=5"`
	Comment     string  `json:"comment" binding:"required"`
	ServiceType string  `json:"serviceType" binding:"required"`
}
