package portal

type AuthRequest struct {
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required"`
}

type AuthResponse struct {
	Message    string `json:"message"`
	CustomerID string `json:"customerId"`
}

// UpdateBookingRequest carries the only fields a customer may change on
// their own booking.
type UpdateBookingRequest struct {
	Address        *string `json:"address"`
	ProjectDetails *string `json:"projectDetails"`
	Phone          *string `json:"phone"`
}
