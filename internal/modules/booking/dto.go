package booking

import "lightscape/internal/domain"

type CreateBookingRequest struct {
	FullName       string `json:"fullName" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone" binding:"required,min=7"`
	Address        string `json:"address"`
	ServiceType    string `json:"serviceType" binding:"required"`
	PropertySize   string `json:"propertySize"`
	ProjectDetails string `json:"projectDetails"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AdminListResponse is the dashboard payload: every booking plus aggregate
// counts per lifecycle and payment status.
type AdminListResponse struct {
	Bookings        []domain.Booking `json:"bookings"`
	Total           int              `json:"total"`
	ByStatus        map[string]int64 `json:"byStatus"`
	ByPaymentStatus map[string]int64 `json:"byPaymentStatus"`
}
