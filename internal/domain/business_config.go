package domain

import "time"

// Known storefront variants sharing this backend.
const (
	BusinessChristmas = "christmas"
	BusinessRoofing   = "roofing"
	BusinessMechanic  = "mechanic"
	BusinessHandbook  = "handbook"
)

type BusinessConfig struct {
	ID             string    `json:"id"`
	BusinessType   string    `json:"business_type"`
	BusinessName   string    `json:"business_name"`
	Description    string    `json:"description,omitempty"`
	IsActive       bool      `json:"is_active"`
	PrimaryColor   string    `json:"primary_color"`
	SecondaryColor string    `json:"secondary_color"`
	ContactPhone   string    `json:"contact_phone,omitempty"`
	ContactEmail   string    `json:"contact_email,omitempty"`
	ServiceAreas   []string  `json:"service_areas,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
