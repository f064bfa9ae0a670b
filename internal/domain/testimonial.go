package domain

import "time"

type Testimonial struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Rating      float64   `json:"rating"`
	Comment     string    `json:"comment"`
	ServiceType string    `json:"service_type"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
}
