package domain

import "time"

// User is an admin dashboard account. Customers never get one: the portal
// identifies them by booking email+phone only.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
