package domain

import "time"

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingInProgress BookingStatus = "in-progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentPaid       PaymentStatus = "paid"
	PaymentFailed     PaymentStatus = "failed"
	PaymentRefunded   PaymentStatus = "refunded"
)

// statusTransitions is the single source of truth for the booking lifecycle.
// Every mutation path (admin status setter, customer cancel) must go through
// CanTransition; completed and cancelled are terminal.
var statusTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:    {BookingConfirmed, BookingInProgress, BookingCancelled},
	BookingConfirmed:  {BookingInProgress, BookingCompleted, BookingCancelled},
	BookingInProgress: {BookingCompleted, BookingCancelled},
	BookingCompleted:  {},
	BookingCancelled:  {},
}

func ValidBookingStatus(s BookingStatus) bool {
	_, ok := statusTransitions[s]
	return ok
}

func CanTransition(from, to BookingStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Booking struct {
	ID               string        `json:"id"`
	FullName         string        `json:"full_name"`
	Email            string        `json:"email"`
	Phone            string        `json:"phone"`
	Address          string        `json:"address,omitempty"`
	ServiceType      string        `json:"service_type"`
	ProjectDetails   string        `json:"project_details,omitempty"`
	Status           BookingStatus `json:"status"`
	EstimatedPrice   float64       `json:"estimated_price"`
	PaymentStatus    PaymentStatus `json:"payment_status"`
	PaymentIntentID  string        `json:"payment_intent_id,omitempty"`
	PaidAmount       *float64      `json:"paid_amount,omitempty"`
	PaymentDate      *time.Time    `json:"payment_date,omitempty"`
	AutomatedBooking bool          `json:"automated_booking"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}
