package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{BookingPending, BookingConfirmed, true},
		{BookingPending, BookingCancelled, true},
		{BookingPending, BookingInProgress, true},
		{BookingPending, BookingCompleted, false},
		{BookingConfirmed, BookingInProgress, true},
		{BookingConfirmed, BookingCompleted, true},
		{BookingConfirmed, BookingCancelled, true},
		{BookingConfirmed, BookingPending, false},
		{BookingInProgress, BookingCompleted, true},
		{BookingInProgress, BookingCancelled, true},
		{BookingInProgress, BookingConfirmed, false},
		{BookingCompleted, BookingCancelled, false},
		{BookingCancelled, BookingPending, false},
		{BookingCancelled, BookingConfirmed, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, CanTransition(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestValidBookingStatus(t *testing.T) {
	for _, s := range []BookingStatus{
		BookingPending, BookingConfirmed, BookingInProgress, BookingCompleted, BookingCancelled,
	} {
		assert.True(t, ValidBookingStatus(s), string(s))
	}

	assert.False(t, ValidBookingStatus("shipped"))
	assert.False(t, ValidBookingStatus(""))
}
