package bookings

import (
	"time"

	"github.com/google/uuid"

	"github.com/TWO-MIX/mind-space/internal/cafes"
)

// SeatBooking is one confirmed (or later cancelled) seat reservation.
// Records are append-only: a booking is created by a successful settlement
// and only its status ever changes afterwards.
type SeatBooking struct {
	ID              uuid.UUID      `json:"id"`
	CafeID          string         `json:"cafe_id"`
	CafeName        string         `json:"cafe_name"`
	UserID          uuid.UUID      `json:"user_id"`
	TimeSlot        cafes.TimeSlot `json:"time_slot"`
	SeatsBooked     int            `json:"seats_booked"`
	TotalCost       float64        `json:"total_cost"`
	PaymentMethod   PaymentMethod  `json:"payment_method"`
	BookingTime     time.Time      `json:"booking_time"`
	Status          Status         `json:"status"`
	CancelledAt     *time.Time     `json:"cancelled_at,omitempty"`
	SpecialRequests string         `json:"special_requests,omitempty"`
}

// IsConfirmed reports whether the booking is still active
func (b *SeatBooking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// Cancel marks the booking cancelled
func (b *SeatBooking) Cancel() {
	b.Status = StatusCancelled
	now := time.Now()
	b.CancelledAt = &now
}

// PaymentMethod selects how a booking is settled
type PaymentMethod string

const (
	PaymentCard    PaymentMethod = "card"
	PaymentCredits PaymentMethod = "credits"
)

func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentCard, PaymentCredits:
		return true
	}
	return false
}

func (p PaymentMethod) String() string {
	return string(p)
}
