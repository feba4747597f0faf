package bookings

// BookingListResponse is the user's booking history plus the derived count
// of bookings that still hold seats.
type BookingListResponse struct {
	Bookings    []SeatBooking `json:"bookings"`
	Count       int           `json:"count"`
	ActiveCount int           `json:"active_count"`
}
