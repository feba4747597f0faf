package bookings

// CreateBookingRequest reserves seats in one time slot.
type CreateBookingRequest struct {
	CafeID          string `json:"cafe_id" binding:"required"`
	SlotID          string `json:"slot_id" binding:"required"`
	Seats           int    `json:"seats" binding:"required,min=1"`
	PaymentMethod   string `json:"payment_method" binding:"required,payment_method"`
	SpecialRequests string `json:"special_requests" binding:"omitempty,max=500"`
}
