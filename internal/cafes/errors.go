package cafes

import "errors"

var (
	ErrCafeNotFound             = errors.New("cafe not found")
	ErrSlotNotFound             = errors.New("time slot not found")
	ErrSeatsNotBookable         = errors.New("cafe does not offer bookable seats")
	ErrInvalidSeatCount         = errors.New("seat count must be at least 1")
	ErrInsufficientAvailability = errors.New("not enough seats available in the time slot")
)
