package bookings

import (
	"errors"

	"github.com/TWO-MIX/mind-space/internal/cafes"
	"github.com/TWO-MIX/mind-space/internal/users"
)

var (
	ErrNotAMember           = errors.New("booking requires membership")
	ErrInvalidPaymentMethod = errors.New("payment method must be card or credits")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrNotOwner             = errors.New("booking belongs to another user")
	ErrNotCancellable       = errors.New("only a confirmed booking can be cancelled")
)

// Rejections raised inside the collaborating stores keep their identity so
// errors.Is works across the settlement boundary.
var (
	ErrInsufficientAvailability = cafes.ErrInsufficientAvailability
	ErrInsufficientCredits      = users.ErrInsufficientCredits
)
