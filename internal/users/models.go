package users

import (
	"time"

	"github.com/google/uuid"
)

// User is a storefront visitor. Membership and pay-it-forward qualification
// are decided by an external eligibility service and injected at session
// start; this package never computes them.
type User struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	IsMember          bool      `json:"is_member"`
	IsQualifiedMember bool      `json:"is_qualified_member"`
	SeatCredits       float64   `json:"seat_credits"`
	CreatedAt         time.Time `json:"created_at"`
}

// Session ties an opaque session ID to a user for the lifetime of the
// process. There is no expiry; restarting the process drops everything.
type Session struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
