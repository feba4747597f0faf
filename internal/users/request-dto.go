package users

// CreateSessionRequest opens a visitor session. The pointer fields are
// eligibility decisions injected by the caller; absent fields fall back to
// configured defaults.
type CreateSessionRequest struct {
	Name              string   `json:"name" binding:"omitempty,max=100"`
	Email             string   `json:"email" binding:"omitempty,email"`
	IsMember          *bool    `json:"is_member" binding:"omitempty"`
	IsQualifiedMember *bool    `json:"is_qualified_member" binding:"omitempty"`
	SeatCredits       *float64 `json:"seat_credits" binding:"omitempty,min=0"`
}

// UseCreditsRequest spends part of the seat-credit balance.
type UseCreditsRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}
