package payforward

// Status is the read model of the community credit ledger as one user sees
// it: the shared pool plus that user's claimed credits.
type Status struct {
	TotalCredits      int  `json:"total_credits"`
	UserCredits       int  `json:"user_credits"`
	IsQualifiedMember bool `json:"is_qualified_member"`
	HasDonated        bool `json:"has_donated"`
}
