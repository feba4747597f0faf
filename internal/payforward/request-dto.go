package payforward

// DonateRequest adds credits to the community pool. The storefront offers
// 1/3/5/10 coffee presets but any positive amount is valid.
type DonateRequest struct {
	Amount int `json:"amount" binding:"required,gt=0"`
}
