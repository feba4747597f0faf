package payforward

// ClaimResponse reports whether the claim actually moved a credit; an
// ineligible claim returns claimed=false with the unchanged ledger status.
type ClaimResponse struct {
	Claimed bool   `json:"claimed"`
	Status  Status `json:"status"`
}
