package cafes

type CafeListResponse struct {
	Cafes []Cafe `json:"cafes"`
	Count int    `json:"count"`
}

type SlotListResponse struct {
	CafeID string     `json:"cafe_id"`
	Slots  []TimeSlot `json:"slots"`
	Count  int        `json:"count"`
}
