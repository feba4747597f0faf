package bookings

// Cost prices a reservation in cash: hourly rate x seats x slot length.
func Cost(pricePerHour float64, seats int, durationHours float64) float64 {
	return pricePerHour * float64(seats) * durationHours
}

// CreditsNeeded prices the same reservation in seat credits. One credit
// covers one seat for one hour.
func CreditsNeeded(seats int, durationHours float64) float64 {
	return float64(seats) * durationHours
}
