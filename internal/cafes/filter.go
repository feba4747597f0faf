package cafes

// AmbienceAll is the "don't care" value for the two ambience criteria.
const AmbienceAll = "all"

// FilterCriteria describes what a visitor is looking for. Zero values mean
// "don't care": empty/"all" for the ambience enums, false for the flags.
type FilterCriteria struct {
	QuietnessLevel       string
	BusynessLevel        string
	HasWifi              bool
	HasOutlets           bool
	AllowsLaptops        bool
	HasPayItForwardSeats bool
	HasBookableSeats     bool
}

// Matches reports whether a cafe satisfies every active criterion.
// Filtering is a pure conjunction of independent predicates; there is no
// partial matching or scoring.
func (f FilterCriteria) Matches(c *Cafe) bool {
	if f.QuietnessLevel != "" && f.QuietnessLevel != AmbienceAll &&
		c.QuietnessLevel != QuietnessLevel(f.QuietnessLevel) {
		return false
	}
	if f.BusynessLevel != "" && f.BusynessLevel != AmbienceAll &&
		c.BusynessLevel != BusynessLevel(f.BusynessLevel) {
		return false
	}
	if f.HasWifi && !c.Amenities.Wifi {
		return false
	}
	if f.HasOutlets && !c.Amenities.Outlets {
		return false
	}
	if f.AllowsLaptops && !c.Amenities.LaptopFriendly {
		return false
	}
	if f.HasPayItForwardSeats &&
		(c.PayItForwardSeats == nil || !c.PayItForwardSeats.Enabled || c.PayItForwardSeats.AvailableSeats == 0) {
		return false
	}
	if f.HasBookableSeats && (c.BookableSeats == nil || !c.BookableSeats.Enabled) {
		return false
	}
	return true
}
