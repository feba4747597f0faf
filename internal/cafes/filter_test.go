package cafes

import "testing"

func filterFixture() *Cafe {
	return &Cafe{
		ID:             "c1",
		Name:           "Test Cafe",
		QuietnessLevel: QuietnessQuiet,
		BusynessLevel:  BusynessLight,
		Amenities: Amenities{
			Wifi:           true,
			Outlets:        true,
			LaptopFriendly: false,
		},
		PayItForwardSeats: &PayItForwardSeats{
			Enabled:        true,
			TotalSeats:     5,
			AvailableSeats: 2,
		},
		BookableSeats: &BookableSeats{
			Enabled:      true,
			TotalSeats:   10,
			PricePerHour: 8,
		},
	}
}

func TestMatchesEmptyCriteriaMatchesEverything(t *testing.T) {
	cafe := filterFixture()
	if !(FilterCriteria{}).Matches(cafe) {
		t.Error("empty criteria should match any cafe")
	}
}

func TestMatchesAmbienceLevels(t *testing.T) {
	cafe := filterFixture()

	tests := []struct {
		name     string
		criteria FilterCriteria
		want     bool
	}{
		{"quietness match", FilterCriteria{QuietnessLevel: "quiet"}, true},
		{"quietness mismatch", FilterCriteria{QuietnessLevel: "bustling"}, false},
		{"quietness all", FilterCriteria{QuietnessLevel: AmbienceAll}, true},
		{"busyness match", FilterCriteria{BusynessLevel: "light"}, true},
		{"busyness mismatch", FilterCriteria{BusynessLevel: "packed"}, false},
		{"busyness all", FilterCriteria{BusynessLevel: AmbienceAll}, true},
	}

	for _, tt := range tests {
		if got := tt.criteria.Matches(cafe); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestMatchesAmenityFlags(t *testing.T) {
	cafe := filterFixture()

	if !(FilterCriteria{HasWifi: true}).Matches(cafe) {
		t.Error("wifi filter should match a cafe with wifi")
	}
	if !(FilterCriteria{HasOutlets: true}).Matches(cafe) {
		t.Error("outlets filter should match a cafe with outlets")
	}
	if (FilterCriteria{AllowsLaptops: true}).Matches(cafe) {
		t.Error("laptop filter should reject a cafe that is not laptop friendly")
	}
}

func TestMatchesPayItForwardRequiresAvailability(t *testing.T) {
	criteria := FilterCriteria{HasPayItForwardSeats: true}

	cafe := filterFixture()
	if !criteria.Matches(cafe) {
		t.Error("should match a cafe with available pay-it-forward seats")
	}

	cafe.PayItForwardSeats.AvailableSeats = 0
	if criteria.Matches(cafe) {
		t.Error("should reject a cafe whose pay-it-forward seats are all taken")
	}

	cafe.PayItForwardSeats = nil
	if criteria.Matches(cafe) {
		t.Error("should reject a cafe without pay-it-forward seats")
	}
}

func TestMatchesBookableRequiresEnabled(t *testing.T) {
	criteria := FilterCriteria{HasBookableSeats: true}

	cafe := filterFixture()
	if !criteria.Matches(cafe) {
		t.Error("should match a cafe with bookable seats enabled")
	}

	cafe.BookableSeats.Enabled = false
	if criteria.Matches(cafe) {
		t.Error("should reject a cafe with bookable seats disabled")
	}

	cafe.BookableSeats = nil
	if criteria.Matches(cafe) {
		t.Error("should reject a cafe without bookable seats")
	}
}

func TestMatchesIsAConjunction(t *testing.T) {
	cafe := filterFixture()

	// All active criteria satisfied.
	criteria := FilterCriteria{
		QuietnessLevel:       "quiet",
		BusynessLevel:        "light",
		HasWifi:              true,
		HasPayItForwardSeats: true,
		HasBookableSeats:     true,
	}
	if !criteria.Matches(cafe) {
		t.Error("cafe satisfying every active criterion should match")
	}

	// One failing criterion sinks the whole match.
	criteria.AllowsLaptops = true
	if criteria.Matches(cafe) {
		t.Error("one unsatisfied criterion should reject the cafe")
	}
}
