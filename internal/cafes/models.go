package cafes

import (
	"fmt"
	"time"
)

// QuietnessLevel describes the ambient noise of a cafe
type QuietnessLevel string

const (
	QuietnessVeryQuiet QuietnessLevel = "very-quiet"
	QuietnessQuiet     QuietnessLevel = "quiet"
	QuietnessModerate  QuietnessLevel = "moderate"
	QuietnessLively    QuietnessLevel = "lively"
	QuietnessBustling  QuietnessLevel = "bustling"
)

func (q QuietnessLevel) IsValid() bool {
	switch q {
	case QuietnessVeryQuiet, QuietnessQuiet, QuietnessModerate, QuietnessLively, QuietnessBustling:
		return true
	}
	return false
}

func (q QuietnessLevel) String() string {
	return string(q)
}

// BusynessLevel describes how crowded a cafe currently runs
type BusynessLevel string

const (
	BusynessEmpty    BusynessLevel = "empty"
	BusynessLight    BusynessLevel = "light"
	BusynessModerate BusynessLevel = "moderate"
	BusynessBusy     BusynessLevel = "busy"
	BusynessPacked   BusynessLevel = "packed"
)

func (b BusynessLevel) IsValid() bool {
	switch b {
	case BusynessEmpty, BusynessLight, BusynessModerate, BusynessBusy, BusynessPacked:
		return true
	}
	return false
}

func (b BusynessLevel) String() string {
	return string(b)
}

// Amenities holds the boolean amenity flags of a cafe
type Amenities struct {
	Wifi           bool `json:"wifi"`
	Outlets        bool `json:"outlets"`
	LaptopFriendly bool `json:"laptop_friendly"`
	Parking        bool `json:"parking"`
	OutdoorSeating bool `json:"outdoor_seating"`
}

// PayItForwardSeats describes the donated community seats of a cafe
type PayItForwardSeats struct {
	Enabled        bool      `json:"enabled"`
	TotalSeats     int       `json:"total_seats"`
	AvailableSeats int       `json:"available_seats"`
	LastUpdated    time.Time `json:"last_updated"`
}

// TimeSlot is a bookable window of seats on a calendar date.
// Times are wall-clock "HH:MM", dates are "YYYY-MM-DD".
type TimeSlot struct {
	ID             string `json:"id"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	Date           string `json:"date"`
	AvailableSeats int    `json:"available_seats"`
	TotalSeats     int    `json:"total_seats"`
}

const (
	slotTimeLayout = "15:04"
	slotDateLayout = "2006-01-02"
)

// DurationHours returns the slot length in fractional hours (90 minutes => 1.5).
func (t TimeSlot) DurationHours() (float64, error) {
	start, err := time.Parse(slotTimeLayout, t.StartTime)
	if err != nil {
		return 0, fmt.Errorf("invalid start time %q: %w", t.StartTime, err)
	}
	end, err := time.Parse(slotTimeLayout, t.EndTime)
	if err != nil {
		return 0, fmt.Errorf("invalid end time %q: %w", t.EndTime, err)
	}
	d := end.Sub(start)
	if d <= 0 {
		return 0, fmt.Errorf("slot %s ends at or before it starts", t.ID)
	}
	return d.Hours(), nil
}

// StartsAt resolves the slot's date and start time into a local timestamp.
func (t TimeSlot) StartsAt() (time.Time, error) {
	return time.ParseInLocation(slotDateLayout+" "+slotTimeLayout, t.Date+" "+t.StartTime, time.Local)
}

// BookableSeats describes the paid reservation inventory of a cafe
type BookableSeats struct {
	Enabled      bool       `json:"enabled"`
	TotalSeats   int        `json:"total_seats"`
	PricePerHour float64    `json:"price_per_hour"`
	TimeSlots    []TimeSlot `json:"time_slots"`
}

// Cafe is an immutable catalog record; only slot and pay-it-forward seat
// counters mutate after load, and only through the repository.
type Cafe struct {
	ID                  string             `json:"id"`
	Name                string             `json:"name"`
	Address             string             `json:"address"`
	Image               string             `json:"image"`
	Rating              float64            `json:"rating"`
	PriceRange          string             `json:"price_range"`
	QuietnessLevel      QuietnessLevel     `json:"quietness_level"`
	BusynessLevel       BusynessLevel      `json:"busyness_level"`
	Description         string             `json:"description"`
	Amenities           Amenities          `json:"amenities"`
	Hours               map[string]string  `json:"hours"`
	Specialties         []string           `json:"specialties"`
	Distance            string             `json:"distance"`
	PayItForwardCredits int                `json:"pay_it_forward_credits"`
	PayItForwardSeats   *PayItForwardSeats `json:"pay_it_forward_seats,omitempty"`
	BookableSeats       *BookableSeats     `json:"bookable_seats,omitempty"`
}

// Validate rejects malformed catalog entries at load time so transactions
// never have to deal with them.
func (c *Cafe) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("cafe has no ID")
	}
	if c.Name == "" {
		return fmt.Errorf("cafe %s has no name", c.ID)
	}
	if !c.QuietnessLevel.IsValid() {
		return fmt.Errorf("cafe %s: invalid quietness level %q", c.ID, c.QuietnessLevel)
	}
	if !c.BusynessLevel.IsValid() {
		return fmt.Errorf("cafe %s: invalid busyness level %q", c.ID, c.BusynessLevel)
	}
	if p := c.PayItForwardSeats; p != nil {
		if p.TotalSeats < 0 {
			return fmt.Errorf("cafe %s: negative pay-it-forward seat count", c.ID)
		}
		if p.AvailableSeats < 0 || p.AvailableSeats > p.TotalSeats {
			return fmt.Errorf("cafe %s: pay-it-forward availability %d out of range [0,%d]",
				c.ID, p.AvailableSeats, p.TotalSeats)
		}
	}
	if b := c.BookableSeats; b != nil {
		if b.TotalSeats < 0 {
			return fmt.Errorf("cafe %s: negative bookable seat count", c.ID)
		}
		if b.Enabled && b.PricePerHour <= 0 {
			return fmt.Errorf("cafe %s: bookable seats need a positive hourly price", c.ID)
		}
		seen := make(map[string]bool, len(b.TimeSlots))
		for _, slot := range b.TimeSlots {
			if slot.ID == "" {
				return fmt.Errorf("cafe %s: time slot has no ID", c.ID)
			}
			if seen[slot.ID] {
				return fmt.Errorf("cafe %s: duplicate time slot %s", c.ID, slot.ID)
			}
			seen[slot.ID] = true
			if slot.TotalSeats < 0 {
				return fmt.Errorf("cafe %s: slot %s has negative seat count", c.ID, slot.ID)
			}
			if slot.AvailableSeats < 0 || slot.AvailableSeats > slot.TotalSeats {
				return fmt.Errorf("cafe %s: slot %s availability %d out of range [0,%d]",
					c.ID, slot.ID, slot.AvailableSeats, slot.TotalSeats)
			}
			if _, err := slot.StartsAt(); err != nil {
				return fmt.Errorf("cafe %s: slot %s: %w", c.ID, slot.ID, err)
			}
			if _, err := slot.DurationHours(); err != nil {
				return fmt.Errorf("cafe %s: slot %s: %w", c.ID, slot.ID, err)
			}
		}
	}
	return nil
}
