package cafes

import (
	"fmt"
	"math/rand"
	"time"
)

// slotTemplates are the six two-hour windows each bookable cafe offers per day.
var slotTemplates = [][2]string{
	{"08:00", "10:00"},
	{"10:00", "12:00"},
	{"12:00", "14:00"},
	{"14:00", "16:00"},
	{"16:00", "18:00"},
	{"18:00", "20:00"},
}

// generateTimeSlots builds the slots for the next 24 hours: today's windows
// whose start hour is still ahead, plus all of tomorrow's. Availability is
// randomized in [1, totalSeats] from the supplied source so a fixed seed
// yields a reproducible catalog.
func generateTimeSlots(cafeID string, totalSeats int, now time.Time, rng *rand.Rand) []TimeSlot {
	today := now.Format(slotDateLayout)
	tomorrow := now.Add(24 * time.Hour).Format(slotDateLayout)

	var slots []TimeSlot
	currentHour := now.Hour()
	for i, tpl := range slotTemplates {
		var slotHour int
		fmt.Sscanf(tpl[0], "%d", &slotHour)
		if slotHour > currentHour {
			slots = append(slots, TimeSlot{
				ID:             fmt.Sprintf("%s-%s-%d", cafeID, today, i),
				StartTime:      tpl[0],
				EndTime:        tpl[1],
				Date:           today,
				AvailableSeats: rng.Intn(totalSeats) + 1,
				TotalSeats:     totalSeats,
			})
		}
	}
	for i, tpl := range slotTemplates {
		slots = append(slots, TimeSlot{
			ID:             fmt.Sprintf("%s-%s-%d", cafeID, tomorrow, i),
			StartTime:      tpl[0],
			EndTime:        tpl[1],
			Date:           tomorrow,
			AvailableSeats: rng.Intn(totalSeats) + 1,
			TotalSeats:     totalSeats,
		})
	}
	return slots
}

// SeedCatalog builds the demo catalog. Seed zero picks a time-based seed;
// any other value makes the generated availability deterministic.
func SeedCatalog(seed int64, now time.Time) []Cafe {
	if seed == 0 {
		seed = now.UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	return []Cafe{
		{
			ID:             "1",
			Name:           "The Quiet Corner",
			Address:        "123 Peaceful St, Downtown",
			Image:          "https://images.unsplash.com/photo-1554118811-1e0d58224f24?w=800&h=600&fit=crop",
			Rating:         4.8,
			PriceRange:     "$$",
			QuietnessLevel: QuietnessVeryQuiet,
			BusynessLevel:  BusynessLight,
			Description:    "A serene cafe perfect for deep work and study sessions. Soft ambient music and comfortable seating create the ideal environment for productivity.",
			Amenities: Amenities{
				Wifi:           true,
				Outlets:        true,
				LaptopFriendly: true,
				Parking:        true,
				OutdoorSeating: false,
			},
			Hours: map[string]string{
				"Monday":    "7:00 AM - 9:00 PM",
				"Tuesday":   "7:00 AM - 9:00 PM",
				"Wednesday": "7:00 AM - 9:00 PM",
				"Thursday":  "7:00 AM - 9:00 PM",
				"Friday":    "7:00 AM - 10:00 PM",
				"Saturday":  "8:00 AM - 10:00 PM",
				"Sunday":    "8:00 AM - 8:00 PM",
			},
			Specialties:         []string{"Artisan Coffee", "Pastries", "Light Meals"},
			Distance:            "0.3 miles",
			PayItForwardCredits: 12,
			PayItForwardSeats: &PayItForwardSeats{
				Enabled:        true,
				TotalSeats:     8,
				AvailableSeats: 3,
				LastUpdated:    now.Add(-2 * time.Minute),
			},
			BookableSeats: &BookableSeats{
				Enabled:      true,
				TotalSeats:   12,
				PricePerHour: 8,
				TimeSlots:    generateTimeSlots("1", 12, now, rng),
			},
		},
		{
			ID:             "2",
			Name:           "Buzz Central",
			Address:        "456 Energy Ave, Midtown",
			Image:          "https://images.unsplash.com/photo-1501339847302-ac426a4a7cbb?w=800&h=600&fit=crop",
			Rating:         4.5,
			PriceRange:     "$",
			QuietnessLevel: QuietnessBustling,
			BusynessLevel:  BusynessBusy,
			Description:    "A vibrant, energetic cafe with a social atmosphere. Perfect for casual meetings, catching up with friends, or when you need the energy of a busy environment.",
			Amenities: Amenities{
				Wifi:           true,
				Outlets:        false,
				LaptopFriendly: false,
				Parking:        false,
				OutdoorSeating: true,
			},
			Hours: map[string]string{
				"Monday":    "6:00 AM - 11:00 PM",
				"Tuesday":   "6:00 AM - 11:00 PM",
				"Wednesday": "6:00 AM - 11:00 PM",
				"Thursday":  "6:00 AM - 11:00 PM",
				"Friday":    "6:00 AM - 12:00 AM",
				"Saturday":  "7:00 AM - 12:00 AM",
				"Sunday":    "7:00 AM - 10:00 PM",
			},
			Specialties:         []string{"Espresso Drinks", "Fresh Juices", "Breakfast Sandwiches"},
			Distance:            "0.7 miles",
			PayItForwardCredits: 8,
			BookableSeats: &BookableSeats{
				Enabled:      true,
				TotalSeats:   6,
				PricePerHour: 5,
				TimeSlots:    generateTimeSlots("2", 6, now, rng),
			},
		},
		{
			ID:             "3",
			Name:           "Balanced Brew",
			Address:        "789 Harmony Rd, Uptown",
			Image:          "https://images.unsplash.com/photo-1559925393-8be0ec4767c8?w=800&h=600&fit=crop",
			Rating:         4.6,
			PriceRange:     "$$",
			QuietnessLevel: QuietnessModerate,
			BusynessLevel:  BusynessModerate,
			Description:    "The perfect middle ground - not too quiet, not too loud. Great for both work and socializing, with flexible seating options.",
			Amenities: Amenities{
				Wifi:           true,
				Outlets:        true,
				LaptopFriendly: true,
				Parking:        true,
				OutdoorSeating: true,
			},
			Hours: map[string]string{
				"Monday":    "7:00 AM - 8:00 PM",
				"Tuesday":   "7:00 AM - 8:00 PM",
				"Wednesday": "7:00 AM - 8:00 PM",
				"Thursday":  "7:00 AM - 8:00 PM",
				"Friday":    "7:00 AM - 9:00 PM",
				"Saturday":  "8:00 AM - 9:00 PM",
				"Sunday":    "8:00 AM - 7:00 PM",
			},
			Specialties:         []string{"Specialty Lattes", "Homemade Soups", "Artisan Sandwiches"},
			Distance:            "1.2 miles",
			PayItForwardCredits: 15,
			PayItForwardSeats: &PayItForwardSeats{
				Enabled:        true,
				TotalSeats:     12,
				AvailableSeats: 7,
				LastUpdated:    now.Add(-5 * time.Minute),
			},
			BookableSeats: &BookableSeats{
				Enabled:      true,
				TotalSeats:   16,
				PricePerHour: 10,
				TimeSlots:    generateTimeSlots("3", 16, now, rng),
			},
		},
		{
			ID:             "4",
			Name:           "Whisper Woods Cafe",
			Address:        "321 Forest Lane, Suburbs",
			Image:          "https://images.unsplash.com/photo-1445116572660-236099ec97a0?w=800&h=600&fit=crop",
			Rating:         4.9,
			PriceRange:     "$$$",
			QuietnessLevel: QuietnessQuiet,
			BusynessLevel:  BusynessLight,
			Description:    "Nestled in a quiet neighborhood, this cafe offers a library-like atmosphere with premium coffee and gourmet treats.",
			Amenities: Amenities{
				Wifi:           true,
				Outlets:        true,
				LaptopFriendly: true,
				Parking:        true,
				OutdoorSeating: true,
			},
			Hours: map[string]string{
				"Monday":    "8:00 AM - 6:00 PM",
				"Tuesday":   "8:00 AM - 6:00 PM",
				"Wednesday": "8:00 AM - 6:00 PM",
				"Thursday":  "8:00 AM - 6:00 PM",
				"Friday":    "8:00 AM - 7:00 PM",
				"Saturday":  "9:00 AM - 7:00 PM",
				"Sunday":    "9:00 AM - 5:00 PM",
			},
			Specialties:         []string{"Single Origin Coffee", "French Pastries", "Organic Teas"},
			Distance:            "2.1 miles",
			PayItForwardCredits: 6,
			PayItForwardSeats: &PayItForwardSeats{
				Enabled:        true,
				TotalSeats:     6,
				AvailableSeats: 0,
				LastUpdated:    now.Add(-1 * time.Minute),
			},
			BookableSeats: &BookableSeats{
				Enabled:      true,
				TotalSeats:   8,
				PricePerHour: 12,
				TimeSlots:    generateTimeSlots("4", 8, now, rng),
			},
		},
		{
			ID:             "5",
			Name:           "Social Hub",
			Address:        "654 Community Blvd, Downtown",
			Image:          "https://images.unsplash.com/photo-1521017432531-fbd92d768814?w=800&h=600&fit=crop",
			Rating:         4.3,
			PriceRange:     "$",
			QuietnessLevel: QuietnessLively,
			BusynessLevel:  BusynessBusy,
			Description:    "A community-focused cafe with regular events, live music, and a welcoming atmosphere for meeting new people.",
			Amenities: Amenities{
				Wifi:           true,
				Outlets:        false,
				LaptopFriendly: false,
				Parking:        false,
				OutdoorSeating: true,
			},
			Hours: map[string]string{
				"Monday":    "7:00 AM - 10:00 PM",
				"Tuesday":   "7:00 AM - 10:00 PM",
				"Wednesday": "7:00 AM - 10:00 PM",
				"Thursday":  "7:00 AM - 11:00 PM",
				"Friday":    "7:00 AM - 12:00 AM",
				"Saturday":  "8:00 AM - 12:00 AM",
				"Sunday":    "8:00 AM - 9:00 PM",
			},
			Specialties:         []string{"Cold Brew", "Local Pastries", "Smoothie Bowls"},
			Distance:            "0.5 miles",
			PayItForwardCredits: 22,
			PayItForwardSeats: &PayItForwardSeats{
				Enabled:        true,
				TotalSeats:     15,
				AvailableSeats: 9,
				LastUpdated:    now.Add(-3 * time.Minute),
			},
			BookableSeats: &BookableSeats{
				Enabled:      true,
				TotalSeats:   10,
				PricePerHour: 6,
				TimeSlots:    generateTimeSlots("5", 10, now, rng),
			},
		},
		{
			ID:             "6",
			Name:           "Zen Garden Cafe",
			Address:        "987 Meditation Way, East Side",
			Image:          "https://images.unsplash.com/photo-1493857671505-72967e2e2760?w=800&h=600&fit=crop",
			Rating:         4.7,
			PriceRange:     "$$",
			QuietnessLevel: QuietnessVeryQuiet,
			BusynessLevel:  BusynessEmpty,
			Description:    "A minimalist cafe with zen-inspired decor, perfect for meditation, reading, or quiet contemplation over exceptional tea and coffee.",
			Amenities: Amenities{
				Wifi:           false,
				Outlets:        false,
				LaptopFriendly: false,
				Parking:        true,
				OutdoorSeating: true,
			},
			Hours: map[string]string{
				"Monday":    "9:00 AM - 5:00 PM",
				"Tuesday":   "9:00 AM - 5:00 PM",
				"Wednesday": "9:00 AM - 5:00 PM",
				"Thursday":  "9:00 AM - 5:00 PM",
				"Friday":    "9:00 AM - 6:00 PM",
				"Saturday":  "10:00 AM - 6:00 PM",
				"Sunday":    "Closed",
			},
			Specialties:         []string{"Matcha", "Herbal Teas", "Vegan Treats"},
			Distance:            "1.8 miles",
			PayItForwardCredits: 4,
		},
	}
}
