package cafes

import (
	"fmt"
	"sync"
	"time"
)

// ReservedSlot is the snapshot a successful seat reservation hands back to
// the booking ledger: the slot after the decrement plus the pricing inputs.
type ReservedSlot struct {
	CafeID       string
	CafeName     string
	PricePerHour float64
	Slot         TimeSlot
}

// BookableSlot is the read-only view used to price a booking before any
// state changes.
type BookableSlot struct {
	CafeID       string
	CafeName     string
	PricePerHour float64
	Slot         TimeSlot
}

// Repository holds the catalog in memory. Cafes are immutable after load;
// slot availability counters mutate only through ReserveSeats/ReleaseSeats,
// serialized behind the repository mutex.
type Repository interface {
	List() []Cafe
	GetByID(id string) (*Cafe, error)
	UpcomingSlots(cafeID string, now time.Time) ([]TimeSlot, error)
	GetBookableSlot(cafeID, slotID string) (*BookableSlot, error)
	ReserveSeats(cafeID, slotID string, seats int) (*ReservedSlot, error)
	ReleaseSeats(cafeID, slotID string, seats int) error
}

type repository struct {
	mu    sync.RWMutex
	order []string
	cafes map[string]*Cafe
}

// NewRepository validates the supplied catalog and loads it. A malformed
// entry fails the whole load; transactions never see bad data.
func NewRepository(catalog []Cafe) (Repository, error) {
	r := &repository{
		order: make([]string, 0, len(catalog)),
		cafes: make(map[string]*Cafe, len(catalog)),
	}
	for i := range catalog {
		cafe := catalog[i]
		if err := cafe.Validate(); err != nil {
			return nil, fmt.Errorf("invalid catalog: %w", err)
		}
		if _, dup := r.cafes[cafe.ID]; dup {
			return nil, fmt.Errorf("invalid catalog: duplicate cafe ID %s", cafe.ID)
		}
		stored := cloneCafe(&cafe)
		r.order = append(r.order, cafe.ID)
		r.cafes[cafe.ID] = stored
	}
	return r, nil
}

// List returns catalog-order copies of every cafe.
func (r *repository) List() []Cafe {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Cafe, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *cloneCafe(r.cafes[id]))
	}
	return out
}

func (r *repository) GetByID(id string) (*Cafe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cafe, ok := r.cafes[id]
	if !ok {
		return nil, ErrCafeNotFound
	}
	return cloneCafe(cafe), nil
}

// UpcomingSlots returns the slots a visitor can actually book: start time
// strictly between now and now+24h, with seats left. This mirrors what the
// storefront shows, so a slot outside the window is simply absent.
func (r *repository) UpcomingSlots(cafeID string, now time.Time) ([]TimeSlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cafe, ok := r.cafes[cafeID]
	if !ok {
		return nil, ErrCafeNotFound
	}
	if cafe.BookableSeats == nil || !cafe.BookableSeats.Enabled {
		return nil, ErrSeatsNotBookable
	}

	horizon := now.Add(24 * time.Hour)
	var out []TimeSlot
	for _, slot := range cafe.BookableSeats.TimeSlots {
		if slot.AvailableSeats == 0 {
			continue
		}
		start, err := slot.StartsAt()
		if err != nil {
			// Validated at load; a parse failure here is a programming error.
			return nil, fmt.Errorf("slot %s: %w", slot.ID, err)
		}
		if start.After(now) && start.Before(horizon) {
			out = append(out, slot)
		}
	}
	return out, nil
}

func (r *repository) GetBookableSlot(cafeID, slotID string) (*BookableSlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cafe, slot, err := r.findSlot(cafeID, slotID)
	if err != nil {
		return nil, err
	}
	return &BookableSlot{
		CafeID:       cafe.ID,
		CafeName:     cafe.Name,
		PricePerHour: cafe.BookableSeats.PricePerHour,
		Slot:         *slot,
	}, nil
}

// ReserveSeats atomically checks and decrements a slot's availability.
// The check and the write happen under one lock so concurrent bookings of
// the same slot cannot drive the counter negative.
func (r *repository) ReserveSeats(cafeID, slotID string, seats int) (*ReservedSlot, error) {
	if seats < 1 {
		return nil, ErrInvalidSeatCount
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cafe, slot, err := r.findSlot(cafeID, slotID)
	if err != nil {
		return nil, err
	}
	if slot.AvailableSeats < seats {
		return nil, ErrInsufficientAvailability
	}
	slot.AvailableSeats -= seats

	return &ReservedSlot{
		CafeID:       cafe.ID,
		CafeName:     cafe.Name,
		PricePerHour: cafe.BookableSeats.PricePerHour,
		Slot:         *slot,
	}, nil
}

// ReleaseSeats returns previously reserved seats to a slot, used for
// cancellations and for rolling back a settlement that lost the race.
func (r *repository) ReleaseSeats(cafeID, slotID string, seats int) error {
	if seats < 1 {
		return ErrInvalidSeatCount
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, slot, err := r.findSlot(cafeID, slotID)
	if err != nil {
		return err
	}
	if slot.AvailableSeats+seats > slot.TotalSeats {
		return fmt.Errorf("releasing %d seats would exceed slot %s capacity", seats, slotID)
	}
	slot.AvailableSeats += seats
	return nil
}

// findSlot locates a bookable slot; callers hold the lock.
func (r *repository) findSlot(cafeID, slotID string) (*Cafe, *TimeSlot, error) {
	cafe, ok := r.cafes[cafeID]
	if !ok {
		return nil, nil, ErrCafeNotFound
	}
	if cafe.BookableSeats == nil || !cafe.BookableSeats.Enabled {
		return nil, nil, ErrSeatsNotBookable
	}
	for i := range cafe.BookableSeats.TimeSlots {
		if cafe.BookableSeats.TimeSlots[i].ID == slotID {
			return cafe, &cafe.BookableSeats.TimeSlots[i], nil
		}
	}
	return nil, nil, ErrSlotNotFound
}

// cloneCafe deep-copies a cafe so callers never hold references into the
// repository's mutable state.
func cloneCafe(c *Cafe) *Cafe {
	out := *c
	if c.Hours != nil {
		out.Hours = make(map[string]string, len(c.Hours))
		for k, v := range c.Hours {
			out.Hours[k] = v
		}
	}
	if c.Specialties != nil {
		out.Specialties = append([]string(nil), c.Specialties...)
	}
	if c.PayItForwardSeats != nil {
		p := *c.PayItForwardSeats
		out.PayItForwardSeats = &p
	}
	if c.BookableSeats != nil {
		b := *c.BookableSeats
		b.TimeSlots = append([]TimeSlot(nil), c.BookableSeats.TimeSlots...)
		out.BookableSeats = &b
	}
	return &out
}
