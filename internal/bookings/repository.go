package bookings

import (
	"sync"

	"github.com/google/uuid"
)

// Repository stores bookings in memory, append-ordered per user.
type Repository interface {
	Create(booking *SeatBooking)
	GetByID(id uuid.UUID) (*SeatBooking, error)
	ListByUser(userID uuid.UUID) []SeatBooking
	Cancel(id uuid.UUID) (*SeatBooking, error)
}

type repository struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]*SeatBooking
	byUser map[uuid.UUID][]uuid.UUID
}

// NewRepository creates an empty in-memory booking store
func NewRepository() Repository {
	return &repository{
		byID:   make(map[uuid.UUID]*SeatBooking),
		byUser: make(map[uuid.UUID][]uuid.UUID),
	}
}

func (r *repository) Create(booking *SeatBooking) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *booking
	r.byID[stored.ID] = &stored
	r.byUser[stored.UserID] = append(r.byUser[stored.UserID], stored.ID)
}

func (r *repository) GetByID(id uuid.UUID) (*SeatBooking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.byID[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	out := *booking
	return &out, nil
}

func (r *repository) ListByUser(userID uuid.UUID) []SeatBooking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byUser[userID]
	out := make([]SeatBooking, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.byID[id])
	}
	return out
}

// Cancel flips a confirmed booking to cancelled. The status check and the
// write are atomic so a double cancel cannot release seats twice.
func (r *repository) Cancel(id uuid.UUID) (*SeatBooking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.byID[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	if !booking.Status.CanBeCancelled() {
		return nil, ErrNotCancellable
	}
	booking.Cancel()
	out := *booking
	return &out, nil
}
