package users

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository holds users and sessions in memory. Seat-credit mutations are
// check-then-write sequences, so they run under the store mutex.
type Repository interface {
	CreateUser(user *User) (*Session, error)
	GetByID(id uuid.UUID) (*User, error)
	GetBySessionID(sessionID uuid.UUID) (*User, error)
	SpendSeatCredits(userID uuid.UUID, amount float64) error
	RefundSeatCredits(userID uuid.UUID, amount float64) error
}

type repository struct {
	mu       sync.RWMutex
	users    map[uuid.UUID]*User
	sessions map[uuid.UUID]*Session
}

// NewRepository creates an empty in-memory user store
func NewRepository() Repository {
	return &repository{
		users:    make(map[uuid.UUID]*User),
		sessions: make(map[uuid.UUID]*Session),
	}
}

// CreateUser stores the user and opens a session for it.
func (r *repository) CreateUser(user *User) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = now

	stored := *user
	r.users[stored.ID] = &stored

	session := &Session{
		ID:        uuid.New(),
		UserID:    stored.ID,
		CreatedAt: now,
	}
	r.sessions[session.ID] = session

	out := *session
	return &out, nil
}

func (r *repository) GetByID(id uuid.UUID) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	out := *user
	return &out, nil
}

func (r *repository) GetBySessionID(sessionID uuid.UUID) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	user, ok := r.users[session.UserID]
	if !ok {
		return nil, ErrUserNotFound
	}
	out := *user
	return &out, nil
}

// SpendSeatCredits atomically checks and deducts a user's balance.
func (r *repository) SpendSeatCredits(userID uuid.UUID, amount float64) error {
	if amount <= 0 {
		return ErrInvalidCreditAmount
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	if user.SeatCredits < amount {
		return ErrInsufficientCredits
	}
	user.SeatCredits -= amount
	return nil
}

// RefundSeatCredits returns credits deducted by a settlement that had to be
// rolled back.
func (r *repository) RefundSeatCredits(userID uuid.UUID, amount float64) error {
	if amount <= 0 {
		return ErrInvalidCreditAmount
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	user.SeatCredits += amount
	return nil
}
