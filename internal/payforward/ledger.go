package payforward

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrInvalidDonation = errors.New("donation amount must be positive")

// Ledger is the process-wide pay-it-forward pool plus each user's claimed
// credits. Donations and claims are read-check-then-write sequences, so
// every operation runs under the ledger mutex.
type Ledger struct {
	mu       sync.Mutex
	total    int
	accounts map[uuid.UUID]*account
}

type account struct {
	credits    int
	hasDonated bool
}

// NewLedger seeds the community pool.
func NewLedger(seedCredits int) *Ledger {
	if seedCredits < 0 {
		seedCredits = 0
	}
	return &Ledger{
		total:    seedCredits,
		accounts: make(map[uuid.UUID]*account),
	}
}

// Donate adds credits to the pool. There is deliberately no upper bound.
func (l *Ledger) Donate(userID uuid.UUID, amount int) (int, error) {
	if amount <= 0 {
		return 0, ErrInvalidDonation
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.total += amount
	l.account(userID).hasDonated = true
	return l.total, nil
}

// Claim moves one credit from the pool to the user. An ineligible or
// empty-pool claim is a silent no-op, not an error: the storefront disables
// the affordance, but a stale click must not corrupt state and must stay
// idempotent.
func (l *Ledger) Claim(userID uuid.UUID, qualified bool) (claimed bool, total int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !qualified || l.total <= 0 {
		return false, l.total
	}
	l.total--
	l.account(userID).credits++
	return true, l.total
}

// Balance reports the pool and the user's claimed credits.
func (l *Ledger) Balance(userID uuid.UUID) (total, userCredits int, hasDonated bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	acct, ok := l.accounts[userID]
	if !ok {
		return l.total, 0, false
	}
	return l.total, acct.credits, acct.hasDonated
}

// account fetches or lazily creates a user's ledger entry; callers hold the
// lock.
func (l *Ledger) account(userID uuid.UUID) *account {
	acct, ok := l.accounts[userID]
	if !ok {
		acct = &account{}
		l.accounts[userID] = acct
	}
	return acct
}
