package users

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestCreateUserOpensSession(t *testing.T) {
	repo := NewRepository()

	user := &User{Name: "Ada", IsMember: true, SeatCredits: 5}
	session, err := repo.CreateUser(user)
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if session.UserID != user.ID {
		t.Error("session should point at the created user")
	}

	bySession, err := repo.GetBySessionID(session.ID)
	if err != nil {
		t.Fatalf("GetBySessionID: %v", err)
	}
	if bySession.ID != user.ID || bySession.Name != "Ada" {
		t.Error("session lookup returned the wrong user")
	}
}

func TestGetBySessionIDUnknown(t *testing.T) {
	repo := NewRepository()

	if _, err := repo.GetBySessionID(uuid.New()); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("got %v, want ErrSessionNotFound", err)
	}
}

func TestSpendSeatCreditsDeductsBalance(t *testing.T) {
	repo := NewRepository()
	user := &User{Name: "Ada", SeatCredits: 4}
	if _, err := repo.CreateUser(user); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	if err := repo.SpendSeatCredits(user.ID, 2.5); err != nil {
		t.Fatalf("SpendSeatCredits: %v", err)
	}

	got, err := repo.GetByID(user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.SeatCredits != 1.5 {
		t.Errorf("balance = %v, want 1.5", got.SeatCredits)
	}
}

func TestSpendSeatCreditsInsufficientBalance(t *testing.T) {
	repo := NewRepository()
	user := &User{Name: "Ada", SeatCredits: 1}
	if _, err := repo.CreateUser(user); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	if err := repo.SpendSeatCredits(user.ID, 2); !errors.Is(err, ErrInsufficientCredits) {
		t.Fatalf("got %v, want ErrInsufficientCredits", err)
	}

	got, _ := repo.GetByID(user.ID)
	if got.SeatCredits != 1 {
		t.Errorf("balance = %v after rejected spend, want 1", got.SeatCredits)
	}
}

func TestSpendSeatCreditsRejectsBadAmounts(t *testing.T) {
	repo := NewRepository()
	user := &User{Name: "Ada", SeatCredits: 3}
	if _, err := repo.CreateUser(user); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	for _, amount := range []float64{0, -1} {
		if err := repo.SpendSeatCredits(user.ID, amount); !errors.Is(err, ErrInvalidCreditAmount) {
			t.Errorf("SpendSeatCredits(%v): got %v, want ErrInvalidCreditAmount", amount, err)
		}
	}
}

func TestRefundSeatCreditsRestoresBalance(t *testing.T) {
	repo := NewRepository()
	user := &User{Name: "Ada", SeatCredits: 4}
	if _, err := repo.CreateUser(user); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	if err := repo.SpendSeatCredits(user.ID, 3); err != nil {
		t.Fatalf("SpendSeatCredits: %v", err)
	}
	if err := repo.RefundSeatCredits(user.ID, 3); err != nil {
		t.Fatalf("RefundSeatCredits: %v", err)
	}

	got, _ := repo.GetByID(user.ID)
	if got.SeatCredits != 4 {
		t.Errorf("balance = %v after refund, want 4", got.SeatCredits)
	}
}

func TestSpendSeatCreditsUnknownUser(t *testing.T) {
	repo := NewRepository()

	if err := repo.SpendSeatCredits(uuid.New(), 1); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("got %v, want ErrUserNotFound", err)
	}
}
