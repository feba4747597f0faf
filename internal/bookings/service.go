package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/TWO-MIX/mind-space/internal/cafes"
	"github.com/TWO-MIX/mind-space/pkg/logger"
	"github.com/TWO-MIX/mind-space/pkg/metrics"
)

// CatalogInventory is the slice of the catalog repository the settlement
// needs (interface to avoid depending on the full catalog surface).
type CatalogInventory interface {
	GetBookableSlot(cafeID, slotID string) (*cafes.BookableSlot, error)
	ReserveSeats(cafeID, slotID string, seats int) (*cafes.ReservedSlot, error)
	ReleaseSeats(cafeID, slotID string, seats int) error
}

// CreditAccounts is what the settlement needs from the user store:
// membership and the seat-credit balance.
type CreditAccounts interface {
	IsMember(userID uuid.UUID) (bool, error)
	SpendSeatCredits(userID uuid.UUID, amount float64) error
	RefundSeatCredits(userID uuid.UUID, amount float64) error
}

// Service interface defines the contract for the booking ledger
type Service interface {
	Book(ctx context.Context, userID uuid.UUID, req CreateBookingRequest) (*SeatBooking, error)
	GetBooking(ctx context.Context, bookingID, userID uuid.UUID) (*SeatBooking, error)
	ListUserBookings(ctx context.Context, userID uuid.UUID) []SeatBooking
	CancelBooking(ctx context.Context, bookingID, userID uuid.UUID) (*SeatBooking, error)
}

type service struct {
	repo     Repository
	catalog  CatalogInventory
	accounts CreditAccounts
	log      *logger.Logger
}

// NewService creates a new booking service instance
func NewService(repo Repository, catalog CatalogInventory, accounts CreditAccounts) Service {
	return &service{
		repo:     repo,
		catalog:  catalog,
		accounts: accounts,
		log:      logger.GetDefault(),
	}
}

// Book settles a seat reservation. Every precondition is re-validated here
// regardless of what the storefront disabled, and the effect is all or
// nothing: a rejection at any step leaves slot counters, the credit
// balance, and the booking list untouched.
func (s *service) Book(ctx context.Context, userID uuid.UUID, req CreateBookingRequest) (*SeatBooking, error) {
	method := PaymentMethod(req.PaymentMethod)
	if !method.IsValid() {
		return nil, s.reject(ctx, req.CafeID, userID, ErrInvalidPaymentMethod)
	}

	member, err := s.accounts.IsMember(userID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, s.reject(ctx, req.CafeID, userID, ErrNotAMember)
	}

	slot, err := s.catalog.GetBookableSlot(req.CafeID, req.SlotID)
	if err != nil {
		return nil, s.reject(ctx, req.CafeID, userID, err)
	}

	hours, err := slot.Slot.DurationHours()
	if err != nil {
		// The catalog is validated at load; reaching this is a bug.
		return nil, fmt.Errorf("corrupt slot %s: %w", req.SlotID, err)
	}

	creditsNeeded := CreditsNeeded(req.Seats, hours)
	totalCost := Cost(slot.PricePerHour, req.Seats, hours)

	// Settle credits before touching the seat counter so the failure path
	// with nothing to roll back is the common one.
	if method == PaymentCredits {
		if err := s.accounts.SpendSeatCredits(userID, creditsNeeded); err != nil {
			return nil, s.reject(ctx, req.CafeID, userID, err)
		}
	}

	reserved, err := s.catalog.ReserveSeats(req.CafeID, req.SlotID, req.Seats)
	if err != nil {
		if method == PaymentCredits {
			if refundErr := s.accounts.RefundSeatCredits(userID, creditsNeeded); refundErr != nil {
				s.log.WithError(refundErr).ErrorContext(ctx, "failed to refund seat credits after lost reservation",
					"user_id", userID.String())
			}
		}
		return nil, s.reject(ctx, req.CafeID, userID, err)
	}

	booking := &SeatBooking{
		ID:              uuid.New(),
		CafeID:          reserved.CafeID,
		CafeName:        reserved.CafeName,
		UserID:          userID,
		TimeSlot:        reserved.Slot,
		SeatsBooked:     req.Seats,
		TotalCost:       totalCost, // recorded even on the credits path, accounting only
		PaymentMethod:   method,
		BookingTime:     time.Now(),
		Status:          StatusConfirmed,
		SpecialRequests: req.SpecialRequests,
	}
	s.repo.Create(booking)

	metrics.IncBookingCreated(method.String())
	s.log.LogBookingCreated(ctx, booking.ID.String(), booking.CafeID, userID.String(), method.String())

	return booking, nil
}

func (s *service) GetBooking(ctx context.Context, bookingID, userID uuid.UUID) (*SeatBooking, error) {
	booking, err := s.repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, ErrNotOwner
	}
	return booking, nil
}

func (s *service) ListUserBookings(ctx context.Context, userID uuid.UUID) []SeatBooking {
	return s.repo.ListByUser(userID)
}

// CancelBooking marks a confirmed booking cancelled and returns its seats
// to the slot. Credits and cash are not refunded; the storefront never
// promised that.
func (s *service) CancelBooking(ctx context.Context, bookingID, userID uuid.UUID) (*SeatBooking, error) {
	existing, err := s.repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, ErrNotOwner
	}

	cancelled, err := s.repo.Cancel(bookingID)
	if err != nil {
		return nil, err
	}

	if err := s.catalog.ReleaseSeats(cancelled.CafeID, cancelled.TimeSlot.ID, cancelled.SeatsBooked); err != nil {
		s.log.WithError(err).ErrorContext(ctx, "failed to release seats for cancelled booking",
			"booking_id", cancelled.ID.String())
	}

	metrics.IncBookingCancelled()
	s.log.LogBookingCancelled(ctx, cancelled.ID.String(), userID.String())

	return cancelled, nil
}

// reject records the rejection in logs and metrics and hands the cause back
// unchanged so the controller can map it.
func (s *service) reject(ctx context.Context, cafeID string, userID uuid.UUID, err error) error {
	metrics.IncBookingRejected(rejectionReason(err))
	s.log.LogBookingRejected(ctx, cafeID, userID.String(), err.Error())
	return err
}

// rejectionReason buckets rejection causes into stable metric labels.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrNotAMember):
		return "not_a_member"
	case errors.Is(err, ErrInsufficientAvailability):
		return "insufficient_availability"
	case errors.Is(err, ErrInsufficientCredits):
		return "insufficient_credits"
	case errors.Is(err, ErrInvalidPaymentMethod):
		return "invalid_payment_method"
	case errors.Is(err, cafes.ErrSeatsNotBookable):
		return "not_bookable"
	case errors.Is(err, cafes.ErrCafeNotFound), errors.Is(err, cafes.ErrSlotNotFound):
		return "not_found"
	case errors.Is(err, cafes.ErrInvalidSeatCount):
		return "invalid_seat_count"
	default:
		return "other"
	}
}
