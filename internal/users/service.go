package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/TWO-MIX/mind-space/internal/shared/config"
	"github.com/TWO-MIX/mind-space/pkg/logger"
	"github.com/TWO-MIX/mind-space/pkg/metrics"
)

// Service interface defines the contract for visitor sessions and the
// seat-credit balance.
type Service interface {
	CreateSession(ctx context.Context, req CreateSessionRequest) (*SessionResponse, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*User, error)
	UseSeatCredits(ctx context.Context, userID uuid.UUID, amount float64) (*User, error)

	// Membership lookups for the ledgers
	IsMember(userID uuid.UUID) (bool, error)
	IsQualifiedMember(userID uuid.UUID) (bool, error)

	// Settlement operations used by the booking ledger
	SpendSeatCredits(userID uuid.UUID, amount float64) error
	RefundSeatCredits(userID uuid.UUID, amount float64) error
}

type service struct {
	repo     Repository
	defaults config.SessionConfig
	log      *logger.Logger
}

// NewService creates a new user service instance
func NewService(repo Repository, defaults config.SessionConfig) Service {
	return &service{
		repo:     repo,
		defaults: defaults,
		log:      logger.GetDefault(),
	}
}

// CreateSession opens a session for a new visitor. Eligibility flags come
// from the request when the caller carries a decision from the identity
// service, otherwise from configured defaults.
func (s *service) CreateSession(ctx context.Context, req CreateSessionRequest) (*SessionResponse, error) {
	user := &User{
		Name:              req.Name,
		Email:             req.Email,
		IsMember:          s.defaults.DefaultIsMember,
		IsQualifiedMember: s.defaults.DefaultIsQualified,
		SeatCredits:       float64(s.defaults.DefaultSeatCredits),
	}
	if user.Name == "" {
		user.Name = "Guest"
	}
	if req.IsMember != nil {
		user.IsMember = *req.IsMember
	}
	if req.IsQualifiedMember != nil {
		user.IsQualifiedMember = *req.IsQualifiedMember
	}
	if req.SeatCredits != nil {
		user.SeatCredits = *req.SeatCredits
	}

	session, err := s.repo.CreateUser(user)
	if err != nil {
		return nil, err
	}

	metrics.IncSessionCreated()
	s.log.LogSessionCreated(ctx, session.ID.String(), user.ID.String(), user.IsMember)

	return &SessionResponse{
		SessionID: session.ID.String(),
		User:      *user,
	}, nil
}

func (s *service) GetUser(ctx context.Context, userID uuid.UUID) (*User, error) {
	return s.repo.GetByID(userID)
}

// UseSeatCredits is the standalone credit-spend command (a member redeeming
// a pay-it-forward seat). The balance check and deduction are atomic.
func (s *service) UseSeatCredits(ctx context.Context, userID uuid.UUID, amount float64) (*User, error) {
	if err := s.repo.SpendSeatCredits(userID, amount); err != nil {
		return nil, err
	}
	return s.repo.GetByID(userID)
}

func (s *service) IsMember(userID uuid.UUID) (bool, error) {
	user, err := s.repo.GetByID(userID)
	if err != nil {
		return false, err
	}
	return user.IsMember, nil
}

func (s *service) IsQualifiedMember(userID uuid.UUID) (bool, error) {
	user, err := s.repo.GetByID(userID)
	if err != nil {
		return false, err
	}
	return user.IsQualifiedMember, nil
}

func (s *service) SpendSeatCredits(userID uuid.UUID, amount float64) error {
	return s.repo.SpendSeatCredits(userID, amount)
}

func (s *service) RefundSeatCredits(userID uuid.UUID, amount float64) error {
	return s.repo.RefundSeatCredits(userID, amount)
}
