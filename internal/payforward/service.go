package payforward

import (
	"context"

	"github.com/google/uuid"

	"github.com/TWO-MIX/mind-space/pkg/logger"
	"github.com/TWO-MIX/mind-space/pkg/metrics"
)

// MembershipDirectory answers qualification lookups without pulling the
// whole users package into the ledger (interface to avoid a circular
// dependency; the users service implements it).
type MembershipDirectory interface {
	IsQualifiedMember(userID uuid.UUID) (bool, error)
}

// Service interface defines the contract for the pay-it-forward ledger
type Service interface {
	Donate(ctx context.Context, userID uuid.UUID, amount int) (*Status, error)
	ClaimCredit(ctx context.Context, userID uuid.UUID) (claimed bool, status *Status, err error)
	Status(ctx context.Context, userID uuid.UUID) (*Status, error)
}

type service struct {
	ledger    *Ledger
	directory MembershipDirectory
	log       *logger.Logger
}

// NewService creates a new pay-it-forward service instance
func NewService(ledger *Ledger, directory MembershipDirectory) Service {
	return &service{
		ledger:    ledger,
		directory: directory,
		log:       logger.GetDefault(),
	}
}

func (s *service) Donate(ctx context.Context, userID uuid.UUID, amount int) (*Status, error) {
	total, err := s.ledger.Donate(userID, amount)
	if err != nil {
		return nil, err
	}

	metrics.AddCreditsDonated(amount)
	s.log.LogDonation(ctx, userID.String(), amount, total)

	return s.Status(ctx, userID)
}

// ClaimCredit applies the claim reducer. The qualification flag comes from
// the user record where the external eligibility decision was injected at
// session start.
func (s *service) ClaimCredit(ctx context.Context, userID uuid.UUID) (bool, *Status, error) {
	qualified, err := s.directory.IsQualifiedMember(userID)
	if err != nil {
		return false, nil, err
	}

	claimed, total := s.ledger.Claim(userID, qualified)
	if claimed {
		metrics.IncCreditClaimed()
	}
	s.log.LogCreditClaimed(ctx, userID.String(), claimed, total)

	status, err := s.Status(ctx, userID)
	return claimed, status, err
}

func (s *service) Status(ctx context.Context, userID uuid.UUID) (*Status, error) {
	qualified, err := s.directory.IsQualifiedMember(userID)
	if err != nil {
		return nil, err
	}

	total, userCredits, hasDonated := s.ledger.Balance(userID)
	return &Status{
		TotalCredits:      total,
		UserCredits:       userCredits,
		IsQualifiedMember: qualified,
		HasDonated:        hasDonated,
	}, nil
}
