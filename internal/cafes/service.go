package cafes

import "time"

// Service interface defines the contract for catalog queries
type Service interface {
	ListCafes(criteria FilterCriteria) []Cafe
	GetCafe(id string) (*Cafe, error)
	UpcomingSlots(cafeID string) ([]TimeSlot, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new catalog service instance
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

// ListCafes filters the catalog with the criteria conjunction, preserving
// catalog order.
func (s *service) ListCafes(criteria FilterCriteria) []Cafe {
	all := s.repo.List()
	out := make([]Cafe, 0, len(all))
	for i := range all {
		if criteria.Matches(&all[i]) {
			out = append(out, all[i])
		}
	}
	return out
}

func (s *service) GetCafe(id string) (*Cafe, error) {
	return s.repo.GetByID(id)
}

func (s *service) UpcomingSlots(cafeID string) ([]TimeSlot, error) {
	return s.repo.UpcomingSlots(cafeID, s.now())
}
