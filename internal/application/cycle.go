package application

import (
	"errors"

	"github.com/nsu-ctrg/grant-review/internal/domain/cycle"
	"github.com/nsu-ctrg/grant-review/internal/repository"
	"gorm.io/gorm"
)

var ErrCycleNotFound = errors.New("grant cycle not found")

type CycleService struct {
	Repos *repository.Repos
}

func NewCycleService(repos *repository.Repos) *CycleService {
	return &CycleService{Repos: repos}
}

func (s *CycleService) Create(input cycle.CreateCycleDTO) (*cycle.GrantCycle, error) {
	c := cycle.GrantCycle{
		Name:                    input.Name,
		Year:                    input.Year,
		StartDate:               input.StartDate,
		EndDate:                 input.EndDate,
		Stage1ReviewStart:       input.Stage1ReviewStart,
		Stage1ReviewEnd:         input.Stage1ReviewEnd,
		Stage2ReviewStart:       input.Stage2ReviewStart,
		Stage2ReviewEnd:         input.Stage2ReviewEnd,
		RevisionWindowDays:      7,
		AcceptanceThreshold:     70.0,
		MaxReviewersPerProposal: 2,
		IsActive:                true,
	}
	if input.RevisionWindowDays != nil {
		c.RevisionWindowDays = *input.RevisionWindowDays
	}
	if input.AcceptanceThreshold != nil {
		c.AcceptanceThreshold = *input.AcceptanceThreshold
	}
	if input.MaxReviewersPerProposal != nil {
		c.MaxReviewersPerProposal = *input.MaxReviewersPerProposal
	}
	if err := s.Repos.Cycle.CreateCycle(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *CycleService) Get(cid uint) (*cycle.GrantCycle, error) {
	c, err := s.Repos.Cycle.GetCycleByID(cid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCycleNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (s *CycleService) List(activeOnly bool) ([]cycle.GrantCycle, error) {
	if activeOnly {
		return s.Repos.Cycle.ListActiveCycles()
	}
	return s.Repos.Cycle.ListCycles()
}

// Update changes cycle settings. Threshold and window changes apply to
// future decisions only; recorded decisions keep their snapshots.
func (s *CycleService) Update(cid uint, input cycle.UpdateCycleDTO) (*cycle.GrantCycle, error) {
	c, err := s.Repos.Cycle.GetCycleByID(cid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCycleNotFound
		}
		return nil, err
	}
	if input.Name != nil {
		c.Name = *input.Name
	}
	if input.StartDate != nil {
		c.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		c.EndDate = *input.EndDate
	}
	if input.Stage1ReviewStart != nil {
		c.Stage1ReviewStart = input.Stage1ReviewStart
	}
	if input.Stage1ReviewEnd != nil {
		c.Stage1ReviewEnd = input.Stage1ReviewEnd
	}
	if input.Stage2ReviewStart != nil {
		c.Stage2ReviewStart = input.Stage2ReviewStart
	}
	if input.Stage2ReviewEnd != nil {
		c.Stage2ReviewEnd = input.Stage2ReviewEnd
	}
	if input.RevisionWindowDays != nil {
		c.RevisionWindowDays = *input.RevisionWindowDays
	}
	if input.AcceptanceThreshold != nil {
		c.AcceptanceThreshold = *input.AcceptanceThreshold
	}
	if input.MaxReviewersPerProposal != nil {
		c.MaxReviewersPerProposal = *input.MaxReviewersPerProposal
	}
	if input.IsActive != nil {
		c.IsActive = *input.IsActive
	}
	if err := s.Repos.Cycle.UpdateCycle(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *CycleService) CountProposals(cid uint) (int64, error) {
	return s.Repos.Cycle.CountProposals(cid)
}
