package application

import (
	"errors"
	"fmt"

	"github.com/nsu-ctrg/grant-review/internal/domain/proposal"
	"github.com/nsu-ctrg/grant-review/internal/repository"
	"gorm.io/gorm"
)

// ProposalService handles proposal CRUD outside the lifecycle transitions.
// Content edits are allowed only before the final decision locks the row.
type ProposalService struct {
	Repos *repository.Repos
}

func NewProposalService(repos *repository.Repos) *ProposalService {
	return &ProposalService{Repos: repos}
}

// generateCode produces the next CTRG-<year>-NNN code for a cycle. The
// sequence comes from a prefix count, then the candidate is re-checked for
// uniqueness; a concurrent create bumps the suffix until a free slot is
// found. The unique index on proposal_code backs this up.
func (s *ProposalService) generateCode(tx *repository.Repos, cid uint) (string, error) {
	cyc, err := tx.Cycle.GetCycleByID(cid)
	if err != nil {
		return "", err
	}
	prefix := fmt.Sprintf("CTRG-%s-", cyc.CodeYear())

	count, err := tx.Proposal.CountByCodePrefix(prefix)
	if err != nil {
		return "", err
	}

	seq := int(count) + 1
	for {
		code := fmt.Sprintf("%s%03d", prefix, seq)
		exists, err := tx.Proposal.CodeExists(code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
		seq++
	}
}

// Create makes a new DRAFT proposal with a generated code.
func (s *ProposalService) Create(input proposal.CreateProposalDTO) (*proposal.Proposal, error) {
	var p proposal.Proposal

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		code, err := s.generateCode(tx, input.CID)
		if err != nil {
			return err
		}

		p = proposal.Proposal{
			ProposalCode:  code,
			Title:         input.Title,
			Abstract:      input.Abstract,
			PIName:        input.PIName,
			PIDepartment:  input.PIDepartment,
			PIEmail:       input.PIEmail,
			FundRequested: input.FundRequested,
			CID:           input.CID,
			Status:        proposal.StatusDraft,
		}
		if input.CoInvestigators != nil {
			p.CoInvestigators = *input.CoInvestigators
		}
		return tx.Proposal.CreateProposal(&p)
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProposalService) Get(pid uint) (*proposal.Proposal, error) {
	p, err := s.Repos.Proposal.GetProposalByID(pid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, proposal.ErrProposalNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *ProposalService) GetByCode(code string) (*proposal.Proposal, error) {
	p, err := s.Repos.Proposal.GetProposalByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, proposal.ErrProposalNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *ProposalService) List(params proposal.ListProposalsParams) ([]proposal.Proposal, error) {
	return s.Repos.Proposal.ListProposals(params)
}

// Update edits proposal content. A locked proposal rejects every edit.
func (s *ProposalService) Update(pid uint, input proposal.UpdateProposalDTO) (*proposal.Proposal, error) {
	var p proposal.Proposal

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		var err error
		p, err = tx.Proposal.GetProposalForUpdate(pid)
		if err != nil {
			return proposal.ErrProposalNotFound
		}
		if p.IsLocked {
			return proposal.ErrProposalLocked
		}

		if input.Title != nil {
			p.Title = *input.Title
		}
		if input.Abstract != nil {
			p.Abstract = *input.Abstract
		}
		if input.PIName != nil {
			p.PIName = *input.PIName
		}
		if input.PIDepartment != nil {
			p.PIDepartment = *input.PIDepartment
		}
		if input.PIEmail != nil {
			p.PIEmail = *input.PIEmail
		}
		if input.CoInvestigators != nil {
			p.CoInvestigators = *input.CoInvestigators
		}
		if input.FundRequested != nil {
			p.FundRequested = *input.FundRequested
		}
		return tx.Proposal.UpdateProposal(&p)
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// AttachFile records an uploaded object key on the proposal. The kind picks
// the slot; revised and response files normally arrive through
// LifecycleService.SubmitRevision instead.
func (s *ProposalService) AttachFile(pid uint, kind, objectKey string) (*proposal.Proposal, error) {
	var p proposal.Proposal

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		var err error
		p, err = tx.Proposal.GetProposalForUpdate(pid)
		if err != nil {
			return proposal.ErrProposalNotFound
		}
		if p.IsLocked {
			return proposal.ErrProposalLocked
		}

		switch kind {
		case "proposal":
			p.ProposalFileKey = objectKey
		case "template":
			p.TemplateFileKey = objectKey
		default:
			return fmt.Errorf("unknown file kind %q", kind)
		}
		return tx.Proposal.UpdateProposal(&p)
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete removes a proposal. Only drafts may be deleted.
func (s *ProposalService) Delete(pid uint) error {
	return s.Repos.ExecTx(func(tx *repository.Repos) error {
		p, err := tx.Proposal.GetProposalForUpdate(pid)
		if err != nil {
			return proposal.ErrProposalNotFound
		}
		if p.Status != proposal.StatusDraft {
			return proposal.NewInvalidState("delete", p.Status)
		}
		return tx.Proposal.DeleteProposal(pid)
	})
}
