package administration

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/meetspace/meetspace/pkg/execctx"
	"github.com/meetspace/meetspace/pkg/logger"
	"github.com/meetspace/meetspace/pkg/problem"
)

// Service implements the meeting group proposal workflow.
type Service struct {
	store   proposalStore
	execctx *execctx.Accessor
	log     *slog.Logger
}

// ProposeParams carries a new group proposal.
type ProposeParams struct {
	GroupName   string `json:"group_name"`
	Description string `json:"description"`
}

// Propose files a new pending proposal owned by the caller.
func (s *Service) Propose(ctx context.Context, params ProposeParams) (Proposal, error) {
	proposerID, ok := s.currentUser(ctx)
	if !ok {
		return Proposal{}, problem.Unauthorized()
	}

	verr := problem.NewValidationErrors()
	if params.GroupName == "" {
		verr.Add("group_name", "Group name cannot be empty.")
	}
	if !verr.IsEmpty() {
		return Proposal{}, verr
	}

	proposal := Proposal{
		ID:          uuid.New(),
		GroupName:   params.GroupName,
		Description: params.Description,
		ProposerID:  proposerID,
		Status:      StatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.store.CreateProposal(ctx, proposal); err != nil {
		return Proposal{}, err
	}

	s.log.InfoContext(ctx, "proposal filed",
		slog.String("proposal_id", proposal.ID.String()),
		logger.UserID(proposerID.String()))
	return proposal, nil
}

// Accept marks a pending proposal accepted. Deciding twice violates the
// already-decided rule.
func (s *Service) Accept(ctx context.Context, proposalID uuid.UUID) (Proposal, error) {
	return s.decide(ctx, proposalID, StatusAccepted, "")
}

// Reject marks a pending proposal rejected. A reason is required.
func (s *Service) Reject(ctx context.Context, proposalID uuid.UUID, reason string) (Proposal, error) {
	if reason == "" {
		verr := problem.NewValidationErrors()
		verr.Add("reason", "Rejection reason cannot be empty.")
		return Proposal{}, verr
	}
	return s.decide(ctx, proposalID, StatusRejected, reason)
}

// Get loads one proposal.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (Proposal, error) {
	return s.store.GetProposal(ctx, id)
}

// List returns all proposals ordered by creation time.
func (s *Service) List(ctx context.Context) ([]Proposal, error) {
	return s.store.ListProposals(ctx)
}

func (s *Service) decide(ctx context.Context, proposalID uuid.UUID, status, reason string) (Proposal, error) {
	deciderID, ok := s.currentUser(ctx)
	if !ok {
		return Proposal{}, problem.Unauthorized()
	}

	proposal, err := s.store.GetProposal(ctx, proposalID)
	if err != nil {
		return Proposal{}, err
	}
	if proposal.Status != StatusPending {
		return Proposal{}, problem.NewRuleError(RuleAlreadyDecided, "The proposal has already been decided.")
	}

	proposal.Status = status
	proposal.RejectionReason = reason
	proposal.DeciderID = deciderID
	proposal.DecidedAt = time.Now().UTC()

	if err := s.store.UpdateProposal(ctx, proposal); err != nil {
		return Proposal{}, err
	}

	s.log.InfoContext(ctx, "proposal decided",
		slog.String("proposal_id", proposal.ID.String()),
		slog.String("status", status),
		logger.UserID(deciderID.String()))
	return proposal, nil
}

func (s *Service) currentUser(ctx context.Context) (uuid.UUID, bool) {
	raw, ok := s.execctx.CurrentUserID(ctx)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
