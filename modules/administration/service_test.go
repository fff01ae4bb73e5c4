package administration

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meetspace/meetspace/pkg/authn"
	"github.com/meetspace/meetspace/pkg/execctx"
	"github.com/meetspace/meetspace/pkg/problem"
)

type fakeStore struct {
	proposals map[uuid.UUID]Proposal
}

func newFakeStore() *fakeStore {
	return &fakeStore{proposals: make(map[uuid.UUID]Proposal)}
}

func (f *fakeStore) CreateProposal(_ context.Context, p Proposal) error {
	f.proposals[p.ID] = p
	return nil
}

func (f *fakeStore) GetProposal(_ context.Context, id uuid.UUID) (Proposal, error) {
	p, ok := f.proposals[id]
	if !ok {
		return Proposal{}, ErrProposalNotFound
	}
	return p, nil
}

func (f *fakeStore) ListProposals(_ context.Context) ([]Proposal, error) {
	out := make([]Proposal, 0, len(f.proposals))
	for _, p := range f.proposals {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeStore) UpdateProposal(_ context.Context, p Proposal) error {
	if _, ok := f.proposals[p.ID]; !ok {
		return ErrProposalNotFound
	}
	f.proposals[p.ID] = p
	return nil
}

func newTestService() *Service {
	return &Service{
		store:   newFakeStore(),
		execctx: execctx.NewAccessor(),
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func authedCtx(userID uuid.UUID) context.Context {
	return authn.WithPrincipal(context.Background(), authn.NewPrincipal(
		authn.Claim{Type: authn.ClaimTypeSubject, Value: userID.String()},
	))
}

func TestServicePropose(t *testing.T) {
	t.Parallel()

	t.Run("files a pending proposal", func(t *testing.T) {
		t.Parallel()

		svc := newTestService()
		proposerID := uuid.New()

		proposal, err := svc.Propose(authedCtx(proposerID), ProposeParams{
			GroupName:   "Go meetups Berlin",
			Description: "Monthly Go user group",
		})
		require.NoError(t, err)

		assert.Equal(t, StatusPending, proposal.Status)
		assert.Equal(t, proposerID, proposal.ProposerID)
	})

	t.Run("empty group name yields field error", func(t *testing.T) {
		t.Parallel()

		svc := newTestService()
		_, err := svc.Propose(authedCtx(uuid.New()), ProposeParams{})

		var verr problem.ValidationErrors
		require.ErrorAs(t, err, &verr)
		assert.True(t, verr.Has("group_name"))
	})
}

func TestServiceDecide(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T) (*Service, Proposal) {
		t.Helper()
		svc := newTestService()
		proposal, err := svc.Propose(authedCtx(uuid.New()), ProposeParams{GroupName: "Go meetups"})
		require.NoError(t, err)
		return svc, proposal
	}

	t.Run("accept pending proposal", func(t *testing.T) {
		t.Parallel()

		svc, proposal := seed(t)
		deciderID := uuid.New()

		decided, err := svc.Accept(authedCtx(deciderID), proposal.ID)
		require.NoError(t, err)

		assert.Equal(t, StatusAccepted, decided.Status)
		assert.Equal(t, deciderID, decided.DeciderID)
		assert.False(t, decided.DecidedAt.IsZero())
	})

	t.Run("reject requires a reason", func(t *testing.T) {
		t.Parallel()

		svc, proposal := seed(t)
		_, err := svc.Reject(authedCtx(uuid.New()), proposal.ID, "")

		var verr problem.ValidationErrors
		require.ErrorAs(t, err, &verr)
		assert.True(t, verr.Has("reason"))
	})

	t.Run("reject with reason", func(t *testing.T) {
		t.Parallel()

		svc, proposal := seed(t)
		decided, err := svc.Reject(authedCtx(uuid.New()), proposal.ID, "Duplicate of an existing group.")
		require.NoError(t, err)

		assert.Equal(t, StatusRejected, decided.Status)
		assert.Equal(t, "Duplicate of an existing group.", decided.RejectionReason)
	})

	t.Run("deciding twice violates the rule", func(t *testing.T) {
		t.Parallel()

		svc, proposal := seed(t)
		_, err := svc.Accept(authedCtx(uuid.New()), proposal.ID)
		require.NoError(t, err)

		_, err = svc.Reject(authedCtx(uuid.New()), proposal.ID, "changed my mind")

		var rerr problem.RuleError
		require.ErrorAs(t, err, &rerr)
		assert.Equal(t, RuleAlreadyDecided, rerr.Code)
	})

	t.Run("unknown proposal", func(t *testing.T) {
		t.Parallel()

		svc := newTestService()
		_, err := svc.Accept(authedCtx(uuid.New()), uuid.New())
		assert.ErrorIs(t, err, ErrProposalNotFound)
	})

	t.Run("anonymous decider is rejected", func(t *testing.T) {
		t.Parallel()

		svc, proposal := seed(t)
		_, err := svc.Accept(context.Background(), proposal.ID)

		var p problem.Problem
		require.ErrorAs(t, err, &p)
		assert.Equal(t, 401, p.Status)
	})
}
