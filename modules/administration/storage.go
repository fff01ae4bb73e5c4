package administration

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meetspace/meetspace/pkg/pg"
)

// Proposal statuses. A proposal starts pending and is decided exactly once.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// Proposal is a request to establish a new meeting group.
type Proposal struct {
	ID              uuid.UUID
	GroupName       string
	Description     string
	ProposerID      uuid.UUID
	Status          string
	RejectionReason string
	DeciderID       uuid.UUID
	DecidedAt       time.Time
	CreatedAt       time.Time
}

type proposalStore interface {
	CreateProposal(ctx context.Context, p Proposal) error
	GetProposal(ctx context.Context, id uuid.UUID) (Proposal, error)
	ListProposals(ctx context.Context) ([]Proposal, error)
	UpdateProposal(ctx context.Context, p Proposal) error
}

type storage struct {
	db *pgxpool.Pool
}

func newStorage(db *pgxpool.Pool) *storage {
	return &storage{db: db}
}

func (s *storage) CreateProposal(ctx context.Context, p Proposal) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO administration_proposals
		 (id, group_name, description, proposer_id, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.GroupName, p.Description, p.ProposerID, p.Status, p.CreatedAt)
	return err
}

func (s *storage) GetProposal(ctx context.Context, id uuid.UUID) (Proposal, error) {
	row := s.db.QueryRow(ctx,
		`SELECT id, group_name, description, proposer_id, status,
		        COALESCE(rejection_reason, ''), COALESCE(decider_id, '00000000-0000-0000-0000-000000000000'::uuid),
		        COALESCE(decided_at, 'epoch'::timestamptz), created_at
		 FROM administration_proposals WHERE id = $1`, id)
	return scanProposal(row)
}

func (s *storage) ListProposals(ctx context.Context) ([]Proposal, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, group_name, description, proposer_id, status,
		        COALESCE(rejection_reason, ''), COALESCE(decider_id, '00000000-0000-0000-0000-000000000000'::uuid),
		        COALESCE(decided_at, 'epoch'::timestamptz), created_at
		 FROM administration_proposals ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var proposals []Proposal
	for rows.Next() {
		p, err := scanProposal(rows)
		if err != nil {
			return nil, err
		}
		proposals = append(proposals, p)
	}
	return proposals, rows.Err()
}

func (s *storage) UpdateProposal(ctx context.Context, p Proposal) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE administration_proposals
		 SET status = $2, rejection_reason = NULLIF($3, ''), decider_id = $4, decided_at = $5
		 WHERE id = $1`,
		p.ID, p.Status, p.RejectionReason, p.DeciderID, p.DecidedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProposalNotFound
	}
	return nil
}

func scanProposal(row pgx.Row) (Proposal, error) {
	var p Proposal
	err := row.Scan(&p.ID, &p.GroupName, &p.Description, &p.ProposerID, &p.Status,
		&p.RejectionReason, &p.DeciderID, &p.DecidedAt, &p.CreatedAt)
	if pg.IsNotFoundError(err) {
		return Proposal{}, ErrProposalNotFound
	}
	return p, err
}
