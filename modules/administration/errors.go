package administration

import "errors"

var (
	ErrProposalNotFound = errors.New("administration: proposal not found")
	ErrMissingPool      = errors.New("administration: database pool is required")
)

// RuleAlreadyDecided is the business rule code returned when accepting or
// rejecting a proposal that already left the pending state.
const RuleAlreadyDecided = "proposal_already_decided"
