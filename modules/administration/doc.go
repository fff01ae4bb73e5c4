// Package administration is the governance bounded context: proposals to
// establish new meeting groups, decided once as accepted or rejected.
// Rejection requires a reason; deciding an already-decided proposal violates
// the proposal_already_decided rule.
package administration
