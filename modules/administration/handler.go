package administration

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/meetspace/meetspace/pkg/problem"
)

type handler struct {
	svc      *Service
	problems *problem.Mapper
}

type proposalResponse struct {
	ID              string     `json:"id"`
	GroupName       string     `json:"group_name"`
	Description     string     `json:"description,omitempty"`
	ProposerID      string     `json:"proposer_id"`
	Status          string     `json:"status"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	DecidedAt       *time.Time `json:"decided_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func toProposalResponse(p Proposal) proposalResponse {
	out := proposalResponse{
		ID:              p.ID.String(),
		GroupName:       p.GroupName,
		Description:     p.Description,
		ProposerID:      p.ProposerID.String(),
		Status:          p.Status,
		RejectionReason: p.RejectionReason,
		CreatedAt:       p.CreatedAt,
	}
	if p.Status != StatusPending {
		decided := p.DecidedAt
		out.DecidedAt = &decided
	}
	return out
}

func (h *handler) propose(w http.ResponseWriter, r *http.Request) {
	var params ProposeParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		problem.Write(w, problem.BadRequest().WithDetail("Request body must be valid JSON.").WithInstance(r.URL.Path))
		return
	}

	proposal, err := h.svc.Propose(r.Context(), params)
	if err != nil {
		h.problems.Render(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toProposalResponse(proposal))
}

func (h *handler) accept(w http.ResponseWriter, r *http.Request) {
	id, ok := h.proposalID(w, r)
	if !ok {
		return
	}

	proposal, err := h.svc.Accept(r.Context(), id)
	if err != nil {
		h.problems.Render(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toProposalResponse(proposal))
}

func (h *handler) reject(w http.ResponseWriter, r *http.Request) {
	id, ok := h.proposalID(w, r)
	if !ok {
		return
	}

	var params struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		problem.Write(w, problem.BadRequest().WithDetail("Request body must be valid JSON.").WithInstance(r.URL.Path))
		return
	}

	proposal, err := h.svc.Reject(r.Context(), id, params.Reason)
	if err != nil {
		h.problems.Render(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toProposalResponse(proposal))
}

func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.proposalID(w, r)
	if !ok {
		return
	}

	proposal, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.problems.Render(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toProposalResponse(proposal))
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	proposals, err := h.svc.List(r.Context())
	if err != nil {
		h.problems.Render(w, r, err)
		return
	}

	out := make([]proposalResponse, 0, len(proposals))
	for _, p := range proposals {
		out = append(out, toProposalResponse(p))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

func (h *handler) proposalID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "proposalID"))
	if err != nil {
		problem.Write(w, problem.BadRequest().WithDetail("Proposal ID must be a valid UUID.").WithInstance(r.URL.Path))
		return uuid.Nil, false
	}
	return id, true
}
