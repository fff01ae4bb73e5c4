package meetings

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

type meetingResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	Capacity  int       `json:"capacity"`
	CreatorID string    `json:"creator_id"`
	CreatedAt time.Time `json:"created_at"`
}

func toMeetingResponse(m Meeting) meetingResponse {
	return meetingResponse{
		ID:        m.ID.String(),
		Title:     m.Title,
		StartsAt:  m.StartsAt,
		EndsAt:    m.EndsAt,
		Capacity:  m.Capacity,
		CreatorID: m.CreatorID.String(),
		CreatedAt: m.CreatedAt,
	}
}

func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	var params CreateParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		problem.Write(w, problem.BadRequest().WithDetail("Request body must be valid JSON.").WithInstance(r.URL.Path))
		return
	}

	meeting, err := h.svc.Create(r.Context(), params)
	if err != nil {
		h.problems.Render(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toMeetingResponse(meeting))
}

func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.meetingID(w, r)
	if !ok {
		return
	}

	meeting, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.problems.Render(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toMeetingResponse(meeting))
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	meetings, err := h.svc.List(r.Context())
	if err != nil {
		h.problems.Render(w, r, err)
		return
	}

	out := make([]meetingResponse, 0, len(meetings))
	for _, m := range meetings {
		out = append(out, toMeetingResponse(m))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

func (h *handler) join(w http.ResponseWriter, r *http.Request) {
	id, ok := h.meetingID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Join(r.Context(), id); err != nil {
		h.problems.Render(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) leave(w http.ResponseWriter, r *http.Request) {
	id, ok := h.meetingID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Leave(r.Context(), id); err != nil {
		h.problems.Render(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.meetingID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.problems.Render(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) meetingID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "meetingID"))
	if err != nil {
		problem.Write(w, problem.BadRequest().WithDetail("Meeting ID must be a valid UUID.").WithInstance(r.URL.Path))
		return uuid.Nil, false
	}
	return id, true
}
