package payments

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/meetspace/meetspace/pkg/problem"
)

type handler struct {
	svc      *Service
	problems *problem.Mapper
}

type paymentResponse struct {
	ID         string    `json:"id"`
	Amount     int64     `json:"amount"`
	Currency   string    `json:"currency"`
	BillingRef string    `json:"billing_ref"`
	RecordedAt time.Time `json:"recorded_at"`
}

func toPaymentResponse(p Payment) paymentResponse {
	return paymentResponse{
		ID:         p.ID.String(),
		Amount:     p.Amount,
		Currency:   p.Currency,
		BillingRef: p.BillingRef,
		RecordedAt: p.RecordedAt,
	}
}

func (h *handler) record(w http.ResponseWriter, r *http.Request) {
	var params RecordParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		problem.Write(w, problem.BadRequest().WithDetail("Request body must be valid JSON.").WithInstance(r.URL.Path))
		return
	}

	payment, err := h.svc.Record(r.Context(), params)
	if err != nil {
		h.problems.Render(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toPaymentResponse(payment))
}

func (h *handler) listMine(w http.ResponseWriter, r *http.Request) {
	payments, err := h.svc.ListMine(r.Context())
	if err != nil {
		h.problems.Render(w, r, err)
		return
	}

	out := make([]paymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, toPaymentResponse(p))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}
