// Package problem implements the standardized error response envelope
// (RFC 7807 problem details) and the mapping from internal error kinds to
// externally visible payloads.
//
// Three error kinds get dedicated translations:
//
//   - ValidationErrors: malformed commands, rendered as 400 with a
//     field -> messages map under "errors".
//   - RuleError: broken domain invariants, rendered as 422 with a stable
//     rule identifier under "code".
//   - Problem: pre-built payloads pass through untouched.
//
// Anything else is logged with full detail and surfaced as a generic 500 -
// internal errors never leak to callers.
//
// # Usage
//
//	mapper := problem.NewMapper(log)
//
//	func (h handler) create(w http.ResponseWriter, r *http.Request) {
//		if err := h.svc.Create(r.Context(), cmd); err != nil {
//			mapper.Render(w, r, err)
//			return
//		}
//		w.WriteHeader(http.StatusCreated)
//	}
//
// Custom translations can be registered at construction:
//
//	mapper := problem.NewMapper(log, func(err error) (problem.Problem, bool) {
//		if errors.Is(err, storage.ErrNotFound) {
//			return problem.NotFound(), true
//		}
//		return problem.Problem{}, false
//	})
package problem
