package problem

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
)

// Constructor translates a specific error kind into a Problem.
// It returns false when the error is not of the kind it handles,
// letting the mapper fall through to the next registered constructor.
type Constructor func(err error) (Problem, bool)

// Mapper translates internal errors into problem payloads. The mapping
// table is fixed at construction; unmapped errors become a generic 500
// with the original detail logged, never exposed.
type Mapper struct {
	log          *slog.Logger
	constructors []Constructor
}

// NewMapper creates a mapper with the built-in translations:
// ValidationErrors -> 400 with a field->messages map, RuleError -> 422
// with a rule code, Problem values pass through unchanged. Additional
// constructors run before the built-in ones in registration order.
func NewMapper(log *slog.Logger, constructors ...Constructor) *Mapper {
	if log == nil {
		log = slog.New(discardHandler{})
	}

	m := &Mapper{log: log}
	m.constructors = append(m.constructors, constructors...)
	m.constructors = append(m.constructors,
		mapPassthrough,
		mapValidation,
		mapRuleViolation,
	)
	return m
}

// Map translates err into a Problem. Translation only: the original error
// always reaches the log, an unmapped error's detail never reaches the
// payload.
func (m *Mapper) Map(ctx context.Context, err error) Problem {
	for _, construct := range m.constructors {
		if p, ok := construct(err); ok {
			return p
		}
	}

	m.log.ErrorContext(ctx, "unmapped error", slog.Any("error", err))
	return Internal()
}

// Render maps err and writes the resulting payload to the response,
// stamping the request path as the problem instance.
func (m *Mapper) Render(w http.ResponseWriter, r *http.Request, err error) {
	p := m.Map(r.Context(), err)
	if p.Instance == "" {
		p.Instance = r.URL.Path
	}
	Write(w, p)
}

func mapPassthrough(err error) (Problem, bool) {
	var p Problem
	if errors.As(err, &p) {
		return p, true
	}
	return Problem{}, false
}

func mapValidation(err error) (Problem, bool) {
	var ve ValidationErrors
	if !errors.As(err, &ve) {
		return Problem{}, false
	}

	return Problem{
		Type:   TypeValidation,
		Title:  "validation_failed",
		Status: http.StatusBadRequest,
		Detail: "One or more fields failed validation.",
		Errors: map[string][]string(ve),
	}, true
}

func mapRuleViolation(err error) (Problem, bool) {
	var re RuleError
	if !errors.As(err, &re) {
		return Problem{}, false
	}

	return Problem{
		Type:   TypeRuleViolation,
		Title:  "business_rule_violation",
		Status: http.StatusUnprocessableEntity,
		Detail: re.Detail,
		Code:   re.Code,
	}, true
}

// discardHandler is a slog.Handler that drops all records.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }
