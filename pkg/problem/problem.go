package problem

import (
	"encoding/json"
	"net/http"
)

// ContentType is the media type for problem responses per RFC 7807.
const ContentType = "application/problem+json"

// Type URIs identifying well-known problem categories. Clients switch on
// these rather than parsing titles.
const (
	TypeValidation    = "https://meetspace.dev/problems/validation"
	TypeRuleViolation = "https://meetspace.dev/problems/business-rule"
	TypeDefault       = "about:blank"
)

// Problem is the standardized error response envelope.
// Validation failures populate Errors; business rule failures populate Code.
type Problem struct {
	Type     string              `json:"type"`
	Title    string              `json:"title"`
	Status   int                 `json:"status"`
	Detail   string              `json:"detail,omitempty"`
	Instance string              `json:"instance,omitempty"`
	Errors   map[string][]string `json:"errors,omitempty"`
	Code     string              `json:"code,omitempty"`
}

// Error implements the error interface so a Problem can travel up a handler
// chain like any other error.
func (p Problem) Error() string {
	if p.Detail != "" {
		return p.Title + ": " + p.Detail
	}
	return p.Title
}

// New creates a generic problem with the given status code and title.
func New(status int, title string) Problem {
	return Problem{Type: TypeDefault, Title: title, Status: status}
}

// Common problem constructors. Titles follow the snake_case key convention
// used across the codebase so they double as translation keys.
var (
	BadRequest   = func() Problem { return New(http.StatusBadRequest, "bad_request") }
	Unauthorized = func() Problem { return New(http.StatusUnauthorized, "unauthorized") }
	Forbidden    = func() Problem { return New(http.StatusForbidden, "forbidden") }
	NotFound     = func() Problem { return New(http.StatusNotFound, "not_found") }
	Conflict     = func() Problem { return New(http.StatusConflict, "conflict") }
	Internal     = func() Problem { return New(http.StatusInternalServerError, "internal_server_error") }
)

// WithDetail returns a copy of the problem with the detail set.
func (p Problem) WithDetail(detail string) Problem {
	p.Detail = detail
	return p
}

// WithInstance returns a copy of the problem with the instance URI set,
// typically the request path.
func (p Problem) WithInstance(instance string) Problem {
	p.Instance = instance
	return p
}

// Write serializes the problem to the response writer with the proper
// content type and status code. Encoding errors are ignored since the
// status line has already been committed.
func Write(w http.ResponseWriter, p Problem) {
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(p)
}
