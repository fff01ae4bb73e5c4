package problem

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidationErrors represents field-level validation failures.
// It's based on url.Values to leverage built-in string slice handling.
type ValidationErrors url.Values

// Error implements the error interface.
// Returns a human-readable message summarizing validation failures.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	var parts []string
	for field, messages := range e {
		if len(messages) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", field, messages[0]))
		}
	}

	return fmt.Sprintf("validation error: %s", strings.Join(parts, ", "))
}

// NewValidationErrors creates an empty validation error set.
func NewValidationErrors() ValidationErrors {
	return make(ValidationErrors)
}

// Add adds an error message for a field.
func (e ValidationErrors) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first error message for a field.
func (e ValidationErrors) Get(field string) string {
	return url.Values(e).Get(field)
}

// Has checks if a field has any errors.
func (e ValidationErrors) Has(field string) bool {
	return len(e[field]) > 0
}

// IsEmpty returns true if there are no validation errors.
func (e ValidationErrors) IsEmpty() bool {
	return len(e) == 0
}
