package problem

// RuleError signals a broken domain invariant: the command was structurally
// valid but the business rules reject it. Code is a stable machine-readable
// identifier; Detail is the human-readable explanation.
type RuleError struct {
	Code   string
	Detail string
}

// Error implements the error interface.
func (e RuleError) Error() string {
	if e.Detail != "" {
		return e.Code + ": " + e.Detail
	}
	return e.Code
}

// NewRuleError creates a business rule violation error.
func NewRuleError(code, detail string) RuleError {
	return RuleError{Code: code, Detail: detail}
}
