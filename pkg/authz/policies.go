package authz

import "fmt"

// Policies is the policy registration surface: a table mapping each policy
// name 1:1 to its permission requirement. Endpoints declare the policy
// name that gates them; the table is filled during composition and treated
// as read-only while serving requests.
type Policies struct {
	table map[string]Requirement
}

// NewPolicies creates an empty policy table.
func NewPolicies() *Policies {
	return &Policies{table: make(map[string]Requirement)}
}

// Register adds a named policy requiring the given permission.
// Empty names, empty permissions and duplicate registrations are
// configuration errors surfaced immediately.
func (p *Policies) Register(name, permission string) error {
	if name == "" {
		return ErrEmptyPolicyName
	}
	if permission == "" {
		return fmt.Errorf("%w: policy %q", ErrEmptyPermission, name)
	}
	if _, exists := p.table[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicatePolicy, name)
	}
	p.table[name] = NewRequirement(permission)
	return nil
}

// MustRegister registers a policy and panics on configuration errors.
// Policy registration happens at process start where failing fast is the
// correct behavior.
func (p *Policies) MustRegister(name, permission string) {
	if err := p.Register(name, permission); err != nil {
		panic(err)
	}
}

// Get returns the requirement for a registered policy name.
func (p *Policies) Get(name string) (Requirement, error) {
	req, ok := p.table[name]
	if !ok {
		return Requirement{}, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
	return req, nil
}

// Len returns the number of registered policies.
func (p *Policies) Len() int {
	return len(p.table)
}
