package authn

// Claim types recognized by the authorization layer.
const (
	// ClaimTypeSubject carries the authenticated user identifier.
	ClaimTypeSubject = "sub"
	// ClaimTypePermission carries one granted permission per claim.
	ClaimTypePermission = "perm"
	// ClaimTypeTokenID carries the token identifier used for revocation checks.
	ClaimTypeTokenID = "jti"
)

// Claim is a typed fact about an authenticated principal,
// issued by the identity provider. Types are not unique per principal.
type Claim struct {
	Type  string
	Value string
}

// Principal is the authenticated identity for one request: an immutable
// claim set produced once by token validation and never mutated afterwards.
// The zero value is an anonymous principal with no claims.
type Principal struct {
	claims []Claim
}

// NewPrincipal builds a principal from the given claims.
// The claims are copied so callers cannot mutate the principal afterwards.
func NewPrincipal(claims ...Claim) Principal {
	if len(claims) == 0 {
		return Principal{}
	}
	cp := make([]Claim, len(claims))
	copy(cp, claims)
	return Principal{claims: cp}
}

// Claims returns a copy of the principal's claim set.
func (p Principal) Claims() []Claim {
	if len(p.claims) == 0 {
		return nil
	}
	cp := make([]Claim, len(p.claims))
	copy(cp, p.claims)
	return cp
}

// Subject returns the value of the subject claim, or empty when absent.
func (p Principal) Subject() string {
	for _, c := range p.claims {
		if c.Type == ClaimTypeSubject {
			return c.Value
		}
	}
	return ""
}

// Values returns all claim values of the given type, in claim order.
func (p Principal) Values(claimType string) []string {
	var values []string
	for _, c := range p.claims {
		if c.Type == claimType {
			values = append(values, c.Value)
		}
	}
	return values
}

// Permissions returns all permission claim values.
func (p Principal) Permissions() []string {
	return p.Values(ClaimTypePermission)
}

// HasPermission reports whether the principal carries a permission claim
// exactly equal to the given value. Matching is case-sensitive with no
// wildcard or prefix semantics; an empty permission never matches.
func (p Principal) HasPermission(permission string) bool {
	if permission == "" {
		return false
	}
	for _, c := range p.claims {
		if c.Type == ClaimTypePermission && c.Value == permission {
			return true
		}
	}
	return false
}
