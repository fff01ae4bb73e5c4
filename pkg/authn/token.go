package authn

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// JWT header constants required by RFC 7519.
const (
	headerType      = "JWT"
	headerAlgorithm = "HS256" // HMAC-SHA256 chosen for security/performance balance
)

type header struct {
	Type      string `json:"typ"`
	Algorithm string `json:"alg"`
}

// Config describes the trusted issuer contract: tokens are accepted only
// when signed with SigningKey and carrying the expected issuer and audience.
type Config struct {
	SigningKey string        `env:"JWT_SIGNING_KEY,required"`
	Issuer     string        `env:"JWT_ISSUER" envDefault:"https://auth.meetspace.dev"`
	Audience   string        `env:"JWT_AUDIENCE" envDefault:"meetspace-api"`
	AccessTTL  time.Duration `env:"JWT_ACCESS_TTL" envDefault:"1h"`
}

// accessClaims is the wire shape of an access token. Permissions are
// carried one value per entry under the "perm" claim.
type accessClaims struct {
	ID          string   `json:"jti,omitempty"`
	Subject     string   `json:"sub,omitempty"`
	Issuer      string   `json:"iss,omitempty"`
	Audience    string   `json:"aud,omitempty"`
	ExpiresAt   int64    `json:"exp,omitempty"`
	IssuedAt    int64    `json:"iat,omitempty"`
	Permissions []string `json:"perm,omitempty"`
}

// TokenService issues and validates access tokens using HMAC-SHA256.
// The signing key is kept in memory only and should be cryptographically secure.
type TokenService struct {
	signingKey []byte
	issuer     string
	audience   string
	accessTTL  time.Duration
}

// NewTokenService creates a token service from the issuer configuration.
func NewTokenService(cfg Config) (*TokenService, error) {
	if cfg.SigningKey == "" {
		return nil, ErrMissingSigningKey
	}

	ttl := cfg.AccessTTL
	if ttl == 0 {
		ttl = time.Hour
	}

	return &TokenService{
		signingKey: []byte(cfg.SigningKey),
		issuer:     cfg.Issuer,
		audience:   cfg.Audience,
		accessTTL:  ttl,
	}, nil
}

// Issue creates a signed access token for the subject carrying the given
// permissions. A fresh token ID is generated for revocation tracking.
func (s *TokenService) Issue(subject string, permissions []string) (string, error) {
	if subject == "" {
		return "", ErrMissingSubject
	}

	now := time.Now()
	claims := accessClaims{
		ID:          uuid.New().String(),
		Subject:     subject,
		Issuer:      s.issuer,
		Audience:    s.audience,
		ExpiresAt:   now.Add(s.accessTTL).Unix(),
		IssuedAt:    now.Unix(),
		Permissions: permissions,
	}

	headerJSON, err := json.Marshal(header{Type: headerType, Algorithm: headerAlgorithm})
	if err != nil {
		return "", fmt.Errorf("failed to marshal header: %w", err)
	}
	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("failed to marshal claims: %w", err)
	}

	// Token shape: base64url(header).base64url(claims).base64url(signature)
	payload := base64URLEncode(headerJSON) + "." + base64URLEncode(claimsJSON)
	return payload + "." + s.sign(payload), nil
}

// Validate verifies a token's signature, algorithm, expiry, issuer and
// audience, and resolves the principal carried in it. The returned
// principal holds the subject claim, the token ID claim and one permission
// claim per granted permission.
func (s *TokenService) Validate(tokenString string) (Principal, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return Principal{}, ErrInvalidToken
	}

	// Verify signature first, using constant-time comparison to prevent
	// timing attacks. Nothing in the token is trusted until this passes.
	payload := parts[0] + "." + parts[1]
	expected := s.sign(payload)
	if subtle.ConstantTimeCompare([]byte(parts[2]), []byte(expected)) != 1 {
		return Principal{}, ErrInvalidSignature
	}

	headerJSON, err := base64URLDecode(parts[0])
	if err != nil {
		return Principal{}, fmt.Errorf("failed to decode header: %w", err)
	}
	var h header
	if err := json.Unmarshal(headerJSON, &h); err != nil {
		return Principal{}, fmt.Errorf("failed to unmarshal header: %w", err)
	}
	// Reject unexpected algorithms to prevent algorithm confusion attacks.
	if h.Algorithm != headerAlgorithm {
		return Principal{}, ErrUnexpectedSigningMethod
	}

	claimsJSON, err := base64URLDecode(parts[1])
	if err != nil {
		return Principal{}, fmt.Errorf("failed to decode claims: %w", err)
	}
	var claims accessClaims
	if err := json.Unmarshal(claimsJSON, &claims); err != nil {
		return Principal{}, fmt.Errorf("failed to unmarshal claims: %w", err)
	}

	if claims.ExpiresAt > 0 && time.Now().Unix() > claims.ExpiresAt {
		return Principal{}, ErrExpiredToken
	}
	if s.issuer != "" && claims.Issuer != s.issuer {
		return Principal{}, ErrInvalidIssuer
	}
	if s.audience != "" && claims.Audience != s.audience {
		return Principal{}, ErrInvalidAudience
	}
	if claims.Subject == "" {
		return Principal{}, ErrMissingSubject
	}

	set := make([]Claim, 0, len(claims.Permissions)+2)
	set = append(set, Claim{Type: ClaimTypeSubject, Value: claims.Subject})
	if claims.ID != "" {
		set = append(set, Claim{Type: ClaimTypeTokenID, Value: claims.ID})
	}
	for _, perm := range claims.Permissions {
		set = append(set, Claim{Type: ClaimTypePermission, Value: perm})
	}

	return NewPrincipal(set...), nil
}

// AccessTTL reports the configured token lifetime. Revocation stores use it
// as an upper bound for denylist entry expiry.
func (s *TokenService) AccessTTL() time.Duration {
	return s.accessTTL
}

// sign creates an HMAC-SHA256 signature for the given payload,
// base64url-encoded as required by RFC 7515.
func (s *TokenService) sign(payload string) string {
	h := hmac.New(sha256.New, s.signingKey)
	h.Write([]byte(payload))
	return base64URLEncode(h.Sum(nil))
}

// base64URLEncode encodes data using base64url encoding without padding,
// as required by RFC 7515 for JWT tokens.
func base64URLEncode(data []byte) string {
	return strings.TrimRight(base64.URLEncoding.EncodeToString(data), "=")
}

// base64URLDecode decodes base64url-encoded data, restoring padding as
// needed. JWT tokens omit padding but Go's decoder requires it.
func base64URLDecode(s string) ([]byte, error) {
	switch len(s) % 4 {
	case 2:
		s += "=="
	case 3:
		s += "="
	}
	return base64.URLEncoding.DecodeString(s)
}
