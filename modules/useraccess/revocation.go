package useraccess

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const revocationKeyPrefix = "useraccess:revoked:"

// RevocationStore is a Redis-backed token denylist. Revoked token IDs are
// kept no longer than the maximum token lifetime, after which the token is
// expired anyway and the entry is garbage.
type RevocationStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRevocationStore creates a denylist with entry expiry ttl, normally the
// configured access token lifetime.
func NewRevocationStore(client *redis.Client, ttl time.Duration) *RevocationStore {
	return &RevocationStore{client: client, ttl: ttl}
}

// Revoke marks a token ID as revoked.
func (s *RevocationStore) Revoke(ctx context.Context, tokenID string) error {
	return s.client.Set(ctx, revocationKeyPrefix+tokenID, "1", s.ttl).Err()
}

// IsRevoked reports whether the token ID is on the denylist.
func (s *RevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, revocationKeyPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
