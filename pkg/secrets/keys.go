package secrets

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

// KeySize is the required application key length, 256 bits for AES-256.
const KeySize = 32

// keyDomain provides domain separation for HKDF derivation so keys produced
// here can never collide with keys derived elsewhere from the same material.
const keyDomain = "meetspace-secrets-v1"

// deriveKey derives a module-scoped key from the application key using
// HKDF-SHA256 with the module name as salt.
func deriveKey(appKey []byte, module string) ([]byte, error) {
	reader := hkdf.New(sha256.New, appKey, []byte(module), []byte(keyDomain))

	derived := make([]byte, KeySize)
	if _, err := io.ReadFull(reader, derived); err != nil {
		return nil, errors.Join(ErrKeyDerivationFailed, err)
	}
	return derived, nil
}

// GenerateKey creates a new random 32-byte application key.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	return key, nil
}
