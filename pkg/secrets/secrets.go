package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
)

// Cipher encrypts and decrypts values with a key derived for one module.
// Two Ciphers built from the same app key but different module names cannot
// read each other's ciphertexts.
type Cipher struct {
	key []byte
}

// ForModule derives a module-scoped Cipher from the application key.
func ForModule(appKey []byte, module string) (*Cipher, error) {
	if len(appKey) != KeySize {
		return nil, ErrInvalidAppKey
	}
	if module == "" {
		return nil, ErrEmptyModuleName
	}
	key, err := deriveKey(appKey, module)
	if err != nil {
		return nil, err
	}
	return &Cipher{key: key}, nil
}

// EncryptString encrypts plaintext and returns base64-encoded ciphertext.
func (c *Cipher) EncryptString(plaintext string) (string, error) {
	ciphertext, err := c.EncryptBytes([]byte(plaintext))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// DecryptString decodes base64 ciphertext and decrypts it.
func (c *Cipher) DecryptString(ciphertext string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", errors.Join(ErrInvalidCiphertext, err)
	}
	plaintext, err := c.DecryptBytes(raw)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// EncryptBytes seals data with AES-256-GCM.
// The returned ciphertext layout is nonce + encrypted data + tag.
func (c *Cipher) EncryptBytes(data []byte) ([]byte, error) {
	aesGCM, err := c.gcm()
	if err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}

	nonce := make([]byte, aesGCM.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}

	return aesGCM.Seal(nonce, nonce, data, nil), nil
}

// DecryptBytes opens ciphertext produced by EncryptBytes.
func (c *Cipher) DecryptBytes(ciphertext []byte) ([]byte, error) {
	aesGCM, err := c.gcm()
	if err != nil {
		return nil, errors.Join(ErrDecryptionFailed, err)
	}

	nonceSize := aesGCM.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, ErrInvalidCiphertext
	}
	nonce, sealed := ciphertext[:nonceSize], ciphertext[nonceSize:]

	plaintext, err := aesGCM.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, errors.Join(ErrDecryptionFailed, err)
	}
	return plaintext, nil
}

func (c *Cipher) gcm() (cipher.AEAD, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
