package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// PBKDF2-HMAC-SHA256 parameters for the config store.
	//
	// kdfIterations is pinned here instead of taken from a library
	// default so that stored files keep decrypting across upgrades.
	kdfIterations = 390000
	kdfKeyLen     = 32

	// SaltSize is the length of the random salt written in front of the
	// ciphertext. A fresh salt is generated on every save.
	SaltSize = 16
)

// DeriveKey stretches a password into a 32-byte AES-256 key using
// PBKDF2-HMAC-SHA256 with the pinned iteration count. It is a pure
// function of (password, salt); the only error is a salt of the wrong
// length.
func DeriveKey(password, salt []byte) ([]byte, error) {
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("invalid salt length %d, want %d", len(salt), SaltSize)
	}
	return pbkdf2.Key(password, salt, kdfIterations, kdfKeyLen, sha256.New), nil
}

// NewSalt generates the random salt for one save.
func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}
