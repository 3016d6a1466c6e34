// Package store owns the encrypted on-disk config: a random 16-byte salt
// followed by an AES-256-GCM container holding the JSON-serialized
// credentials. The key is derived from the user's password with the salt,
// so the file is useless without the password and any tampering is
// detected by the authentication tag.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nullasaservice/btc-tracker/internal/crypto"
	"github.com/nullasaservice/btc-tracker/internal/model"
)

var (
	// ErrNotFound reports that no config file exists yet. The caller is
	// expected to route to first-run setup.
	ErrNotFound = errors.New("config not found")

	// ErrAuthentication reports that decryption failed. A wrong password
	// and a corrupted or tampered file are deliberately indistinguishable.
	ErrAuthentication = errors.New("invalid password or corrupted config")
)

// Store reads and writes the encrypted config file at a fixed path.
// Every save rewrites the whole record under a fresh salt.
type Store struct {
	path string
}

// New returns a store for the config file at path. The file does not
// need to exist yet.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the config file.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether a config file is present. No decryption is
// attempted.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Save seals creds under password and atomically replaces the config
// file. A fresh salt is generated on every call, so two saves of the
// same record never produce the same bytes on disk.
func (s *Store) Save(creds model.Credentials, password []byte) error {
	plaintext, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	defer clear(plaintext)

	salt, err := crypto.NewSalt()
	if err != nil {
		return err
	}
	key, err := crypto.DeriveKey(password, salt)
	if err != nil {
		return err
	}

	container, err := crypto.Encrypt(key, plaintext)
	if err != nil {
		return err
	}

	data := make([]byte, 0, len(salt)+len(container))
	data = append(data, salt...)
	data = append(data, container...)

	return s.writeAtomic(data)
}

// Load reads and decrypts the config file. It returns ErrNotFound when
// the file is absent and ErrAuthentication when the password is wrong or
// the file is damaged, without revealing which.
func (s *Store) Load(password []byte) (model.Credentials, error) {
	var creds model.Credentials

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return creds, ErrNotFound
		}
		return creds, fmt.Errorf("failed to read config: %w", err)
	}

	if len(data) < crypto.SaltSize {
		return creds, ErrAuthentication
	}
	salt := data[:crypto.SaltSize]
	container := data[crypto.SaltSize:]

	key, err := crypto.DeriveKey(password, salt)
	if err != nil {
		return creds, err
	}

	plaintext, err := crypto.Decrypt(key, container)
	if err != nil {
		return creds, ErrAuthentication
	}
	defer clear(plaintext)

	if err := json.Unmarshal(plaintext, &creds); err != nil {
		return creds, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return creds, nil
}

// writeAtomic writes data to a temp file next to the target and renames
// it into place, so a concurrent reader never observes a partial file.
func (s *Store) writeAtomic(data []byte) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace config: %w", err)
	}
	return nil
}
