package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"eventlisting/internal/domain"
)

// DefaultCost is the bcrypt cost used for editor passwords.
const DefaultCost = 12

const saltBytes = 16

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns the editor password hasher. cost is clamped to the range bcrypt
// accepts. Salt and password are digested with SHA-256 first so long passphrases are not
// truncated at bcrypt's 72 byte input limit.
func NewBcryptHasher(cost int) domain.PasswordHasher {
	return &bcryptHasher{cost: min(max(cost, bcrypt.MinCost), bcrypt.MaxCost)}
}

func (b *bcryptHasher) GenerateSalt() (string, error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func (b *bcryptHasher) Hash(salt, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(digest(salt, password), b.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Compare reports ErrInvalidCredentials for a wrong password. A stored hash bcrypt cannot
// read is returned as a plain error.
func (b *bcryptHasher) Compare(hash, salt, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), digest(salt, password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return domain.ErrInvalidCredentials
	default:
		return fmt.Errorf("stored password hash: %w", err)
	}
}

func digest(salt, password string) []byte {
	h := sha256.New()
	h.Write([]byte(salt))
	h.Write([]byte{0})
	h.Write([]byte(password))
	return []byte(hex.EncodeToString(h.Sum(nil)))
}
