package domain

import (
	"context"
	"time"
)

// User is an editor account. Coordinators may link to a user to reuse its name and email.
// swagger:model User
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FullName joins first and last name.
func (u *User) FullName() string {
	return joinName(u.Name, u.LastName)
}

// PasswordHasher handles salt generation, hashing, and verification.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues bearer tokens for an authenticated editor.
type TokenIssuer interface {
	Issue(userID, email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a bearer token and returns the authenticated user ID.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}

// RegistrationMarker signs and checks the visitor-side proof that a registration
// for an event was made from this browser.
type RegistrationMarker interface {
	Issue(eventID, registrationID string) (string, error)
	Verify(token, eventID string) (registrationID string, err error)
}

// UserRepository defines storage for editor accounts.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

// AuthService creates and authenticates editors.
type AuthService interface {
	SignUp(ctx context.Context, email, password, name, lastName string) (*User, error)
	Login(ctx context.Context, email, password string) (token string, err error)
}
