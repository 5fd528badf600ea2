package domain

import (
	"context"
	"time"
)

// Salutation is the form of address chosen by a visitor.
type Salutation string

const (
	SalutationFemale Salutation = "female"
	SalutationMale   Salutation = "male"
)

// Label returns the honorific shown in emails.
func (s Salutation) Label() string {
	switch s {
	case SalutationFemale:
		return "Ms."
	case SalutationMale:
		return "Mr."
	}
	return ""
}

// Registration is a visitor's sign-up for an event.
// swagger:model Registration
type Registration struct {
	ID           string     `json:"id"`
	EventID      string     `json:"event_id"`
	LanguageCode string     `json:"language_code"`
	Salutation   Salutation `json:"salutation"`
	Company      string     `json:"company"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Address      string     `json:"address"`
	AddressZip   string     `json:"address_zip"`
	AddressCity  string     `json:"address_city"`
	Phone        string     `json:"phone"`
	Mobile       string     `json:"mobile"`
	Email        string     `json:"email"`
	Message      string     `json:"message"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// FullName joins first and last name.
func (r *Registration) FullName() string {
	return joinName(r.FirstName, r.LastName)
}

// RegistrationRepository defines storage for registrations.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *Registration) error
	GetByID(ctx context.Context, id string) (*Registration, error)
	ListByEventID(ctx context.Context, eventID string) ([]*Registration, error)
}

// RegistrationService handles visitor sign-ups.
type RegistrationService interface {
	// Register stores the registration for the visible event identified by slug and
	// returns the event it was attached to.
	Register(ctx context.Context, namespace, slug string, reg *Registration) (*Event, error)
	// IsRegistered reports whether the registration id belongs to the event.
	IsRegistered(ctx context.Context, eventID, registrationID string) (bool, error)
	ListRegistrations(ctx context.Context, eventID string) ([]*Registration, error)
}
