package domain

import (
	"context"
	"strings"
)

// EventCoordinator is a contact person for one or more events. Either an explicit
// email or a linked user account with an email is required.
// swagger:model EventCoordinator
type EventCoordinator struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	UserID *string `json:"user_id"`
	User   *User   `json:"-"`
}

// Validate enforces that the coordinator can be reached by email.
func (c *EventCoordinator) Validate() error {
	if c.Email != "" {
		return nil
	}
	if c.User == nil || c.User.Email == "" {
		return newValidationError(KindCoordinatorEmailNeeded, "please define an email for the coordinator")
	}
	return nil
}

// EmailAddress is the explicit email, otherwise the linked user's email.
func (c *EventCoordinator) EmailAddress() string {
	if c.Email == "" && c.User != nil {
		return c.User.Email
	}
	return c.Email
}

// FullName is the explicit name, otherwise the linked user's full name.
func (c *EventCoordinator) FullName() string {
	if c.Name == "" && c.User != nil {
		return c.User.FullName()
	}
	return c.Name
}

func (c *EventCoordinator) String() string {
	if n := c.FullName(); n != "" {
		return n
	}
	return c.EmailAddress()
}

// EventCoordinatorRepository defines storage for coordinators and their event links.
type EventCoordinatorRepository interface {
	Create(ctx context.Context, c *EventCoordinator) error
	GetByID(ctx context.Context, id string) (*EventCoordinator, error)
	ListByEventID(ctx context.Context, eventID string) ([]*EventCoordinator, error)
	Delete(ctx context.Context, id string) error
}

// CoordinatorService defines coordinator management.
type CoordinatorService interface {
	CreateCoordinator(ctx context.Context, c *EventCoordinator) error
	GetCoordinator(ctx context.Context, id string) (*EventCoordinator, error)
	DeleteCoordinator(ctx context.Context, id string) error
}

// joinName joins non-empty name parts with a single space.
func joinName(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
