package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"eventlisting/internal/domain"
)

// Coordinator rows are joined with their linked user so EmailAddress and FullName can fall back.
const coordinatorSelect = `
	SELECT c.id, c.name, c.email, c.user_id, u.id, u.email, u.name, u.last_name
	FROM event_coordinators c
	LEFT JOIN users u ON u.id = c.user_id
`

type coordinatorRepository struct {
	DB *sql.DB
}

func NewCoordinatorRepository(db *sql.DB) domain.EventCoordinatorRepository {
	return &coordinatorRepository{DB: db}
}

func (r *coordinatorRepository) Create(ctx context.Context, c *domain.EventCoordinator) error {
	query := `
		INSERT INTO event_coordinators (name, email, user_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, c.Name, c.Email, c.UserID).Scan(&c.ID)
	if err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == uniqueViolation {
			return fmt.Errorf("%w: user %s is already a coordinator", domain.ErrInvalidInput, *c.UserID)
		}
		return err
	}
	return nil
}

func (r *coordinatorRepository) GetByID(ctx context.Context, id string) (*domain.EventCoordinator, error) {
	c, err := scanCoordinator(r.DB.QueryRowContext(ctx, coordinatorSelect+` WHERE c.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *coordinatorRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.EventCoordinator, error) {
	query := coordinatorSelect + `
		JOIN event_coordinator_links l ON l.coordinator_id = c.id
		WHERE l.event_id = $1
		ORDER BY l.position
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*domain.EventCoordinator, 0)
	for rows.Next() {
		c, err := scanCoordinator(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *coordinatorRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM event_coordinators WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanCoordinator(row rowScanner) (*domain.EventCoordinator, error) {
	c := &domain.EventCoordinator{}
	var userID, uID, uEmail, uName, uLastName sql.NullString
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &userID, &uID, &uEmail, &uName, &uLastName); err != nil {
		return nil, err
	}
	if userID.Valid {
		c.UserID = &userID.String
	}
	if uID.Valid {
		c.User = &domain.User{ID: uID.String, Email: uEmail.String, Name: uName.String, LastName: uLastName.String}
	}
	return c, nil
}
