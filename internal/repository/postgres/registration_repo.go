package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventlisting/internal/domain"
)

const registrationColumns = `id, event_id, language_code, salutation, company, first_name, last_name,
		address, address_zip, address_city, phone, mobile, email, message, created_at, updated_at`

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	query := `
		INSERT INTO event_registrations (event_id, language_code, salutation, company, first_name, last_name,
			address, address_zip, address_city, phone, mobile, email, message, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		reg.EventID, reg.LanguageCode, string(reg.Salutation), reg.Company, reg.FirstName, reg.LastName,
		reg.Address, reg.AddressZip, reg.AddressCity, reg.Phone, reg.Mobile, reg.Email, reg.Message,
		reg.CreatedAt, reg.UpdatedAt,
	).Scan(&reg.ID)
}

func (r *registrationRepository) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM event_registrations WHERE id = $1`
	reg, err := scanRegistration(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (r *registrationRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	query := `
		SELECT ` + registrationColumns + `
		FROM event_registrations
		WHERE event_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regs := make([]*domain.Registration, 0)
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

func scanRegistration(row rowScanner) (*domain.Registration, error) {
	reg := &domain.Registration{}
	var salutation string
	err := row.Scan(
		&reg.ID, &reg.EventID, &reg.LanguageCode, &salutation, &reg.Company, &reg.FirstName, &reg.LastName,
		&reg.Address, &reg.AddressZip, &reg.AddressCity, &reg.Phone, &reg.Mobile, &reg.Email, &reg.Message,
		&reg.CreatedAt, &reg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	reg.Salutation = domain.Salutation(salutation)
	return reg, nil
}
