package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"eventlisting/internal/domain"
)

const uniqueViolation = "23505"

const eventColumns = `e.id, e.namespace, e.start_date, e.start_time, e.end_date, e.end_time,
		e.is_published, e.publish_at, e.detail_link, e.register_link, e.enable_registration,
		e.registration_deadline_at, e.created_at, e.updated_at`

// canonicalOrder matches domain.CompareCanonical: absent times and end dates sort first.
const canonicalOrder = `ORDER BY e.start_date, e.start_time NULLS FIRST, e.end_date NULLS FIRST,
		e.end_time NULLS FIRST, e.created_at, e.id`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	query := `
		INSERT INTO events (namespace, start_date, start_time, end_date, end_time, is_published, publish_at,
			detail_link, register_link, enable_registration, registration_deadline_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`
	err = tx.QueryRowContext(ctx, query,
		e.Namespace, e.StartDate.String(), nullableTime(e.StartTime), nullableDate(e.EndDate), nullableTime(e.EndTime),
		e.IsPublished, e.PublishAt, e.DetailLink, e.RegisterLink, e.EnableRegistration, e.RegistrationDeadlineAt,
		e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
	if err != nil {
		return err
	}
	if err := writeChildren(ctx, tx, e); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	query := `
		UPDATE events SET start_date = $2, start_time = $3, end_date = $4, end_time = $5, is_published = $6,
			publish_at = $7, detail_link = $8, register_link = $9, enable_registration = $10,
			registration_deadline_at = $11, updated_at = $12
		WHERE id = $1
	`
	result, err := tx.ExecContext(ctx, query,
		e.ID, e.StartDate.String(), nullableTime(e.StartTime), nullableDate(e.EndDate), nullableTime(e.EndTime),
		e.IsPublished, e.PublishAt, e.DetailLink, e.RegisterLink, e.EnableRegistration, e.RegistrationDeadlineAt,
		e.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrNotFound
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM event_translations WHERE event_id = $1`, e.ID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM event_coordinator_links WHERE event_id = $1`, e.ID); err != nil {
		return err
	}
	if err := writeChildren(ctx, tx, e); err != nil {
		return err
	}
	return tx.Commit()
}

// writeChildren stores translations (sorted by language) and coordinator links in list order.
func writeChildren(ctx context.Context, tx *sql.Tx, e *domain.Event) error {
	for _, lang := range e.Translations.Languages() {
		tr := e.Translations[lang]
		_, err := tx.ExecContext(ctx, `
			INSERT INTO event_translations (event_id, language_code, title, slug, short_description, location, location_lat, location_lng)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, e.ID, lang, tr.Title, tr.Slug, tr.ShortDescription, tr.Location, tr.LocationLat, tr.LocationLng)
		if err != nil {
			var perr *pq.Error
			if errors.As(err, &perr) && perr.Code == uniqueViolation {
				return fmt.Errorf("%w: %s/%s", domain.ErrDuplicateSlug, lang, tr.Slug)
			}
			return err
		}
	}
	for i, id := range e.CoordinatorIDs {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO event_coordinator_links (event_id, coordinator_id, position) VALUES ($1, $2, $3)
		`, e.ID, id, i)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events e WHERE e.id = $1`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := r.loadChildren(ctx, []*domain.Event{e}); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) GetBySlug(ctx context.Context, namespace, language, slug string) (*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events e
		JOIN event_translations t ON t.event_id = e.id
		WHERE e.namespace = $1 AND t.language_code = $2 AND t.slug = $3
	`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, namespace, language, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := r.loadChildren(ctx, []*domain.Event{e}); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	where, args := buildEventFilter(filter)
	query := `SELECT ` + eventColumns + ` FROM events e` + where + ` ` + canonicalOrder
	return r.query(ctx, query, args...)
}

func (r *eventRepository) ListPage(ctx context.Context, filter domain.EventFilter, params domain.PaginationParams) ([]*domain.Event, error) {
	where, args := buildEventFilter(filter)
	n := len(args)
	query := fmt.Sprintf(`SELECT %s FROM events e%s %s LIMIT $%d OFFSET $%d`, eventColumns, where, canonicalOrder, n+1, n+2)
	args = append(args, params.PageSize, params.Offset())
	return r.query(ctx, query, args...)
}

func (r *eventRepository) Count(ctx context.Context, filter domain.EventFilter) (int, error) {
	where, args := buildEventFilter(filter)
	var n int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM events e`+where, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) query(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadChildren(ctx, events); err != nil {
		return nil, err
	}
	return events, nil
}

// loadChildren fills translations and coordinator ids with one query each.
func (r *eventRepository) loadChildren(ctx context.Context, events []*domain.Event) error {
	if len(events) == 0 {
		return nil
	}
	ids := make([]string, len(events))
	byID := make(map[string]*domain.Event, len(events))
	for i, e := range events {
		ids[i] = e.ID
		byID[e.ID] = e
		e.Translations = domain.Translations{}
		e.CoordinatorIDs = []string{}
	}

	trRows, err := r.DB.QueryContext(ctx, `
		SELECT event_id, language_code, title, slug, short_description, location, location_lat, location_lng
		FROM event_translations WHERE event_id = ANY($1)
	`, pq.Array(ids))
	if err != nil {
		return err
	}
	defer trRows.Close()
	for trRows.Next() {
		var eventID, lang string
		var tr domain.Translation
		var lat, lng sql.NullFloat64
		if err := trRows.Scan(&eventID, &lang, &tr.Title, &tr.Slug, &tr.ShortDescription, &tr.Location, &lat, &lng); err != nil {
			return err
		}
		if lat.Valid {
			tr.LocationLat = &lat.Float64
		}
		if lng.Valid {
			tr.LocationLng = &lng.Float64
		}
		if e := byID[eventID]; e != nil {
			e.Translations[lang] = tr
		}
	}
	if err := trRows.Err(); err != nil {
		return err
	}

	linkRows, err := r.DB.QueryContext(ctx, `
		SELECT event_id, coordinator_id FROM event_coordinator_links
		WHERE event_id = ANY($1) ORDER BY event_id, position
	`, pq.Array(ids))
	if err != nil {
		return err
	}
	defer linkRows.Close()
	for linkRows.Next() {
		var eventID, coordinatorID string
		if err := linkRows.Scan(&eventID, &coordinatorID); err != nil {
			return err
		}
		if e := byID[eventID]; e != nil {
			e.CoordinatorIDs = append(e.CoordinatorIDs, coordinatorID)
		}
	}
	return linkRows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var deadline sql.NullTime
	err := row.Scan(
		&e.ID, &e.Namespace, &e.StartDate, &e.StartTime, &e.EndDate, &e.EndTime,
		&e.IsPublished, &e.PublishAt, &e.DetailLink, &e.RegisterLink, &e.EnableRegistration,
		&deadline, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if deadline.Valid {
		e.RegistrationDeadlineAt = &deadline.Time
	}
	return e, nil
}

// buildEventFilter renders filter as a WHERE clause with positional arguments.
// The date conditions are coarse; time-of-day refinement happens in the domain.
func buildEventFilter(f domain.EventFilter) (string, []any) {
	var conds []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Namespace != "" {
		conds = append(conds, "e.namespace = "+arg(f.Namespace))
	}
	if f.PublishedOnly {
		conds = append(conds, "e.is_published")
	}
	if f.PublishedBefore != nil {
		conds = append(conds, "e.publish_at <= "+arg(*f.PublishedBefore))
	}
	if f.Window != nil {
		conds = append(conds, "e.start_date < "+arg(f.Window.End.String()))
		conds = append(conds, "COALESCE(e.end_date, e.start_date) >= "+arg(f.Window.Start.String()))
	}
	if f.EndsOnOrAfter != nil {
		conds = append(conds, "COALESCE(e.end_date, e.start_date) >= "+arg(f.EndsOnOrAfter.String()))
	}
	if f.EndsBefore != nil {
		conds = append(conds, "COALESCE(e.end_date, e.start_date) < "+arg(f.EndsBefore.String()))
	}
	if f.IDs != nil {
		conds = append(conds, "e.id = ANY("+arg(pq.Array(f.IDs))+")")
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func nullableDate(d *domain.Date) any {
	if d == nil {
		return nil
	}
	return d.String()
}

func nullableTime(t *domain.TimeOfDay) any {
	if t == nil {
		return nil
	}
	return t.String()
}
