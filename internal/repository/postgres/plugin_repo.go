package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventlisting/internal/domain"
)

type pluginRepository struct {
	DB *sql.DB
}

func NewPluginRepository(db *sql.DB) domain.PluginRepository {
	return &pluginRepository{DB: db}
}

// CreateList stores the plugin and its curated event ids in the given order.
func (r *pluginRepository) CreateList(ctx context.Context, p *domain.EventListPlugin) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	err = tx.QueryRowContext(ctx, `
		INSERT INTO event_list_plugins (namespace, style) VALUES ($1, $2) RETURNING id
	`, p.Namespace, p.Style).Scan(&p.ID)
	if err != nil {
		return err
	}
	for i, eventID := range p.EventIDs {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO event_list_plugin_events (plugin_id, event_id, position) VALUES ($1, $2, $3)
		`, p.ID, eventID, i)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *pluginRepository) GetList(ctx context.Context, id string) (*domain.EventListPlugin, error) {
	p := &domain.EventListPlugin{}
	err := r.DB.QueryRowContext(ctx, `SELECT id, namespace, style FROM event_list_plugins WHERE id = $1`, id).
		Scan(&p.ID, &p.Namespace, &p.Style)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT event_id FROM event_list_plugin_events WHERE plugin_id = $1 ORDER BY position
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	p.EventIDs = []string{}
	for rows.Next() {
		var eventID string
		if err := rows.Scan(&eventID); err != nil {
			return nil, err
		}
		p.EventIDs = append(p.EventIDs, eventID)
	}
	return p, rows.Err()
}

func (r *pluginRepository) CreateUpcoming(ctx context.Context, p *domain.UpcomingPluginItem) error {
	query := `
		INSERT INTO upcoming_plugins (namespace, style, past_events, latest_entries, cache_duration)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, p.Namespace, p.Style, p.PastEvents, p.LatestEntries, p.CacheDuration).Scan(&p.ID)
}

func (r *pluginRepository) GetUpcoming(ctx context.Context, id string) (*domain.UpcomingPluginItem, error) {
	query := `
		SELECT id, namespace, style, past_events, latest_entries, cache_duration
		FROM upcoming_plugins
		WHERE id = $1
	`
	p := &domain.UpcomingPluginItem{}
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.Namespace, &p.Style, &p.PastEvents, &p.LatestEntries, &p.CacheDuration)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *pluginRepository) CreateCalendar(ctx context.Context, p *domain.EventCalendarPlugin) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO calendar_plugins (namespace, cache_duration) VALUES ($1, $2) RETURNING id
	`, p.Namespace, p.CacheDuration).Scan(&p.ID)
}

func (r *pluginRepository) GetCalendar(ctx context.Context, id string) (*domain.EventCalendarPlugin, error) {
	p := &domain.EventCalendarPlugin{}
	err := r.DB.QueryRowContext(ctx, `SELECT id, namespace, cache_duration FROM calendar_plugins WHERE id = $1`, id).
		Scan(&p.ID, &p.Namespace, &p.CacheDuration)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}
