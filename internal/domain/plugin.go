package domain

import (
	"context"
	"time"
)

// Plugin kinds.
const (
	PluginKindList     = "list"
	PluginKindUpcoming = "upcoming"
	PluginKindCalendar = "calendar"
)

// DefaultLatestEntries is the default number of events shown by an upcoming plugin.
const DefaultLatestEntries = 5

// EventListPlugin shows an editor-curated, manually ordered list of events.
// swagger:model EventListPlugin
type EventListPlugin struct {
	ID        string   `json:"id"`
	Namespace string   `json:"namespace"`
	Style     string   `json:"style"`
	EventIDs  []string `json:"event_ids"`
}

// UpcomingPluginItem shows the next (or most recent) events of a namespace.
// swagger:model UpcomingPluginItem
type UpcomingPluginItem struct {
	ID            string `json:"id"`
	Namespace     string `json:"namespace"`
	Style         string `json:"style"`
	PastEvents    bool   `json:"past_events"`
	LatestEntries int    `json:"latest_entries"`
	// CacheDuration is in seconds; 0 disables caching.
	CacheDuration int `json:"cache_duration"`
}

// Label mirrors the selection toggle.
func (p *UpcomingPluginItem) Label() string {
	if p.PastEvents {
		return "past events"
	}
	return "future events"
}

// CacheTTL returns the configured cache lifetime.
func (p *UpcomingPluginItem) CacheTTL() time.Duration {
	return time.Duration(p.CacheDuration) * time.Second
}

// EventCalendarPlugin shows a month calendar of a namespace.
// swagger:model EventCalendarPlugin
type EventCalendarPlugin struct {
	ID            string `json:"id"`
	Namespace     string `json:"namespace"`
	CacheDuration int    `json:"cache_duration"`
}

// CacheTTL returns the configured cache lifetime.
func (p *EventCalendarPlugin) CacheTTL() time.Duration {
	return time.Duration(p.CacheDuration) * time.Second
}

// SelectUpcoming picks the plugin's events from canonically ordered candidates:
// the first LatestEntries upcoming events, or for past events the most recent
// LatestEntries ones, nearest to now first.
func (p *UpcomingPluginItem) SelectUpcoming(events []*Event, now time.Time, loc *time.Location) []*Event {
	upcoming, past := Partition(events, now, loc)
	selected := upcoming
	if p.PastEvents {
		Reverse(past)
		selected = past
	}
	if p.LatestEntries >= 0 && len(selected) > p.LatestEntries {
		selected = selected[:p.LatestEntries]
	}
	return selected
}

// OrderCurated returns the events in the plugin's stored order, dropping ids that
// no longer resolve.
func (p *EventListPlugin) OrderCurated(events []*Event) []*Event {
	byID := make(map[string]*Event, len(events))
	for _, e := range events {
		byID[e.ID] = e
	}
	out := make([]*Event, 0, len(p.EventIDs))
	for _, id := range p.EventIDs {
		if e, ok := byID[id]; ok {
			out = append(out, e)
		}
	}
	return out
}

// PluginRepository defines storage for the presentational plugin configurations.
type PluginRepository interface {
	CreateList(ctx context.Context, p *EventListPlugin) error
	GetList(ctx context.Context, id string) (*EventListPlugin, error)
	CreateUpcoming(ctx context.Context, p *UpcomingPluginItem) error
	GetUpcoming(ctx context.Context, id string) (*UpcomingPluginItem, error)
	CreateCalendar(ctx context.Context, p *EventCalendarPlugin) error
	GetCalendar(ctx context.Context, id string) (*EventCalendarPlugin, error)
}

// PluginCache stores rendered plugin payloads for their cache duration.
type PluginCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// PluginService configures plugins and resolves the events they show.
type PluginService interface {
	CreateListPlugin(ctx context.Context, p *EventListPlugin) error
	CreateUpcomingPlugin(ctx context.Context, p *UpcomingPluginItem) error
	CreateCalendarPlugin(ctx context.Context, p *EventCalendarPlugin) error
	RenderList(ctx context.Context, id string) ([]*Event, error)
	RenderUpcoming(ctx context.Context, id string) ([]*Event, error)
	RenderCalendar(ctx context.Context, id, language string, year int, month time.Month) ([]CalendarDay, error)
}
