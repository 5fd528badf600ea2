package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"eventlisting/internal/domain"
)

type pluginService struct {
	pluginRepo      domain.PluginRepository
	eventRepo       domain.EventRepository
	namespaces      domain.NamespaceRegistry
	cache           domain.PluginCache
	clock           Clock
	defaultLanguage string
	contextTimeout  time.Duration
	logger          *slog.Logger
}

func NewPluginService(
	pluginRepo domain.PluginRepository,
	eventRepo domain.EventRepository,
	namespaces domain.NamespaceRegistry,
	cache domain.PluginCache,
	clock Clock,
	defaultLanguage string,
	timeout time.Duration,
	logger *slog.Logger,
) domain.PluginService {
	return &pluginService{
		pluginRepo:      pluginRepo,
		eventRepo:       eventRepo,
		namespaces:      namespaces,
		cache:           cache,
		clock:           clock,
		defaultLanguage: defaultLanguage,
		contextTimeout:  timeout,
		logger:          logger,
	}
}

func (s *pluginService) CreateListPlugin(ctx context.Context, p *domain.EventListPlugin) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.checkStyle(p.Namespace, &p.Style); err != nil {
		return err
	}
	if len(p.EventIDs) > 0 {
		found, err := s.eventRepo.List(ctx, domain.EventFilter{Namespace: p.Namespace, IDs: p.EventIDs})
		if err != nil {
			return fmt.Errorf("load plugin events: %w", err)
		}
		known := make(map[string]struct{}, len(found))
		for _, e := range found {
			known[e.ID] = struct{}{}
		}
		seen := make(map[string]struct{}, len(p.EventIDs))
		for _, id := range p.EventIDs {
			if _, ok := known[id]; !ok {
				return fmt.Errorf("%w: event %s is not in namespace %s", domain.ErrInvalidInput, id, p.Namespace)
			}
			if _, dup := seen[id]; dup {
				return fmt.Errorf("%w: event %s listed twice", domain.ErrInvalidInput, id)
			}
			seen[id] = struct{}{}
		}
	}
	return s.pluginRepo.CreateList(ctx, p)
}

func (s *pluginService) CreateUpcomingPlugin(ctx context.Context, p *domain.UpcomingPluginItem) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.checkStyle(p.Namespace, &p.Style); err != nil {
		return err
	}
	if p.LatestEntries < 0 {
		return fmt.Errorf("%w: latest_entries must not be negative", domain.ErrInvalidInput)
	}
	if p.CacheDuration < 0 {
		return fmt.Errorf("%w: cache_duration must not be negative", domain.ErrInvalidInput)
	}
	return s.pluginRepo.CreateUpcoming(ctx, p)
}

func (s *pluginService) CreateCalendarPlugin(ctx context.Context, p *domain.EventCalendarPlugin) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, ok := s.namespaces.Lookup(p.Namespace); !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownNamespace, p.Namespace)
	}
	if p.CacheDuration < 0 {
		return fmt.Errorf("%w: cache_duration must not be negative", domain.ErrInvalidInput)
	}
	return s.pluginRepo.CreateCalendar(ctx, p)
}

// RenderList returns the curated events that are currently visible, in curated order.
func (s *pluginService) RenderList(ctx context.Context, id string) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	p, err := s.pluginRepo.GetList(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(p.EventIDs) == 0 {
		return []*domain.Event{}, nil
	}
	now := s.clock.now()
	events, err := s.eventRepo.List(ctx, domain.EventFilter{
		Namespace:       p.Namespace,
		PublishedOnly:   true,
		PublishedBefore: &now,
		IDs:             p.EventIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("list plugin events: %w", err)
	}
	return p.OrderCurated(visibleOnly(events, now)), nil
}

func (s *pluginService) RenderUpcoming(ctx context.Context, id string) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	p, err := s.pluginRepo.GetUpcoming(ctx, id)
	if err != nil {
		return nil, err
	}
	key := "upcoming:" + p.ID
	var cached []*domain.Event
	if s.fromCache(ctx, key, &cached) {
		return cached, nil
	}

	now := s.clock.now()
	filter := domain.EventFilter{Namespace: p.Namespace, PublishedOnly: true, PublishedBefore: &now}
	events, err := s.eventRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list upcoming events: %w", err)
	}
	domain.SortCanonical(events)
	selected := p.SelectUpcoming(events, now, s.clock.location())
	s.toCache(ctx, key, selected, p.CacheTTL())
	return selected, nil
}

func (s *pluginService) RenderCalendar(ctx context.Context, id, language string, year int, month time.Month) ([]domain.CalendarDay, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	p, err := s.pluginRepo.GetCalendar(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.ValidDate(year, month, 1) {
		return nil, fmt.Errorf("%w: invalid month %d-%d", domain.ErrInvalidInput, year, month)
	}
	key := fmt.Sprintf("calendar:%s:%s:%04d-%02d", p.ID, language, year, month)
	var cached []domain.CalendarDay
	if s.fromCache(ctx, key, &cached) {
		return cached, nil
	}

	now := s.clock.now()
	w := domain.MonthWindow(year, month)
	events, err := s.eventRepo.List(ctx, domain.EventFilter{
		Namespace:       p.Namespace,
		PublishedOnly:   true,
		PublishedBefore: &now,
		Window:          &w,
	})
	if err != nil {
		return nil, fmt.Errorf("list calendar events: %w", err)
	}
	days := domain.BuildCalendar(domain.FilterWindow(visibleOnly(events, now), w), w, language, s.defaultLanguage)
	s.toCache(ctx, key, days, p.CacheTTL())
	return days, nil
}

// checkStyle defaults an empty style to standard and rejects styles the namespace does not offer.
func (s *pluginService) checkStyle(namespace string, style *string) error {
	ns, ok := s.namespaces.Lookup(namespace)
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownNamespace, namespace)
	}
	if *style == "" {
		*style = domain.StyleStandard
	}
	if !ns.AllowsStyle(*style) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidStyle, *style)
	}
	return nil
}

// Cache failures never fail a render; they are logged and the plugin is computed fresh.
func (s *pluginService) fromCache(ctx context.Context, key string, dst any) bool {
	raw, hit, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.WarnContext(ctx, "plugin cache read failed", "key", key, "err", err)
		return false
	}
	if !hit {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.logger.WarnContext(ctx, "plugin cache entry unreadable", "key", key, "err", err)
		return false
	}
	return true
}

func (s *pluginService) toCache(ctx context.Context, key string, v any, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		s.logger.WarnContext(ctx, "plugin cache encode failed", "key", key, "err", err)
		return
	}
	if err := s.cache.Set(ctx, key, raw, ttl); err != nil {
		s.logger.WarnContext(ctx, "plugin cache write failed", "key", key, "err", err)
	}
}
