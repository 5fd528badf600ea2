package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventlisting/internal/domain"
)

// Clock settings shared by the services that evaluate events against "now".
type Clock struct {
	// Location is the zone event dates and times are interpreted in.
	Location *time.Location
	// Now defaults to time.Now.
	Now func() time.Time
}

func (c Clock) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c Clock) location() *time.Location {
	if c.Location != nil {
		return c.Location
	}
	return time.UTC
}

// today is the current calendar date in the configured location.
func (c Clock) today(now time.Time) domain.Date {
	return domain.DateOf(now.In(c.location()))
}

type eventService struct {
	eventRepo       domain.EventRepository
	coordinatorRepo domain.EventCoordinatorRepository
	namespaces      domain.NamespaceRegistry
	clock           Clock
	defaultLanguage string
	contextTimeout  time.Duration
}

func NewEventService(
	eventRepo domain.EventRepository,
	coordinatorRepo domain.EventCoordinatorRepository,
	namespaces domain.NamespaceRegistry,
	clock Clock,
	defaultLanguage string,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:       eventRepo,
		coordinatorRepo: coordinatorRepo,
		namespaces:      namespaces,
		clock:           clock,
		defaultLanguage: defaultLanguage,
		contextTimeout:  timeout,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.namespace(event.Namespace); err != nil {
		return err
	}
	if err := event.Validate(); err != nil {
		return err
	}

	now := s.clock.now()
	event.CreatedAt = now
	event.UpdatedAt = now
	if event.PublishAt.IsZero() {
		event.PublishAt = now
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

// UpdateEvent replaces the stored event. CreatedAt and the namespace of the stored copy win.
func (s *eventService) UpdateEvent(ctx context.Context, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	existing, err := s.eventRepo.GetByID(ctx, event.ID)
	if err != nil {
		return err
	}
	event.Namespace = existing.Namespace
	event.CreatedAt = existing.CreatedAt
	if event.PublishAt.IsZero() {
		event.PublishAt = existing.PublishAt
	}
	if err := event.Validate(); err != nil {
		return err
	}
	event.UpdatedAt = s.clock.now()
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.eventRepo.Delete(ctx, id)
}

func (s *eventService) GetEventByID(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.eventRepo.GetByID(ctx, id)
}

// ListAllEvents is the editor view: every event of the namespace regardless of publication.
func (s *eventService) ListAllEvents(ctx context.Context, namespace string, params domain.PaginationParams) ([]*domain.Event, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	filter := domain.EventFilter{Namespace: namespace}
	total, err := s.eventRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count events: %w", err)
	}
	events, err := s.eventRepo.ListPage(ctx, filter, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	return events, total, nil
}

// ListEvents returns the upcoming events of a namespace, or every visible event overlapping
// window when one is given.
func (s *eventService) ListEvents(ctx context.Context, namespace string, window *domain.Window) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	ns, err := s.namespace(namespace)
	if err != nil {
		return nil, err
	}
	now := s.clock.now()
	filter := s.visibleFilter(namespace, &now)
	if window != nil {
		filter.Window = window
	} else {
		today := s.clock.today(now)
		filter.EndsOnOrAfter = &today
	}

	events, err := s.eventRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if window != nil {
		events = domain.FilterWindow(visibleOnly(events, now), *window)
	} else {
		events, _ = domain.Partition(events, now, s.clock.location())
	}
	domain.SortCanonical(events)
	return domain.ForDisplay(events, ns.LatestFirst), nil
}

// ListArchive returns the past events of a namespace, restricted to window when given.
func (s *eventService) ListArchive(ctx context.Context, namespace string, window *domain.Window) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	ns, err := s.namespace(namespace)
	if err != nil {
		return nil, err
	}
	now := s.clock.now()
	filter := s.visibleFilter(namespace, &now)
	// Events ending today may already be past when they carry an end time.
	tomorrow := s.clock.today(now).AddDays(1)
	filter.EndsBefore = &tomorrow
	filter.Window = window

	events, err := s.eventRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list archive: %w", err)
	}
	_, past := domain.Partition(events, now, s.clock.location())
	if window != nil {
		past = domain.FilterWindow(past, *window)
	}
	domain.SortCanonical(past)
	return domain.ForDisplay(past, ns.LatestFirst), nil
}

// CalendarDates lists every day of the month with the visible events taking place on it.
func (s *eventService) CalendarDates(ctx context.Context, namespace, language string, year int, month time.Month) ([]domain.CalendarDay, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.namespace(namespace); err != nil {
		return nil, err
	}
	if !domain.ValidDate(year, month, 1) {
		return nil, fmt.Errorf("%w: invalid month %d-%d", domain.ErrInvalidInput, year, month)
	}
	events, err := s.monthEvents(ctx, namespace, year, month)
	if err != nil {
		return nil, err
	}
	return domain.BuildCalendar(events, domain.MonthWindow(year, month), language, s.defaultLanguage), nil
}

func (s *eventService) monthEvents(ctx context.Context, namespace string, year int, month time.Month) ([]*domain.Event, error) {
	now := s.clock.now()
	w := domain.MonthWindow(year, month)
	filter := s.visibleFilter(namespace, &now)
	filter.Window = &w
	events, err := s.eventRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list month events: %w", err)
	}
	return domain.FilterWindow(visibleOnly(events, now), w), nil
}

// GetEventDetail resolves a slug in language, falling back to the default language.
// Events that are not visible are reported as not found.
func (s *eventService) GetEventDetail(ctx context.Context, namespace, language, slug string) (*domain.EventDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.namespace(namespace); err != nil {
		return nil, err
	}
	event, err := findBySlug(ctx, s.eventRepo, namespace, language, s.defaultLanguage, slug)
	if err != nil {
		return nil, err
	}
	now := s.clock.now()
	if !domain.Visible(event, now) {
		return nil, domain.ErrNotFound
	}
	coordinators, err := s.coordinatorRepo.ListByEventID(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("list coordinators: %w", err)
	}
	_, lang, _ := event.Translations.Get(language, s.defaultLanguage)
	return &domain.EventDetail{
		Event:                      event,
		Language:                   lang,
		Span:                       event.Span(s.clock.location()),
		RegistrationDeadlinePassed: event.RegistrationDeadlinePassed(now),
		RegistrationOpen:           event.RegistrationOpen(now),
		Coordinators:               coordinators,
	}, nil
}

func (s *eventService) namespace(name string) (*domain.Namespace, error) {
	ns, ok := s.namespaces.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownNamespace, name)
	}
	return ns, nil
}

func (s *eventService) visibleFilter(namespace string, now *time.Time) domain.EventFilter {
	return domain.EventFilter{
		Namespace:       namespace,
		PublishedOnly:   true,
		PublishedBefore: now,
	}
}

func findBySlug(ctx context.Context, repo domain.EventRepository, namespace, language, fallback, slug string) (*domain.Event, error) {
	event, err := repo.GetBySlug(ctx, namespace, language, slug)
	if errors.Is(err, domain.ErrNotFound) && fallback != "" && fallback != language {
		event, err = repo.GetBySlug(ctx, namespace, fallback, slug)
	}
	return event, err
}

func visibleOnly(events []*domain.Event, now time.Time) []*domain.Event {
	out := make([]*domain.Event, 0, len(events))
	for _, e := range events {
		if domain.Visible(e, now) {
			out = append(out, e)
		}
	}
	return out
}
