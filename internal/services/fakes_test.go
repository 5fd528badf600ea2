package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"eventlisting/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeEventRepo is an in-memory EventRepository applying EventFilter like the SQL store.
type fakeEventRepo struct {
	byID    map[string]*domain.Event
	nextID  int
	err     error // if set, Create and List return this error
	listed  int
	updated *domain.Event
}

func newFakeEventRepo(events ...*domain.Event) *fakeEventRepo {
	f := &fakeEventRepo{byID: make(map[string]*domain.Event), nextID: 1}
	for _, e := range events {
		f.byID[e.ID] = e
	}
	return f
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	e.ID = fmt.Sprintf("ev-%d", f.nextID)
	f.nextID++
	f.byID[e.ID] = e
	return nil
}

func (f *fakeEventRepo) Update(ctx context.Context, e *domain.Event) error {
	if _, ok := f.byID[e.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[e.ID] = e
	f.updated = e
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if e, ok := f.byID[id]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) GetBySlug(ctx context.Context, namespace, language, slug string) (*domain.Event, error) {
	for _, e := range f.byID {
		if tr, ok := e.Translations[language]; ok && e.Namespace == namespace && tr.Slug == slug {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.listed++
	out := make([]*domain.Event, 0)
	for _, e := range f.byID {
		if matches(e, filter) {
			out = append(out, e)
		}
	}
	domain.SortCanonical(out)
	return out, nil
}

func (f *fakeEventRepo) Count(ctx context.Context, filter domain.EventFilter) (int, error) {
	events, err := f.List(ctx, filter)
	return len(events), err
}

func (f *fakeEventRepo) ListPage(ctx context.Context, filter domain.EventFilter, params domain.PaginationParams) ([]*domain.Event, error) {
	events, err := f.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	start := min(params.Offset(), len(events))
	end := min(start+params.PageSize, len(events))
	return events[start:end], nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func matches(e *domain.Event, f domain.EventFilter) bool {
	end := e.EffectiveEndDate()
	switch {
	case f.Namespace != "" && e.Namespace != f.Namespace:
		return false
	case f.PublishedOnly && !e.IsPublished:
		return false
	case f.PublishedBefore != nil && e.PublishAt.After(*f.PublishedBefore):
		return false
	case f.Window != nil && !f.Window.Overlaps(e):
		return false
	case f.EndsOnOrAfter != nil && end.Before(*f.EndsOnOrAfter):
		return false
	case f.EndsBefore != nil && !end.Before(*f.EndsBefore):
		return false
	}
	if f.IDs != nil {
		for _, id := range f.IDs {
			if id == e.ID {
				return true
			}
		}
		return false
	}
	return true
}

type fakeCoordinatorRepo struct {
	byID    map[string]*domain.EventCoordinator
	byEvent map[string][]*domain.EventCoordinator
	created []*domain.EventCoordinator
	err     error
}

func newFakeCoordinatorRepo() *fakeCoordinatorRepo {
	return &fakeCoordinatorRepo{
		byID:    map[string]*domain.EventCoordinator{},
		byEvent: map[string][]*domain.EventCoordinator{},
	}
}

func (f *fakeCoordinatorRepo) Create(ctx context.Context, c *domain.EventCoordinator) error {
	c.ID = fmt.Sprintf("coord-%d", len(f.created)+1)
	f.created = append(f.created, c)
	f.byID[c.ID] = c
	return nil
}

func (f *fakeCoordinatorRepo) GetByID(ctx context.Context, id string) (*domain.EventCoordinator, error) {
	if c, ok := f.byID[id]; ok {
		return c, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCoordinatorRepo) ListByEventID(ctx context.Context, eventID string) ([]*domain.EventCoordinator, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := f.byEvent[eventID]
	if out == nil {
		out = []*domain.EventCoordinator{}
	}
	return out, nil
}

func (f *fakeCoordinatorRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeRegistrationRepo struct {
	byID map[string]*domain.Registration
	err  error
}

func newFakeRegistrationRepo() *fakeRegistrationRepo {
	return &fakeRegistrationRepo{byID: map[string]*domain.Registration{}}
}

func (f *fakeRegistrationRepo) Create(ctx context.Context, reg *domain.Registration) error {
	if f.err != nil {
		return f.err
	}
	reg.ID = fmt.Sprintf("reg-%d", len(f.byID)+1)
	f.byID[reg.ID] = reg
	return nil
}

func (f *fakeRegistrationRepo) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	if f.err != nil {
		return nil, f.err
	}
	if r, ok := f.byID[id]; ok {
		return r, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRegistrationRepo) ListByEventID(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	out := make([]*domain.Registration, 0)
	for _, r := range f.byID {
		if r.EventID == eventID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	byEmail map[string]*domain.User
	created []*domain.User
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	f := &fakeUserRepo{byEmail: map[string]*domain.User{}}
	for _, u := range users {
		f.byEmail[u.Email] = u
	}
	return f
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return domain.ErrInvalidInput
	}
	u.ID = fmt.Sprintf("user-%d", len(f.created)+1)
	f.created = append(f.created, u)
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

type fakeEmailService struct {
	confirmations []*domain.RegistrationEmailData
	notifications []*domain.CoordinatorEmailData
	err           error
}

func (f *fakeEmailService) SendRegistrationConfirmation(ctx context.Context, data *domain.RegistrationEmailData) error {
	f.confirmations = append(f.confirmations, data)
	return f.err
}

func (f *fakeEmailService) SendCoordinatorNotification(ctx context.Context, data *domain.CoordinatorEmailData) error {
	f.notifications = append(f.notifications, data)
	return f.err
}

type fakePluginRepo struct {
	lists     map[string]*domain.EventListPlugin
	upcoming  map[string]*domain.UpcomingPluginItem
	calendars map[string]*domain.EventCalendarPlugin
}

func newFakePluginRepo() *fakePluginRepo {
	return &fakePluginRepo{
		lists:     map[string]*domain.EventListPlugin{},
		upcoming:  map[string]*domain.UpcomingPluginItem{},
		calendars: map[string]*domain.EventCalendarPlugin{},
	}
}

func (f *fakePluginRepo) CreateList(ctx context.Context, p *domain.EventListPlugin) error {
	p.ID = fmt.Sprintf("list-%d", len(f.lists)+1)
	f.lists[p.ID] = p
	return nil
}

func (f *fakePluginRepo) GetList(ctx context.Context, id string) (*domain.EventListPlugin, error) {
	if p, ok := f.lists[id]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakePluginRepo) CreateUpcoming(ctx context.Context, p *domain.UpcomingPluginItem) error {
	p.ID = fmt.Sprintf("upcoming-%d", len(f.upcoming)+1)
	f.upcoming[p.ID] = p
	return nil
}

func (f *fakePluginRepo) GetUpcoming(ctx context.Context, id string) (*domain.UpcomingPluginItem, error) {
	if p, ok := f.upcoming[id]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakePluginRepo) CreateCalendar(ctx context.Context, p *domain.EventCalendarPlugin) error {
	p.ID = fmt.Sprintf("calendar-%d", len(f.calendars)+1)
	f.calendars[p.ID] = p
	return nil
}

func (f *fakePluginRepo) GetCalendar(ctx context.Context, id string) (*domain.EventCalendarPlugin, error) {
	if p, ok := f.calendars[id]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

// memoryCache is a PluginCache keeping entries in a map; ttl is recorded, not enforced.
type memoryCache struct {
	data map[string][]byte
	ttl  map[string]time.Duration
	fail bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}, ttl: map[string]time.Duration{}}
}

func (m *memoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if m.fail {
		return nil, false, errors.New("cache down")
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.fail {
		return errors.New("cache down")
	}
	m.data[key] = value
	m.ttl[key] = ttl
	return nil
}
