package controllers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"eventlisting/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	err error

	listResult    []*domain.Event
	archiveResult []*domain.Event
	detail        *domain.EventDetail
	calendar      []domain.CalendarDay
	page          []*domain.Event
	total         int
	byID          map[string]*domain.Event

	lastNamespace string
	lastLanguage  string
	lastWindow    *domain.Window
	lastArchive   bool
	lastYear      int
	lastMonth     time.Month
	lastSlug      string
	lastParams    domain.PaginationParams
	created       *domain.Event
	updated       *domain.Event
	deletedID     string
}

func (f *fakeEventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	event.ID = "3f1c2e6a-1b7d-4c1e-9a55-0c7e2d9b8a01"
	f.created = event
	return nil
}

func (f *fakeEventService) UpdateEvent(ctx context.Context, event *domain.Event) error {
	f.updated = event
	return f.err
}

func (f *fakeEventService) DeleteEvent(ctx context.Context, id string) error {
	f.deletedID = id
	return f.err
}

func (f *fakeEventService) GetEventByID(ctx context.Context, id string) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	if e, ok := f.byID[id]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventService) ListAllEvents(ctx context.Context, namespace string, params domain.PaginationParams) ([]*domain.Event, int, error) {
	f.lastNamespace, f.lastParams = namespace, params
	return f.page, f.total, f.err
}

func (f *fakeEventService) ListEvents(ctx context.Context, namespace string, window *domain.Window) ([]*domain.Event, error) {
	f.lastNamespace, f.lastWindow = namespace, window
	return f.listResult, f.err
}

func (f *fakeEventService) ListArchive(ctx context.Context, namespace string, window *domain.Window) ([]*domain.Event, error) {
	f.lastNamespace, f.lastWindow, f.lastArchive = namespace, window, true
	return f.archiveResult, f.err
}

func (f *fakeEventService) CalendarDates(ctx context.Context, namespace, language string, year int, month time.Month) ([]domain.CalendarDay, error) {
	f.lastNamespace, f.lastLanguage, f.lastYear, f.lastMonth = namespace, language, year, month
	return f.calendar, f.err
}

func (f *fakeEventService) GetEventDetail(ctx context.Context, namespace, language, slug string) (*domain.EventDetail, error) {
	f.lastNamespace, f.lastLanguage, f.lastSlug = namespace, language, slug
	if f.err != nil {
		return nil, f.err
	}
	if f.detail == nil {
		return nil, domain.ErrNotFound
	}
	return f.detail, nil
}

// fakeRegistrationService implements domain.RegistrationService.
type fakeRegistrationService struct {
	err        error
	event      *domain.Event
	registered map[string]bool // eventID/registrationID
	lastReg    *domain.Registration
	lastSlug   string
	list       []*domain.Registration
}

func (f *fakeRegistrationService) Register(ctx context.Context, namespace, slug string, reg *domain.Registration) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	reg.ID = "reg-1"
	reg.EventID = f.event.ID
	f.lastReg, f.lastSlug = reg, slug
	return f.event, nil
}

func (f *fakeRegistrationService) IsRegistered(ctx context.Context, eventID, registrationID string) (bool, error) {
	return f.registered[eventID+"/"+registrationID], nil
}

func (f *fakeRegistrationService) ListRegistrations(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	return f.list, f.err
}

// fakeMarker signs tokens as "marker:<event>:<registration>".
type fakeMarker struct{}

func (fakeMarker) Issue(eventID, registrationID string) (string, error) {
	return "marker:" + eventID + ":" + registrationID, nil
}

func (fakeMarker) Verify(token, eventID string) (string, error) {
	prefix := "marker:" + eventID + ":"
	if !strings.HasPrefix(token, prefix) {
		return "", errors.New("bad marker")
	}
	return strings.TrimPrefix(token, prefix), nil
}

// fakeFeed writes one line per event.
type fakeFeed struct {
	err error
}

func (f fakeFeed) Write(w io.Writer, name, language string, events []*domain.Event) error {
	if f.err != nil {
		return f.err
	}
	fmt.Fprintf(w, "BEGIN:VCALENDAR %s %s\n", name, language)
	for _, e := range events {
		fmt.Fprintf(w, "UID:%s\n", e.ID)
	}
	return nil
}

type fakeAuthService struct {
	token string
	err   error
}

func (f *fakeAuthService) SignUp(ctx context.Context, email, password, name, lastName string) (*domain.User, error) {
	return nil, errors.New("not used")
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (string, error) {
	return f.token, f.err
}

type fakeCoordinatorService struct {
	err     error
	created *domain.EventCoordinator
	byID    map[string]*domain.EventCoordinator
}

func (f *fakeCoordinatorService) CreateCoordinator(ctx context.Context, c *domain.EventCoordinator) error {
	if f.err != nil {
		return f.err
	}
	c.ID = "8d2b4c1e-0f3a-4b5c-8d7e-1a2b3c4d5e6f"
	f.created = c
	return nil
}

func (f *fakeCoordinatorService) GetCoordinator(ctx context.Context, id string) (*domain.EventCoordinator, error) {
	if c, ok := f.byID[id]; ok {
		return c, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCoordinatorService) DeleteCoordinator(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakePluginService struct {
	err          error
	events       []*domain.Event
	calendar     []domain.CalendarDay
	lastUpcoming *domain.UpcomingPluginItem
	lastList     *domain.EventListPlugin
	lastID       string
	lastLanguage string
	lastYear     int
	lastMonth    time.Month
}

func (f *fakePluginService) CreateListPlugin(ctx context.Context, p *domain.EventListPlugin) error {
	f.lastList = p
	return f.err
}

func (f *fakePluginService) CreateUpcomingPlugin(ctx context.Context, p *domain.UpcomingPluginItem) error {
	f.lastUpcoming = p
	return f.err
}

func (f *fakePluginService) CreateCalendarPlugin(ctx context.Context, p *domain.EventCalendarPlugin) error {
	return f.err
}

func (f *fakePluginService) RenderList(ctx context.Context, id string) ([]*domain.Event, error) {
	f.lastID = id
	return f.events, f.err
}

func (f *fakePluginService) RenderUpcoming(ctx context.Context, id string) ([]*domain.Event, error) {
	f.lastID = id
	return f.events, f.err
}

func (f *fakePluginService) RenderCalendar(ctx context.Context, id, language string, year int, month time.Month) ([]domain.CalendarDay, error) {
	f.lastID, f.lastLanguage, f.lastYear, f.lastMonth = id, language, year, month
	return f.calendar, f.err
}

func testEvent(id, lang, title, slug string, start domain.Date) *domain.Event {
	return &domain.Event{
		ID:          id,
		Namespace:   "news",
		StartDate:   start,
		IsPublished: true,
		Translations: domain.Translations{
			lang: {Title: title, Slug: slug},
		},
	}
}
