package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventlisting/internal/domain"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() Clock {
	return Clock{Location: time.UTC, Now: func() time.Time { return testNow }}
}

func testNamespaces() domain.Namespaces {
	return domain.Namespaces{
		"events":  {Name: "events", AppTitle: "Events", Styles: []string{domain.StyleStandard, "compact"}},
		"reverse": {Name: "reverse", AppTitle: "Reverse", LatestFirst: true, Styles: []string{domain.StyleStandard}},
	}
}

func day(t *testing.T, s string) domain.Date {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func clockAt(h, m int) *domain.TimeOfDay {
	return &domain.TimeOfDay{Hour: h, Minute: m}
}

// published returns a visible event in namespace "events" with an English translation.
func published(t *testing.T, id, start string) *domain.Event {
	return &domain.Event{
		ID:           id,
		Namespace:    "events",
		Translations: domain.Translations{"en": {Title: "Title " + id, Slug: "slug-" + id}},
		StartDate:    day(t, start),
		IsPublished:  true,
		PublishAt:    testNow.Add(-24 * time.Hour),
		CreatedAt:    testNow.Add(-48 * time.Hour),
	}
}

func ids(events []*domain.Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}

func newTestEventService(repo *fakeEventRepo, coords *fakeCoordinatorRepo) domain.EventService {
	if coords == nil {
		coords = newFakeCoordinatorRepo()
	}
	return NewEventService(repo, coords, testNamespaces(), fixedClock(), "en", time.Second)
}

func TestEventService_CreateEvent(t *testing.T) {
	ctx := context.Background()
	end := domain.NewDate(2024, time.March, 9)

	tests := []struct {
		name     string
		event    *domain.Event
		repoErr  error
		wantKind domain.ValidationKind
		wantErr  error
	}{
		{
			name:  "valid",
			event: &domain.Event{Namespace: "events", StartDate: domain.NewDate(2024, time.March, 10)},
		},
		{
			name:     "end before start is not persisted",
			event:    &domain.Event{Namespace: "events", StartDate: domain.NewDate(2024, time.March, 10), EndDate: &end},
			wantKind: domain.KindEndBeforeStart,
		},
		{
			name: "registration link and internal registration",
			event: &domain.Event{
				Namespace:          "events",
				StartDate:          domain.NewDate(2024, time.March, 10),
				EnableRegistration: true,
				RegisterLink:       "https://example.com",
			},
			wantKind: domain.KindRegistrationConflict,
		},
		{
			name:    "unknown namespace",
			event:   &domain.Event{Namespace: "nope", StartDate: domain.NewDate(2024, time.March, 10)},
			wantErr: domain.ErrUnknownNamespace,
		},
		{
			name:    "store error passes through",
			event:   &domain.Event{Namespace: "events", StartDate: domain.NewDate(2024, time.March, 10)},
			repoErr: errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeEventRepo()
			repo.err = tt.repoErr
			err := newTestEventService(repo, nil).CreateEvent(ctx, tt.event)

			switch {
			case tt.wantKind != "":
				var ve *domain.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, tt.wantKind, ve.Kind)
				assert.Empty(t, repo.byID)
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.repoErr != nil:
				require.ErrorIs(t, err, tt.repoErr)
			default:
				require.NoError(t, err)
				assert.NotEmpty(t, tt.event.ID)
				assert.Equal(t, testNow, tt.event.CreatedAt)
				assert.Equal(t, testNow, tt.event.PublishAt)
			}
		})
	}
}

func TestEventService_UpdateEvent(t *testing.T) {
	ctx := context.Background()
	existing := published(t, "ev-1", "2024-07-01")
	repo := newFakeEventRepo(existing)
	svc := newTestEventService(repo, nil)

	update := &domain.Event{
		ID:        "ev-1",
		Namespace: "reverse",
		StartDate: day(t, "2024-07-02"),
		StartTime: clockAt(10, 0),
		EndDate:   ptrDate(day(t, "2024-07-02")),
		EndTime:   clockAt(12, 0),
	}
	require.NoError(t, svc.UpdateEvent(ctx, update))
	require.NotNil(t, repo.updated)
	assert.Equal(t, "events", repo.updated.Namespace)
	assert.Equal(t, existing.CreatedAt, repo.updated.CreatedAt)
	assert.Equal(t, testNow, repo.updated.UpdatedAt)

	bad := &domain.Event{ID: "ev-1", StartDate: day(t, "2024-07-02"), EndDate: ptrDate(day(t, "2024-07-02"))}
	var ve *domain.ValidationError
	require.ErrorAs(t, svc.UpdateEvent(ctx, bad), &ve)
	assert.Equal(t, domain.KindSameDayTimesRequired, ve.Kind)

	require.ErrorIs(t, svc.UpdateEvent(ctx, &domain.Event{ID: "missing"}), domain.ErrNotFound)
}

func ptrDate(d domain.Date) *domain.Date { return &d }

func TestEventService_ListEvents(t *testing.T) {
	ctx := context.Background()

	pastEvent := published(t, "past", "2024-06-01")
	endedToday := published(t, "ended-today", "2024-06-15")
	endedToday.StartTime = clockAt(8, 0)
	endedToday.EndDate = ptrDate(day(t, "2024-06-15"))
	endedToday.EndTime = clockAt(10, 0)
	allDayToday := published(t, "all-day-today", "2024-06-15")
	startedToday := published(t, "started-today", "2024-06-15")
	startedToday.StartTime = clockAt(9, 0)
	running := published(t, "running", "2024-06-10")
	running.EndDate = ptrDate(day(t, "2024-06-20"))
	future := published(t, "future", "2024-07-01")
	scheduled := published(t, "scheduled", "2024-06-20")
	scheduled.PublishAt = testNow.Add(time.Hour)
	draft := published(t, "draft", "2024-06-20")
	draft.IsPublished = false
	other := published(t, "other", "2024-06-20")
	other.Namespace = "reverse"

	repo := newFakeEventRepo(pastEvent, endedToday, allDayToday, startedToday, running, future, scheduled, draft, other)
	svc := newTestEventService(repo, nil)

	got, err := svc.ListEvents(ctx, "events", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"running", "all-day-today", "future"}, ids(got))

	june := domain.MonthWindow(2024, time.June)
	got, err = svc.ListEvents(ctx, "events", &june)
	require.NoError(t, err)
	assert.Equal(t, []string{"past", "running", "all-day-today", "ended-today", "started-today"}, ids(got))

	_, err = svc.ListEvents(ctx, "unknown", nil)
	require.ErrorIs(t, err, domain.ErrUnknownNamespace)
}

func TestEventService_ListEvents_LatestFirst(t *testing.T) {
	a := published(t, "a", "2024-07-01")
	b := published(t, "b", "2024-08-01")
	a.Namespace, b.Namespace = "reverse", "reverse"
	svc := newTestEventService(newFakeEventRepo(a, b), nil)

	got, err := svc.ListEvents(context.Background(), "reverse", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, ids(got))
}

func TestEventService_ListArchive(t *testing.T) {
	ctx := context.Background()

	may := published(t, "may", "2024-05-10")
	june := published(t, "june", "2024-06-01")
	endedToday := published(t, "ended-today", "2024-06-15")
	endedToday.StartTime = clockAt(8, 0)
	endedToday.EndDate = ptrDate(day(t, "2024-06-15"))
	endedToday.EndTime = clockAt(10, 0)
	startedToday := published(t, "started-today", "2024-06-15")
	startedToday.StartTime = clockAt(9, 0)
	startsLater := published(t, "starts-later", "2024-06-15")
	startsLater.StartTime = clockAt(18, 0)
	today := published(t, "today", "2024-06-15")
	future := published(t, "future", "2024-07-01")

	svc := newTestEventService(newFakeEventRepo(may, june, endedToday, startedToday, startsLater, today, future), nil)

	got, err := svc.ListArchive(ctx, "events", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"may", "june", "ended-today", "started-today"}, ids(got))

	w := domain.MonthWindow(2024, time.June)
	got, err = svc.ListArchive(ctx, "events", &w)
	require.NoError(t, err)
	assert.Equal(t, []string{"june", "ended-today", "started-today"}, ids(got))

	y := domain.YearWindow(2023)
	got, err = svc.ListArchive(ctx, "events", &y)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEventService_CalendarDates(t *testing.T) {
	ctx := context.Background()
	multi := published(t, "multi", "2024-05-30")
	multi.EndDate = ptrDate(day(t, "2024-06-02"))
	multi.Translations["de"] = domain.Translation{Title: "Mehrtägig", Slug: "mehrtaegig"}
	single := published(t, "single", "2024-06-02")
	july := published(t, "july", "2024-07-01")

	svc := newTestEventService(newFakeEventRepo(multi, single, july), nil)

	days, err := svc.CalendarDates(ctx, "events", "de", 2024, time.June)
	require.NoError(t, err)
	require.Len(t, days, 30)
	assert.Equal(t, day(t, "2024-06-01"), days[0].Date)
	require.Len(t, days[0].Events, 1)
	assert.Equal(t, "Mehrtägig", days[0].Events[0].Title)
	require.Len(t, days[1].Events, 2)
	assert.Equal(t, "Title single", days[1].Events[1].Title)
	assert.Empty(t, days[2].Events)

	_, err = svc.CalendarDates(ctx, "events", "en", 2024, 13)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEventService_GetEventDetail(t *testing.T) {
	ctx := context.Background()
	deadline := testNow.Add(24 * time.Hour)
	e := published(t, "ev-1", "2024-07-01")
	e.EnableRegistration = true
	e.RegistrationDeadlineAt = &deadline
	e.Translations["de"] = domain.Translation{Title: "Konzert", Slug: "konzert"}
	hidden := published(t, "hidden", "2024-07-01")
	hidden.PublishAt = testNow.Add(time.Hour)

	coords := newFakeCoordinatorRepo()
	coords.byEvent["ev-1"] = []*domain.EventCoordinator{{ID: "c1", Email: "c@example.com"}}
	svc := newTestEventService(newFakeEventRepo(e, hidden), coords)

	detail, err := svc.GetEventDetail(ctx, "events", "de", "konzert")
	require.NoError(t, err)
	assert.Equal(t, "de", detail.Language)
	assert.True(t, detail.RegistrationOpen)
	assert.False(t, detail.RegistrationDeadlinePassed)
	assert.True(t, detail.Span.TakesSingleDay)
	assert.Len(t, detail.Coordinators, 1)

	detail, err = svc.GetEventDetail(ctx, "events", "fr", "slug-ev-1")
	require.NoError(t, err)
	assert.Equal(t, "en", detail.Language)

	_, err = svc.GetEventDetail(ctx, "events", "en", "slug-hidden")
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.GetEventDetail(ctx, "events", "en", "nothing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventService_ListAllEvents(t *testing.T) {
	var events []*domain.Event
	for _, d := range []string{"2024-01-01", "2024-02-01", "2024-03-01"} {
		e := published(t, d, d)
		e.IsPublished = d != "2024-02-01"
		events = append(events, e)
	}
	svc := newTestEventService(newFakeEventRepo(events...), nil)

	got, total, err := svc.ListAllEvents(context.Background(), "events", domain.PaginationParams{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, []string{"2024-03-01"}, ids(got))
}

func TestEventService_DeleteEvent(t *testing.T) {
	svc := newTestEventService(newFakeEventRepo(published(t, "ev-1", "2024-07-01")), nil)
	require.NoError(t, svc.DeleteEvent(context.Background(), "ev-1"))
	require.ErrorIs(t, svc.DeleteEvent(context.Background(), "ev-1"), domain.ErrNotFound)
	_, err := svc.GetEventByID(context.Background(), "ev-1")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
