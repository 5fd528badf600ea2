package feed

import (
	"strings"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventlisting/internal/domain"
)

func TestICalExporter_Write(t *testing.T) {
	created := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	start := domain.TimeOfDay{Hour: 19}
	end := domain.TimeOfDay{Hour: 22, Minute: 30}
	multiEnd := domain.NewDate(2024, time.March, 12)

	events := []*domain.Event{
		{
			ID:           "ev-1",
			Namespace:    "events",
			Translations: domain.Translations{"en": {Title: "Jazz night", Slug: "jazz-night", Location: "Town hall"}},
			StartDate:    domain.NewDate(2024, time.March, 10),
			StartTime:    &start,
			EndDate:      ptr(domain.NewDate(2024, time.March, 10)),
			EndTime:      &end,
			CreatedAt:    created,
			UpdatedAt:    created,
		},
		{
			ID:           "ev-2",
			Namespace:    "events",
			Translations: domain.Translations{"en": {Title: "Fair", Slug: "fair"}},
			StartDate:    domain.NewDate(2024, time.March, 10),
			EndDate:      &multiEnd,
			DetailLink:   "https://example.com/fair",
			CreatedAt:    created,
			UpdatedAt:    created,
		},
	}

	x := &ICalExporter{
		Location:        time.UTC,
		DefaultLanguage: "en",
		DetailURL: func(namespace, slug string) string {
			return "https://example.com/events/" + namespace + "/" + slug + "/"
		},
		Now: func() time.Time { return created },
	}

	var sb strings.Builder
	require.NoError(t, x.Write(&sb, "Events", "en", events))
	out := sb.String()
	assert.Contains(t, out, "PRODID:"+productID)
	assert.Contains(t, out, "X-WR-CALNAME:Events")

	cal, err := ics.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)
	parsed := cal.Events()
	require.Len(t, parsed, 2)

	assert.Equal(t, "ev-1@eventlisting", parsed[0].Id())
	assert.Equal(t, "Jazz night", parsed[0].GetProperty(ics.ComponentPropertySummary).Value)
	assert.Equal(t, "Town hall", parsed[0].GetProperty(ics.ComponentPropertyLocation).Value)
	assert.Equal(t, "https://example.com/events/events/jazz-night/", parsed[0].GetProperty(ics.ComponentPropertyUrl).Value)
	gotStart, err := parsed[0].GetStartAt()
	require.NoError(t, err)
	assert.True(t, gotStart.Equal(time.Date(2024, 3, 10, 19, 0, 0, 0, time.UTC)))

	dtStart := parsed[1].GetProperty(ics.ComponentPropertyDtStart)
	require.NotNil(t, dtStart)
	assert.Equal(t, "20240310", dtStart.Value)
	assert.Equal(t, "20240313", parsed[1].GetProperty(ics.ComponentPropertyDtEnd).Value)
	assert.Equal(t, "https://example.com/fair", parsed[1].GetProperty(ics.ComponentPropertyUrl).Value)
}

func ptr[T any](v T) *T { return &v }
