package feed

import (
	"io"
	"time"

	ics "github.com/arran4/golang-ical"

	"eventlisting/internal/domain"
)

const productID = "-//eventlisting//events feed//EN"

// ICalExporter renders event lists as iCalendar feeds.
type ICalExporter struct {
	Location        *time.Location
	DefaultLanguage string
	// DetailURL builds the absolute detail link for a slug; nil omits URL properties.
	DetailURL func(namespace, slug string) string
	Now       func() time.Time
}

// Write serializes events as a VCALENDAR named name. Date-only events become all-day
// entries with the exclusive DTEND iCalendar expects.
func (x *ICalExporter) Write(w io.Writer, name, language string, events []*domain.Event) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)
	cal.SetName(name)
	cal.SetXWRCalName(name)
	if x.Location != nil {
		cal.SetXWRTimezone(x.Location.String())
	}

	stamp := time.Now()
	if x.Now != nil {
		stamp = x.Now()
	}

	for _, e := range events {
		tr, _, _ := e.Translations.Get(language, x.DefaultLanguage)
		ve := cal.AddEvent(e.ID + "@eventlisting")
		ve.SetDtStampTime(stamp)
		ve.SetCreatedTime(e.CreatedAt)
		ve.SetModifiedAt(e.UpdatedAt)
		ve.SetSummary(tr.Title)
		if tr.ShortDescription != "" {
			ve.SetDescription(tr.ShortDescription)
		}
		if tr.Location != "" {
			ve.SetLocation(tr.Location)
		}
		switch {
		case e.DetailLink != "":
			ve.SetURL(e.DetailLink)
		case x.DetailURL != nil && tr.Slug != "":
			ve.SetURL(x.DetailURL(e.Namespace, tr.Slug))
		}

		start, end := e.StartAt(x.Location), e.EndAt(x.Location)
		if !start.HasTime && !end.HasTime {
			ve.SetAllDayStartAt(start.At)
			ve.SetAllDayEndAt(end.Bound())
			continue
		}
		ve.SetStartAt(start.At)
		ve.SetEndAt(end.Bound())
	}

	_, err := io.WriteString(w, cal.Serialize())
	return err
}
