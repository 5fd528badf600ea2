package domain

// BuildCalendar returns one CalendarDay per date of w, each listing the events
// whose span covers that date, in the order events are given.
func BuildCalendar(events []*Event, w Window, language, fallback string) []CalendarDay {
	days := w.Days()
	out := make([]CalendarDay, 0, len(days))
	for _, d := range days {
		day := CalendarDay{Date: d, Events: []CalendarEntry{}}
		for _, e := range events {
			if d.Before(e.StartDate) || d.After(e.EffectiveEndDate()) {
				continue
			}
			tr, _, _ := e.Translations.Get(language, fallback)
			day.Events = append(day.Events, CalendarEntry{ID: e.ID, Title: tr.Title, Slug: tr.Slug})
		}
		out = append(out, day)
	}
	return out
}
