package domain

import "time"

// Visible reports whether the event is published and its publication time has come.
// Invisible events belong to neither the upcoming nor the past partition.
func Visible(e *Event, now time.Time) bool {
	return e.IsPublished && !e.PublishAt.After(now)
}

// IsUpcoming reports whether a visible event has not finished at now. Date-only
// ends last until the end of that day.
func IsUpcoming(e *Event, now time.Time, loc *time.Location) bool {
	return Visible(e, now) && endsAtOrAfter(e, now, loc)
}

// IsPast reports whether a visible event finished strictly before now.
func IsPast(e *Event, now time.Time, loc *time.Location) bool {
	return Visible(e, now) && !endsAtOrAfter(e, now, loc)
}

// partitionBound is the moment compared against now: end_at, or start_at
// when the event has neither end date nor end time.
func partitionBound(e *Event, loc *time.Location) Moment {
	if e.EndDate == nil && e.EndTime == nil {
		return e.StartAt(loc)
	}
	return e.EndAt(loc)
}

func endsAtOrAfter(e *Event, now time.Time, loc *time.Location) bool {
	end := partitionBound(e, loc)
	if end.HasTime {
		return !end.At.Before(now)
	}
	return now.Before(end.Bound())
}

// Partition splits events into upcoming and past, preserving input order.
func Partition(events []*Event, now time.Time, loc *time.Location) (upcoming, past []*Event) {
	upcoming = make([]*Event, 0, len(events))
	past = make([]*Event, 0)
	for _, e := range events {
		switch {
		case IsUpcoming(e, now, loc):
			upcoming = append(upcoming, e)
		case IsPast(e, now, loc):
			past = append(past, e)
		}
	}
	return upcoming, past
}

// Window is a half-open calendar range [Start, End).
type Window struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
}

// YearWindow covers the whole year.
func YearWindow(year int) Window {
	return Window{Start: NewDate(year, time.January, 1), End: NewDate(year+1, time.January, 1)}
}

// MonthWindow covers the whole month.
func MonthWindow(year int, month time.Month) Window {
	start := NewDate(year, month, 1)
	return Window{Start: start, End: NewDate(year, month+1, 1)}
}

// DayWindow covers a single day.
func DayWindow(year int, month time.Month, day int) Window {
	start := NewDate(year, month, day)
	return Window{Start: start, End: start.AddDays(1)}
}

// Overlaps reports whether the event's [start_date, effective_end_date] span
// intersects the window. Multi-day events appear in every window they touch.
func (w Window) Overlaps(e *Event) bool {
	return e.StartDate.Before(w.End) && !e.EffectiveEndDate().Before(w.Start)
}

// Days lists every date inside the window.
func (w Window) Days() []Date {
	var out []Date
	for d := w.Start; d.Before(w.End); d = d.AddDays(1) {
		out = append(out, d)
	}
	return out
}

// FilterWindow keeps the events overlapping w, preserving order.
func FilterWindow(events []*Event, w Window) []*Event {
	out := make([]*Event, 0, len(events))
	for _, e := range events {
		if w.Overlaps(e) {
			out = append(out, e)
		}
	}
	return out
}

// ValidDate reports whether year/month/day name a real calendar date.
func ValidDate(year int, month time.Month, day int) bool {
	if month < time.January || month > time.December || day < 1 {
		return false
	}
	d := NewDate(year, month, day)
	return d.Year == year && d.Month == month && d.Day == day
}
