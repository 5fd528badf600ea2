package domain

import (
	"sort"
	"strings"
)

// CompareCanonical orders events by (start_date, start_time, end_date, end_time)
// ascending. Absent values sort first in their slot. Ties fall back to creation
// time and then id so the order is total.
func CompareCanonical(a, b *Event) int {
	if c := a.StartDate.Compare(b.StartDate); c != 0 {
		return c
	}
	if c := compareOptionalTime(a.StartTime, b.StartTime); c != 0 {
		return c
	}
	if c := compareOptionalDate(a.EndDate, b.EndDate); c != 0 {
		return c
	}
	if c := compareOptionalTime(a.EndTime, b.EndTime); c != 0 {
		return c
	}
	if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
		return c
	}
	return strings.Compare(a.ID, b.ID)
}

func compareOptionalTime(a, b *TimeOfDay) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return a.Compare(*b)
}

func compareOptionalDate(a, b *Date) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return a.Compare(*b)
}

// SortCanonical sorts events in place in canonical order.
func SortCanonical(events []*Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return CompareCanonical(events[i], events[j]) < 0
	})
}

// Reverse reverses events in place.
func Reverse(events []*Event) {
	for i, j := 0, len(events)-1; i < j; i, j = i+1, j-1 {
		events[i], events[j] = events[j], events[i]
	}
}

// ForDisplay applies the namespace display order to a canonically sorted slice.
func ForDisplay(events []*Event, latestFirst bool) []*Event {
	if latestFirst {
		Reverse(events)
	}
	return events
}
