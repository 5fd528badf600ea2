package controllers

import (
	"time"

	"eventlisting/internal/domain"
)

// EventItem is an event rendered in one language for list and plugin responses.
type EventItem struct {
	ID                 string            `json:"id"`
	Language           string            `json:"language"`
	Title              string            `json:"title"`
	Slug               string            `json:"slug"`
	ShortDescription   string            `json:"short_description"`
	Location           string            `json:"location"`
	LocationLat        *float64          `json:"location_lat,omitempty"`
	LocationLng        *float64          `json:"location_lng,omitempty"`
	StartDate          domain.Date       `json:"start_date"`
	StartTime          *domain.TimeOfDay `json:"start_time"`
	EndDate            *domain.Date      `json:"end_date"`
	EndTime            *domain.TimeOfDay `json:"end_time"`
	Span               domain.Span       `json:"span"`
	DetailLink         string            `json:"detail_link"`
	RegisterLink       string            `json:"register_link"`
	EnableRegistration bool              `json:"enable_registration"`
}

// localizer renders events in the requested language with a fallback.
type localizer struct {
	language string
	fallback string
	location *time.Location
}

func (l localizer) item(e *domain.Event) EventItem {
	tr, lang, _ := e.Translations.Get(l.language, l.fallback)
	return EventItem{
		ID:                 e.ID,
		Language:           lang,
		Title:              tr.Title,
		Slug:               tr.Slug,
		ShortDescription:   tr.ShortDescription,
		Location:           tr.Location,
		LocationLat:        tr.LocationLat,
		LocationLng:        tr.LocationLng,
		StartDate:          e.StartDate,
		StartTime:          e.StartTime,
		EndDate:            e.EndDate,
		EndTime:            e.EndTime,
		Span:               e.Span(l.location),
		DetailLink:         e.DetailLink,
		RegisterLink:       e.RegisterLink,
		EnableRegistration: e.EnableRegistration,
	}
}

func (l localizer) items(events []*domain.Event) []EventItem {
	out := make([]EventItem, 0, len(events))
	for _, e := range events {
		out = append(out, l.item(e))
	}
	return out
}
