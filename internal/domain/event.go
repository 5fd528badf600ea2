package domain

import (
	"context"
	"time"
)

// Validation messages for the event validity rules.
const (
	ReasonEndBeforeStart       = "end date before start date"
	ReasonSameDayTimesRequired = "times required for same-day events"
	ReasonSameDayTimeOrder     = "start time must precede end time"
	ReasonRegistrationConflict = "mutually exclusive registration mechanisms"
	ReasonDeadlineRequired     = "deadline required"
)

// Event is a listed event inside a namespace.
// swagger:model Event
type Event struct {
	ID                     string       `json:"id"`
	Namespace              string       `json:"namespace"`
	Translations           Translations `json:"translations"`
	StartDate              Date         `json:"start_date"`
	StartTime              *TimeOfDay   `json:"start_time"`
	EndDate                *Date        `json:"end_date"`
	EndTime                *TimeOfDay   `json:"end_time"`
	IsPublished            bool         `json:"is_published"`
	PublishAt              time.Time    `json:"publish_at"`
	DetailLink             string       `json:"detail_link"`
	RegisterLink           string       `json:"register_link"`
	EnableRegistration     bool         `json:"enable_registration"`
	RegistrationDeadlineAt *time.Time   `json:"registration_deadline_at"`
	CoordinatorIDs         []string     `json:"coordinator_ids"`
	CreatedAt              time.Time    `json:"created_at"`
	UpdatedAt              time.Time    `json:"updated_at"`
}

// Validate checks the event's date span and registration settings. Rules are applied
// in order and the first violation is returned as a *ValidationError.
func (e *Event) Validate() error {
	if e.EndDate != nil {
		if e.EndDate.Before(e.StartDate) {
			return newValidationError(KindEndBeforeStart, ReasonEndBeforeStart)
		}
		if e.EndDate.Compare(e.StartDate) == 0 {
			if e.StartTime == nil || e.EndTime == nil {
				return newValidationError(KindSameDayTimesRequired, ReasonSameDayTimesRequired)
			}
			if !e.StartTime.Before(*e.EndTime) {
				return newValidationError(KindSameDayTimeOrder, ReasonSameDayTimeOrder)
			}
		}
	}
	if e.EnableRegistration && e.RegisterLink != "" {
		return newValidationError(KindRegistrationConflict, ReasonRegistrationConflict)
	}
	if e.EnableRegistration && e.RegistrationDeadlineAt == nil {
		return newValidationError(KindRegistrationDeadline, ReasonDeadlineRequired)
	}
	return nil
}

// EffectiveEndDate is EndDate when set, otherwise StartDate.
func (e *Event) EffectiveEndDate() Date {
	if e.EndDate != nil {
		return *e.EndDate
	}
	return e.StartDate
}

// Days is the number of calendar days the event touches. Assumes Validate passed.
func (e *Event) Days() int {
	return e.EffectiveEndDate().DaysSince(e.StartDate) + 1
}

func (e *Event) TakesSingleDay() bool {
	return e.Days() == 1
}

// Moment is a point on the event timeline. When HasTime is false only the date
// part of At is meaningful.
type Moment struct {
	At      time.Time `json:"at"`
	HasTime bool      `json:"has_time"`
}

// Date returns the calendar date of the moment.
func (m Moment) Date() Date {
	return DateOf(m.At)
}

// Bound returns the first instant after the moment: At itself when a time is
// set, otherwise midnight of the following day.
func (m Moment) Bound() time.Time {
	if m.HasTime {
		return m.At
	}
	return m.At.AddDate(0, 0, 1)
}

func moment(d Date, t *TimeOfDay, loc *time.Location) Moment {
	if t == nil {
		return Moment{At: d.In(loc)}
	}
	return Moment{At: t.On(d, loc), HasTime: true}
}

// StartAt combines StartDate and StartTime in loc.
func (e *Event) StartAt(loc *time.Location) Moment {
	return moment(e.StartDate, e.StartTime, loc)
}

// EndAt combines the effective end date and EndTime in loc.
func (e *Event) EndAt(loc *time.Location) Moment {
	return moment(e.EffectiveEndDate(), e.EndTime, loc)
}

// Span is the derived temporal summary of an event.
type Span struct {
	StartAt        Moment `json:"start_at"`
	EndAt          Moment `json:"end_at"`
	Days           int    `json:"days"`
	TakesSingleDay bool   `json:"takes_single_day"`
}

// Span computes the derived temporal properties of e in loc.
func (e *Event) Span(loc *time.Location) Span {
	days := e.Days()
	return Span{
		StartAt:        e.StartAt(loc),
		EndAt:          e.EndAt(loc),
		Days:           days,
		TakesSingleDay: days == 1,
	}
}

// RegistrationDeadlinePassed is true when no deadline is set or the deadline is
// not strictly after now. A missing deadline counts as closed.
func (e *Event) RegistrationDeadlinePassed(now time.Time) bool {
	return e.RegistrationDeadlineAt == nil || !e.RegistrationDeadlineAt.After(now)
}

// RegistrationOpen reports whether visitors may register through the built-in
// registration system at now.
func (e *Event) RegistrationOpen(now time.Time) bool {
	return e.EnableRegistration && !e.RegistrationDeadlinePassed(now)
}

// EventFilter narrows repository queries. Zero values mean "no constraint".
type EventFilter struct {
	Namespace     string
	PublishedOnly bool
	// PublishedBefore keeps events whose publish_at is at or before the instant.
	PublishedBefore *time.Time
	Window          *Window
	// EndsOnOrAfter / EndsBefore narrow on the effective end date so the store can
	// pre-filter upcoming and past candidates.
	EndsOnOrAfter *Date
	EndsBefore    *Date
	IDs           []string
}

// EventRepository defines storage for events. List returns events in canonical order.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	Update(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	GetBySlug(ctx context.Context, namespace, language, slug string) (*Event, error)
	List(ctx context.Context, filter EventFilter) ([]*Event, error)
	Count(ctx context.Context, filter EventFilter) (int, error)
	ListPage(ctx context.Context, filter EventFilter, params PaginationParams) ([]*Event, error)
	Delete(ctx context.Context, id string) error
}

// EventDetail is an event with its derived span and coordinators for display.
type EventDetail struct {
	Event                      *Event              `json:"event"`
	Language                   string              `json:"language"`
	Span                       Span                `json:"span"`
	RegistrationDeadlinePassed bool                `json:"is_registration_deadline_passed"`
	RegistrationOpen           bool                `json:"registration_open"`
	Coordinators               []*EventCoordinator `json:"coordinators"`
	Registered                 bool                `json:"registered"`
}

// CalendarEntry is the short form of an event shown in a calendar cell.
type CalendarEntry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// CalendarDay lists the events that touch a day of a month view.
type CalendarDay struct {
	Date   Date            `json:"date"`
	Events []CalendarEntry `json:"events"`
}

// EventService exposes the event read and write operations.
type EventService interface {
	CreateEvent(ctx context.Context, event *Event) error
	UpdateEvent(ctx context.Context, event *Event) error
	DeleteEvent(ctx context.Context, id string) error
	GetEventByID(ctx context.Context, id string) (*Event, error)
	ListAllEvents(ctx context.Context, namespace string, params PaginationParams) ([]*Event, int, error)
	ListEvents(ctx context.Context, namespace string, window *Window) ([]*Event, error)
	ListArchive(ctx context.Context, namespace string, window *Window) ([]*Event, error)
	CalendarDates(ctx context.Context, namespace, language string, year int, month time.Month) ([]CalendarDay, error)
	GetEventDetail(ctx context.Context, namespace, language, slug string) (*EventDetail, error)
}
