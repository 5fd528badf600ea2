package controllers

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"eventlisting/internal/adapters/auth"
	h "eventlisting/internal/delivery/http/helpers"
	"eventlisting/internal/domain"
)

// PublicPrefix is where namespaces are mounted: /events/{namespace}/...
const PublicPrefix = "/events/"

const markerCookiePrefix = "registration_"

// FeedWriter serializes events as an iCalendar document.
type FeedWriter interface {
	Write(w io.Writer, name, language string, events []*domain.Event) error
}

// RegistrationRequest is the request body for POST /events/{namespace}/{slug}/.
type RegistrationRequest struct {
	Salutation  string `json:"salutation" validate:"omitempty,oneof=female male"`
	Company     string `json:"company" validate:"max=100"`
	FirstName   string `json:"first_name" validate:"required,max=100"`
	LastName    string `json:"last_name" validate:"required,max=100"`
	Address     string `json:"address"`
	AddressZip  string `json:"address_zip" validate:"required,max=20"`
	AddressCity string `json:"address_city" validate:"required,max=100"`
	Phone       string `json:"phone" validate:"max=20"`
	Mobile      string `json:"mobile" validate:"max=20"`
	Email       string `json:"email" validate:"required,email"`
	Message     string `json:"message"`
}

func (req RegistrationRequest) registration(language string) *domain.Registration {
	salutation := domain.Salutation(req.Salutation)
	if salutation == "" {
		salutation = domain.SalutationFemale
	}
	return &domain.Registration{
		LanguageCode: language,
		Salutation:   salutation,
		Company:      strings.TrimSpace(req.Company),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Address:      strings.TrimSpace(req.Address),
		AddressZip:   strings.TrimSpace(req.AddressZip),
		AddressCity:  strings.TrimSpace(req.AddressCity),
		Phone:        strings.TrimSpace(req.Phone),
		Mobile:       strings.TrimSpace(req.Mobile),
		Email:        strings.TrimSpace(req.Email),
		Message:      req.Message,
	}
}

// EventListResponse is the data payload of the list and archive routes.
type EventListResponse struct {
	Namespace string         `json:"namespace"`
	AppTitle  string         `json:"app_title"`
	Window    *domain.Window `json:"window"`
	Events    []EventItem    `json:"events"`
}

// CalendarResponse is the data payload of the get-dates routes.
type CalendarResponse struct {
	Year  int                  `json:"year"`
	Month int                  `json:"month"`
	Days  []domain.CalendarDay `json:"days"`
}

// RegistrationStateResponse is returned by the registration reset route.
type RegistrationStateResponse struct {
	EventID    string `json:"event_id"`
	Registered bool   `json:"registered"`
}

// request is what a matched route sees.
type request struct {
	namespace *domain.Namespace
	language  string
	params    []string
}

type route struct {
	pattern *regexp.Regexp
	methods []string
	handle  func(w http.ResponseWriter, r *http.Request, req request)
}

var (
	readOnly  = []string{http.MethodGet, http.MethodHead}
	readWrite = []string{http.MethodGet, http.MethodHead, http.MethodPost}
)

// PublicController serves the visitor-facing routes of every namespace. Paths are matched
// against an ordered table and the first match wins, so fixed segments such as archive/
// and numeric dates shadow event slugs.
type PublicController struct {
	Logger          *slog.Logger
	Events          domain.EventService
	Registrations   domain.RegistrationService
	Marker          domain.RegistrationMarker
	Namespaces      domain.NamespaceRegistry
	Feed            FeedWriter
	DefaultLanguage string
	Location        *time.Location
	Now             func() time.Time

	routes []route
}

func NewPublicController(
	logger *slog.Logger,
	events domain.EventService,
	registrations domain.RegistrationService,
	marker domain.RegistrationMarker,
	namespaces domain.NamespaceRegistry,
	feed FeedWriter,
	defaultLanguage string,
	location *time.Location,
) *PublicController {
	c := &PublicController{
		Logger:          logger,
		Events:          events,
		Registrations:   registrations,
		Marker:          marker,
		Namespaces:      namespaces,
		Feed:            feed,
		DefaultLanguage: defaultLanguage,
		Location:        location,
		Now:             time.Now,
	}
	c.routes = []route{
		{regexp.MustCompile(`^$`), readOnly, c.listUpcoming},
		{regexp.MustCompile(`^get-dates/$`), readOnly, c.calendarDates},
		{regexp.MustCompile(`^get-dates/(\d+)/(\d+)/$`), readOnly, c.calendarDates},
		{regexp.MustCompile(`^archive/$`), readOnly, c.listArchive},
		{regexp.MustCompile(`^archive/(\d{4})/$`), readOnly, c.listArchive},
		{regexp.MustCompile(`^archive/(\d{4})/(\d{1,2})/$`), readOnly, c.listArchive},
		{regexp.MustCompile(`^feed\.ics$`), readOnly, c.feed},
		{regexp.MustCompile(`^(\d{4})/$`), readOnly, c.listWindow},
		{regexp.MustCompile(`^(\d{4})/(\d{1,2})/$`), readOnly, c.listWindow},
		{regexp.MustCompile(`^(\d{4})/(\d{1,2})/(\d{1,2})/$`), readOnly, c.listWindow},
		{regexp.MustCompile(`^([-\w]+)/reset/$`), readWrite, c.resetRegistration},
		{regexp.MustCompile(`^([-\w]+)/$`), readWrite, c.detail},
	}
	return c
}

func (c *PublicController) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, PublicPrefix)
	name, sub, found := strings.Cut(rest, "/")
	if !found {
		if name != "" {
			http.Redirect(w, r, r.URL.Path+"/", http.StatusMovedPermanently)
			return
		}
		h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "page not found")
		return
	}
	ns, ok := c.Namespaces.Lookup(name)
	if !ok {
		h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "unknown namespace")
		return
	}

	for _, rt := range c.routes {
		m := rt.pattern.FindStringSubmatch(sub)
		if m == nil {
			continue
		}
		if !slices.Contains(rt.methods, r.Method) {
			w.Header().Set("Allow", strings.Join(rt.methods, ", "))
			h.WriteJSONError(w, http.StatusMethodNotAllowed, h.ErrCodeMethodNotAllowed, "method not allowed")
			return
		}
		rt.handle(w, r, request{
			namespace: ns,
			language:  h.RequestLanguage(r, c.DefaultLanguage),
			params:    m[1:],
		})
		return
	}
	h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "page not found")
}

// listUpcoming godoc
// @Summary List upcoming events
// @Description Published events of the namespace that have not ended yet, in display order.
// @Tags public
// @Produce json
// @Param namespace path string true "Namespace"
// @Param language query string false "Content language"
// @Success 200 {object} helpers.APIResponse{data=controllers.EventListResponse}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{namespace}/ [get]
func (c *PublicController) listUpcoming(w http.ResponseWriter, r *http.Request, req request) {
	events, err := c.Events.ListEvents(r.Context(), req.namespace.Name, nil)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, c.listResponse(req, nil, events))
}

// listWindow godoc
// @Summary List events of a year, month or day
// @Tags public
// @Produce json
// @Param namespace path string true "Namespace"
// @Param year path int true "Year"
// @Param month path int false "Month"
// @Param day path int false "Day"
// @Success 200 {object} helpers.APIResponse{data=controllers.EventListResponse}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{namespace}/{year}/{month}/{day}/ [get]
func (c *PublicController) listWindow(w http.ResponseWriter, r *http.Request, req request) {
	window, ok := windowFromParams(req.params)
	if !ok {
		h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "invalid date")
		return
	}
	events, err := c.Events.ListEvents(r.Context(), req.namespace.Name, window)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, c.listResponse(req, window, events))
}

// listArchive godoc
// @Summary List past events
// @Tags public
// @Produce json
// @Param namespace path string true "Namespace"
// @Param year path int false "Year"
// @Param month path int false "Month"
// @Success 200 {object} helpers.APIResponse{data=controllers.EventListResponse}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{namespace}/archive/{year}/{month}/ [get]
func (c *PublicController) listArchive(w http.ResponseWriter, r *http.Request, req request) {
	window, ok := windowFromParams(req.params)
	if !ok {
		h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "invalid date")
		return
	}
	events, err := c.Events.ListArchive(r.Context(), req.namespace.Name, window)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, c.listResponse(req, window, events))
}

// calendarDates godoc
// @Summary Month calendar
// @Description Every day of the month with the visible events touching it. Defaults to the current month.
// @Tags public
// @Produce json
// @Param namespace path string true "Namespace"
// @Param year path int false "Year"
// @Param month path int false "Month"
// @Success 200 {object} helpers.APIResponse{data=controllers.CalendarResponse}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{namespace}/get-dates/{year}/{month}/ [get]
func (c *PublicController) calendarDates(w http.ResponseWriter, r *http.Request, req request) {
	now := c.now().In(c.location())
	year, month := now.Year(), now.Month()
	if len(req.params) == 2 {
		y, yerr := strconv.Atoi(req.params[0])
		m, merr := strconv.Atoi(req.params[1])
		year, month = y, time.Month(m)
		if yerr != nil || merr != nil || !domain.ValidDate(year, month, 1) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "invalid date")
			return
		}
	}
	days, err := c.Events.CalendarDates(r.Context(), req.namespace.Name, req.language, year, month)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, CalendarResponse{Year: year, Month: int(month), Days: days})
}

// feed godoc
// @Summary iCalendar feed of upcoming events
// @Tags public
// @Produce text/calendar
// @Param namespace path string true "Namespace"
// @Success 200 {string} string "VCALENDAR document"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{namespace}/feed.ics [get]
func (c *PublicController) feed(w http.ResponseWriter, r *http.Request, req request) {
	events, err := c.Events.ListEvents(r.Context(), req.namespace.Name, nil)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	var buf bytes.Buffer
	if err := c.Feed.Write(&buf, req.namespace.AppTitle, req.language, events); err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `inline; filename="`+req.namespace.Name+`.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// detail godoc
// @Summary Event detail
// @Description Resolves the slug in the request language, falling back to the default language.
// @Tags public
// @Produce json
// @Param namespace path string true "Namespace"
// @Param slug path string true "Event slug"
// @Success 200 {object} helpers.APIResponse{data=domain.EventDetail}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{namespace}/{slug}/ [get]
func (c *PublicController) detail(w http.ResponseWriter, r *http.Request, req request) {
	if r.Method == http.MethodPost {
		c.register(w, r, req)
		return
	}
	detail, err := c.Events.GetEventDetail(r.Context(), req.namespace.Name, req.language, req.params[0])
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	detail.Registered = c.registered(r, detail.Event.ID)
	h.WriteJSONSuccess(w, http.StatusOK, detail)
}

// register godoc
// @Summary Register for an event
// @Description Stores a visitor registration and sets a cookie marking this browser as registered.
// @Tags public
// @Accept json
// @Produce json
// @Param namespace path string true "Namespace"
// @Param slug path string true "Event slug"
// @Param body body RegistrationRequest true "Visitor data"
// @Success 201 {object} helpers.APIResponse{data=domain.Registration}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: registration_closed"
// @Router /events/{namespace}/{slug}/ [post]
func (c *PublicController) register(w http.ResponseWriter, r *http.Request, req request) {
	var body RegistrationRequest
	if !h.DecodeAndValidate(w, r, &body) {
		return
	}
	reg := body.registration(req.language)
	event, err := c.Registrations.Register(r.Context(), req.namespace.Name, req.params[0], reg)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	token, err := c.Marker.Issue(event.ID, reg.ID)
	if err != nil {
		c.Logger.WarnContext(r.Context(), "registration marker not issued", "event_id", event.ID, "err", err)
	} else {
		http.SetCookie(w, c.markerCookie(r, req.namespace.Name, event.ID, token, int(auth.MarkerLifetime.Seconds())))
	}
	h.WriteJSONSuccess(w, http.StatusCreated, reg)
}

// resetRegistration godoc
// @Summary Forget this browser's registration
// @Description Clears the registration cookie so the visitor can register again.
// @Tags public
// @Produce json
// @Param namespace path string true "Namespace"
// @Param slug path string true "Event slug"
// @Success 200 {object} helpers.APIResponse{data=controllers.RegistrationStateResponse}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{namespace}/{slug}/reset/ [get]
func (c *PublicController) resetRegistration(w http.ResponseWriter, r *http.Request, req request) {
	detail, err := c.Events.GetEventDetail(r.Context(), req.namespace.Name, req.language, req.params[0])
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	http.SetCookie(w, c.markerCookie(r, req.namespace.Name, detail.Event.ID, "", -1))
	h.WriteJSONSuccess(w, http.StatusOK, RegistrationStateResponse{EventID: detail.Event.ID, Registered: false})
}

// registered checks the marker cookie against the stored registrations. Any failure reads
// as not registered.
func (c *PublicController) registered(r *http.Request, eventID string) bool {
	cookie, err := r.Cookie(markerCookiePrefix + eventID)
	if err != nil {
		return false
	}
	registrationID, err := c.Marker.Verify(cookie.Value, eventID)
	if err != nil {
		return false
	}
	ok, err := c.Registrations.IsRegistered(r.Context(), eventID, registrationID)
	if err != nil {
		c.Logger.WarnContext(r.Context(), "registration lookup failed", "event_id", eventID, "err", err)
		return false
	}
	return ok
}

func (c *PublicController) markerCookie(r *http.Request, namespace, eventID, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     markerCookiePrefix + eventID,
		Value:    value,
		Path:     PublicPrefix + namespace + "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	}
}

func (c *PublicController) listResponse(req request, window *domain.Window, events []*domain.Event) EventListResponse {
	l := localizer{language: req.language, fallback: c.DefaultLanguage, location: c.location()}
	return EventListResponse{
		Namespace: req.namespace.Name,
		AppTitle:  req.namespace.AppTitle,
		Window:    window,
		Events:    l.items(events),
	}
}

func (c *PublicController) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *PublicController) location() *time.Location {
	if c.Location != nil {
		return c.Location
	}
	return time.UTC
}

// windowFromParams turns year[, month[, day]] path segments into a window. No segments
// means no window; an impossible date reports false.
func windowFromParams(params []string) (*domain.Window, bool) {
	if len(params) == 0 {
		return nil, true
	}
	parts := make([]int, len(params))
	for i, p := range params {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, false
		}
		parts[i] = n
	}
	var w domain.Window
	switch len(parts) {
	case 1:
		w = domain.YearWindow(parts[0])
	case 2:
		if !domain.ValidDate(parts[0], time.Month(parts[1]), 1) {
			return nil, false
		}
		w = domain.MonthWindow(parts[0], time.Month(parts[1]))
	case 3:
		if !domain.ValidDate(parts[0], time.Month(parts[1]), parts[2]) {
			return nil, false
		}
		w = domain.DayWindow(parts[0], time.Month(parts[1]), parts[2])
	default:
		return nil, false
	}
	return &w, true
}
