package controllers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	h "eventlisting/internal/delivery/http/helpers"
	"eventlisting/internal/domain"
)

// ListPluginRequest is the request body for POST /api/plugins/list.
type ListPluginRequest struct {
	Namespace string   `json:"namespace" validate:"required"`
	Style     string   `json:"style"`
	EventIDs  []string `json:"event_ids" validate:"dive,uuid"`
}

// UpcomingPluginRequest is the request body for POST /api/plugins/upcoming.
// LatestEntries defaults to 5 when omitted.
type UpcomingPluginRequest struct {
	Namespace     string `json:"namespace" validate:"required"`
	Style         string `json:"style"`
	PastEvents    bool   `json:"past_events"`
	LatestEntries *int   `json:"latest_entries" validate:"omitempty,gte=0"`
	CacheDuration int    `json:"cache_duration" validate:"gte=0"`
}

// CalendarPluginRequest is the request body for POST /api/plugins/calendar.
type CalendarPluginRequest struct {
	Namespace     string `json:"namespace" validate:"required"`
	CacheDuration int    `json:"cache_duration" validate:"gte=0"`
}

// PluginEventsResponse is the data payload of the list and upcoming plugin renders.
type PluginEventsResponse struct {
	PluginID string      `json:"plugin_id"`
	Events   []EventItem `json:"events"`
}

// PluginController configures plugins and renders their content.
type PluginController struct {
	Logger          *slog.Logger
	Service         domain.PluginService
	DefaultLanguage string
	Location        *time.Location
	Now             func() time.Time
}

func NewPluginController(logger *slog.Logger, svc domain.PluginService, defaultLanguage string, location *time.Location) *PluginController {
	return &PluginController{
		Logger:          logger,
		Service:         svc,
		DefaultLanguage: defaultLanguage,
		Location:        location,
		Now:             time.Now,
	}
}

// CreateListPlugin godoc
// @Summary Create a curated event list plugin
// @Tags plugins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ListPluginRequest true "Plugin configuration"
// @Success 201 {object} helpers.APIResponse{data=domain.EventListPlugin}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (unknown namespace)"
// @Router /api/plugins/list [post]
func (c *PluginController) CreateListPlugin(w http.ResponseWriter, r *http.Request) {
	var req ListPluginRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	p := &domain.EventListPlugin{Namespace: req.Namespace, Style: req.Style, EventIDs: req.EventIDs}
	if err := c.Service.CreateListPlugin(r.Context(), p); err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, p)
}

// CreateUpcomingPlugin godoc
// @Summary Create an upcoming (or past) events plugin
// @Tags plugins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UpcomingPluginRequest true "Plugin configuration"
// @Success 201 {object} helpers.APIResponse{data=domain.UpcomingPluginItem}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (unknown namespace)"
// @Router /api/plugins/upcoming [post]
func (c *PluginController) CreateUpcomingPlugin(w http.ResponseWriter, r *http.Request) {
	var req UpcomingPluginRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	p := &domain.UpcomingPluginItem{
		Namespace:     req.Namespace,
		Style:         req.Style,
		PastEvents:    req.PastEvents,
		LatestEntries: domain.DefaultLatestEntries,
		CacheDuration: req.CacheDuration,
	}
	if req.LatestEntries != nil {
		p.LatestEntries = *req.LatestEntries
	}
	if err := c.Service.CreateUpcomingPlugin(r.Context(), p); err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, p)
}

// CreateCalendarPlugin godoc
// @Summary Create a month calendar plugin
// @Tags plugins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CalendarPluginRequest true "Plugin configuration"
// @Success 201 {object} helpers.APIResponse{data=domain.EventCalendarPlugin}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (unknown namespace)"
// @Router /api/plugins/calendar [post]
func (c *PluginController) CreateCalendarPlugin(w http.ResponseWriter, r *http.Request) {
	var req CalendarPluginRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	p := &domain.EventCalendarPlugin{Namespace: req.Namespace, CacheDuration: req.CacheDuration}
	if err := c.Service.CreateCalendarPlugin(r.Context(), p); err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, p)
}

// RenderList godoc
// @Summary Render a curated list plugin
// @Tags plugins
// @Produce json
// @Param pluginID path string true "Plugin ID (UUID)"
// @Param language query string false "Content language"
// @Success 200 {object} helpers.APIResponse{data=controllers.PluginEventsResponse}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /plugins/list/{pluginID} [get]
func (c *PluginController) RenderList(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathUUID(w, r, "pluginID")
	if !ok {
		return
	}
	events, err := c.Service.RenderList(r.Context(), id)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, PluginEventsResponse{PluginID: id, Events: c.localizer(r).items(events)})
}

// RenderUpcoming godoc
// @Summary Render an upcoming events plugin
// @Tags plugins
// @Produce json
// @Param pluginID path string true "Plugin ID (UUID)"
// @Param language query string false "Content language"
// @Success 200 {object} helpers.APIResponse{data=controllers.PluginEventsResponse}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /plugins/upcoming/{pluginID} [get]
func (c *PluginController) RenderUpcoming(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathUUID(w, r, "pluginID")
	if !ok {
		return
	}
	events, err := c.Service.RenderUpcoming(r.Context(), id)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, PluginEventsResponse{PluginID: id, Events: c.localizer(r).items(events)})
}

// RenderCalendar godoc
// @Summary Render a month calendar plugin
// @Description Defaults to the current month when year and month are omitted.
// @Tags plugins
// @Produce json
// @Param pluginID path string true "Plugin ID (UUID)"
// @Param year query int false "Year"
// @Param month query int false "Month (1-12)"
// @Param language query string false "Content language"
// @Success 200 {object} helpers.APIResponse{data=controllers.CalendarResponse}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /plugins/calendar/{pluginID} [get]
func (c *PluginController) RenderCalendar(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathUUID(w, r, "pluginID")
	if !ok {
		return
	}
	now := c.now().In(c.location())
	year, month := now.Year(), now.Month()
	q := r.URL.Query()
	if s := q.Get("year"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "year must be a number")
			return
		}
		year = v
	}
	if s := q.Get("month"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 || v > 12 {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "month must be between 1 and 12")
			return
		}
		month = time.Month(v)
	}
	days, err := c.Service.RenderCalendar(r.Context(), id, h.RequestLanguage(r, c.DefaultLanguage), year, month)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, CalendarResponse{Year: year, Month: int(month), Days: days})
}

func (c *PluginController) localizer(r *http.Request) localizer {
	return localizer{
		language: h.RequestLanguage(r, c.DefaultLanguage),
		fallback: c.DefaultLanguage,
		location: c.location(),
	}
}

func (c *PluginController) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *PluginController) location() *time.Location {
	if c.Location != nil {
		return c.Location
	}
	return time.UTC
}
