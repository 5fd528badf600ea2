package controllers

import (
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"sort"
	"strings"
	"time"

	h "eventlisting/internal/delivery/http/helpers"
	"eventlisting/internal/domain"
)

var slugRegex = regexp.MustCompile(`^[-\w]+$`)

// TranslationRequest holds the language-specific fields of an event.
type TranslationRequest struct {
	Title            string   `json:"title" validate:"required,max=150"`
	Slug             string   `json:"slug" validate:"required,max=150"`
	ShortDescription string   `json:"short_description"`
	Location         string   `json:"location"`
	LocationLat      *float64 `json:"location_lat" validate:"omitempty,latitude"`
	LocationLng      *float64 `json:"location_lng" validate:"omitempty,longitude"`
}

// EventRequest is the request body for POST /api/events and PUT /api/events/{eventID}.
// Dates are YYYY-MM-DD, times HH:MM or HH:MM:SS. Namespace is ignored on update.
type EventRequest struct {
	Namespace              string                        `json:"namespace"`
	Translations           map[string]TranslationRequest `json:"translations" validate:"required,min=1,dive,keys,min=2,max=32,endkeys"`
	StartDate              string                        `json:"start_date" validate:"required,datetime=2006-01-02"`
	StartTime              string                        `json:"start_time"`
	EndDate                string                        `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	EndTime                string                        `json:"end_time"`
	IsPublished            bool                          `json:"is_published"`
	PublishAt              *time.Time                    `json:"publish_at"`
	DetailLink             string                        `json:"detail_link" validate:"omitempty,url"`
	RegisterLink           string                        `json:"register_link" validate:"omitempty,url"`
	EnableRegistration     bool                          `json:"enable_registration"`
	RegistrationDeadlineAt *time.Time                    `json:"registration_deadline_at"`
	CoordinatorIDs         []string                      `json:"coordinator_ids" validate:"dive,uuid"`
}

// Validate implements Validator for the rules struct tags cannot express.
func (req EventRequest) Validate() []string {
	var errs []string
	langs := make([]string, 0, len(req.Translations))
	for lang := range req.Translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	for _, lang := range langs {
		if slug := req.Translations[lang].Slug; slug != "" && !slugRegex.MatchString(slug) {
			errs = append(errs, fmt.Sprintf("translations[%s].slug may only contain letters, digits, '-' and '_'", lang))
		}
	}
	if _, err := optionalTime(req.StartTime); err != nil {
		errs = append(errs, "start_time must be HH:MM or HH:MM:SS")
	}
	if _, err := optionalTime(req.EndTime); err != nil {
		errs = append(errs, "end_time must be HH:MM or HH:MM:SS")
	}
	return errs
}

// event converts a validated request into a domain event.
func (req EventRequest) event(id string) (*domain.Event, error) {
	start, err := domain.ParseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	e := &domain.Event{
		ID:                     id,
		Namespace:              strings.TrimSpace(req.Namespace),
		Translations:           make(domain.Translations, len(req.Translations)),
		StartDate:              start,
		IsPublished:            req.IsPublished,
		DetailLink:             req.DetailLink,
		RegisterLink:           req.RegisterLink,
		EnableRegistration:     req.EnableRegistration,
		RegistrationDeadlineAt: req.RegistrationDeadlineAt,
		CoordinatorIDs:         req.CoordinatorIDs,
	}
	if req.PublishAt != nil {
		e.PublishAt = *req.PublishAt
	}
	for lang, tr := range req.Translations {
		e.Translations[lang] = domain.Translation{
			Title:            strings.TrimSpace(tr.Title),
			Slug:             tr.Slug,
			ShortDescription: tr.ShortDescription,
			Location:         tr.Location,
			LocationLat:      tr.LocationLat,
			LocationLng:      tr.LocationLng,
		}
	}
	if req.EndDate != "" {
		end, err := domain.ParseDate(req.EndDate)
		if err != nil {
			return nil, err
		}
		e.EndDate = &end
	}
	if e.StartTime, err = optionalTime(req.StartTime); err != nil {
		return nil, err
	}
	if e.EndTime, err = optionalTime(req.EndTime); err != nil {
		return nil, err
	}
	return e, nil
}

func optionalTime(s string) (*domain.TimeOfDay, error) {
	if s == "" {
		return nil, nil
	}
	t, err := domain.ParseTimeOfDay(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// EventPageResponse is the data payload for GET /api/events.
type EventPageResponse struct {
	Events     []*domain.Event  `json:"events"`
	Pagination h.PaginationMeta `json:"pagination"`
}

// EventController serves the editor API for events and their registrations.
type EventController struct {
	Logger        *slog.Logger
	Service       domain.EventService
	Registrations domain.RegistrationService
}

func NewEventController(logger *slog.Logger, svc domain.EventService, registrations domain.RegistrationService) *EventController {
	return &EventController{
		Logger:        logger,
		Service:       svc,
		Registrations: registrations,
	}
}

// CreateEvent godoc
// @Summary Create an event
// @Description Validates the date span and registration settings before storing the event.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body EventRequest true "Event data"
// @Success 201 {object} helpers.APIResponse{data=domain.Event}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or validation_error"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (unknown namespace)"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (slug taken)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Namespace) == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "namespace is required")
		return
	}
	event, err := req.event("")
	if err != nil {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
		return
	}
	if err := c.Service.CreateEvent(r.Context(), event); err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, event)
}

// ListEvents godoc
// @Summary List all events of a namespace
// @Description Editor view including unpublished events, in canonical order.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param namespace query string true "Namespace"
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse{data=controllers.EventPageResponse}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	namespace := strings.TrimSpace(r.URL.Query().Get("namespace"))
	if namespace == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "namespace is required")
		return
	}
	params := h.ParsePagination(r)
	events, total, err := c.Service.ListAllEvents(r.Context(), namespace, params)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, EventPageResponse{
		Events:     events,
		Pagination: h.NewPaginationMeta(params, total),
	})
}

// GetEvent godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} helpers.APIResponse{data=domain.Event}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := h.PathUUID(w, r, "eventID")
	if !ok {
		return
	}
	event, err := c.Service.GetEventByID(r.Context(), eventID)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, event)
}

// UpdateEvent godoc
// @Summary Replace an event
// @Description Replaces all editable fields. The namespace and creation time of the stored event are kept.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param event body EventRequest true "Event data"
// @Success 200 {object} helpers.APIResponse{data=domain.Event}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or validation_error"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (slug taken)"
// @Router /api/events/{eventID} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := h.PathUUID(w, r, "eventID")
	if !ok {
		return
	}
	var req EventRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := req.event(eventID)
	if err != nil {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
		return
	}
	if err := c.Service.UpdateEvent(r.Context(), event); err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags events
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 204 "No Content"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/events/{eventID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := h.PathUUID(w, r, "eventID")
	if !ok {
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), eventID); err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListRegistrations godoc
// @Summary List the registrations of an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} helpers.APIResponse{data=[]domain.Registration}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/events/{eventID}/registrations [get]
func (c *EventController) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	eventID, ok := h.PathUUID(w, r, "eventID")
	if !ok {
		return
	}
	regs, err := c.Registrations.ListRegistrations(r.Context(), eventID)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, regs)
}
