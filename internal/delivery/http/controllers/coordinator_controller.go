package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	h "eventlisting/internal/delivery/http/helpers"
	"eventlisting/internal/domain"
)

// CoordinatorRequest is the request body for POST /api/coordinators. Either email or a
// user with an email is required.
type CoordinatorRequest struct {
	Name   string  `json:"name" validate:"max=200"`
	Email  string  `json:"email" validate:"omitempty,email,max=80"`
	UserID *string `json:"user_id" validate:"omitempty,uuid"`
}

type CoordinatorController struct {
	Logger  *slog.Logger
	Service domain.CoordinatorService
}

func NewCoordinatorController(logger *slog.Logger, svc domain.CoordinatorService) *CoordinatorController {
	return &CoordinatorController{Logger: logger, Service: svc}
}

// CreateCoordinator godoc
// @Summary Create a coordinator
// @Tags coordinators
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CoordinatorRequest true "Coordinator data"
// @Success 201 {object} helpers.APIResponse{data=domain.EventCoordinator}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or validation_error"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (unknown user)"
// @Router /api/coordinators [post]
func (c *CoordinatorController) CreateCoordinator(w http.ResponseWriter, r *http.Request) {
	var req CoordinatorRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	coordinator := &domain.EventCoordinator{
		Name:   strings.TrimSpace(req.Name),
		Email:  strings.TrimSpace(req.Email),
		UserID: req.UserID,
	}
	if err := c.Service.CreateCoordinator(r.Context(), coordinator); err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, coordinator)
}

// GetCoordinator godoc
// @Summary Get a coordinator
// @Tags coordinators
// @Produce json
// @Security BearerAuth
// @Param coordinatorID path string true "Coordinator ID (UUID)"
// @Success 200 {object} helpers.APIResponse{data=domain.EventCoordinator}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/coordinators/{coordinatorID} [get]
func (c *CoordinatorController) GetCoordinator(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathUUID(w, r, "coordinatorID")
	if !ok {
		return
	}
	coordinator, err := c.Service.GetCoordinator(r.Context(), id)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, coordinator)
}

// DeleteCoordinator godoc
// @Summary Delete a coordinator
// @Tags coordinators
// @Security BearerAuth
// @Param coordinatorID path string true "Coordinator ID (UUID)"
// @Success 204 "No Content"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/coordinators/{coordinatorID} [delete]
func (c *CoordinatorController) DeleteCoordinator(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathUUID(w, r, "coordinatorID")
	if !ok {
		return
	}
	if err := c.Service.DeleteCoordinator(r.Context(), id); err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
