package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"time"

	h "eventlisting/internal/delivery/http/helpers"
)

// HealthCheck probes one dependency.
type HealthCheck func(ctx context.Context) error

// HealthResponse reports the state of each dependency.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type HealthController struct {
	Logger  *slog.Logger
	Checks  map[string]HealthCheck
	Timeout time.Duration
}

func NewHealthController(logger *slog.Logger, checks map[string]HealthCheck) *HealthController {
	return &HealthController{Logger: logger, Checks: checks, Timeout: 2 * time.Second}
}

// Health godoc
// @Summary Liveness and dependency check
// @Tags health
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=controllers.HealthResponse}
// @Failure 503 {object} helpers.APIResponse{data=controllers.HealthResponse}
// @Router /health [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), c.Timeout)
	defer cancel()

	names := make([]string, 0, len(c.Checks))
	for name := range c.Checks {
		names = append(names, name)
	}
	sort.Strings(names)

	resp := HealthResponse{Status: "ok", Checks: make(map[string]string, len(names))}
	for _, name := range names {
		if err := c.Checks[name](ctx); err != nil {
			c.Logger.WarnContext(ctx, "health check failed", "check", name, "err", err)
			resp.Checks[name] = "down"
			resp.Status = "degraded"
			continue
		}
		resp.Checks[name] = "up"
	}
	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	h.WriteJSONSuccess(w, status, resp)
}
