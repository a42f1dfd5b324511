package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/renewalhq/renewal-gateway/internal/service"
)

func (h *Handler) StartScheduler(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Scheduler.Start(); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.sendData(w, r, http.StatusOK, map[string]interface{}{
		"status":  "started",
		"message": "Scheduler started successfully",
	})
}

func (h *Handler) StopScheduler(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Scheduler.Stop(); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.sendData(w, r, http.StatusOK, map[string]interface{}{
		"status":  "stopped",
		"message": "Scheduler stopped successfully",
	})
}

// HealthCheck reports component status. Unhealthy maps to 503; a degraded
// gateway still answers 200 so monitors can read the detail.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := h.service.Health.GetHealth()

	if health.Status == service.OverallUnhealthy {
		render.Status(r, http.StatusServiceUnavailable)
	}

	render.JSON(w, r, map[string]interface{}{
		"status":                 health.Status,
		"timestamp":              time.Now(),
		"scheduler_status":       health.SchedulerStatus,
		"database_status":        health.DatabaseStatus,
		"redis_status":           health.RedisStatus,
		"circuit_breaker_status": health.CircuitBreakerStatus,
		"circuit_breaker_state":  health.CircuitBreakerState,
	})
}
