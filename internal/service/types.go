package service

import "github.com/renewalhq/renewal-gateway/internal/models"

type OverallHealth string

const (
	OverallHealthy   OverallHealth = "healthy"
	OverallDegraded  OverallHealth = "degraded"
	OverallUnhealthy OverallHealth = "unhealthy"
)

type ComponentStatus string

const (
	ComponentConnected    ComponentStatus = "connected"
	ComponentDisconnected ComponentStatus = "disconnected"
)

type SchedulerState string

const (
	SchedulerRunning SchedulerState = "running"
	SchedulerStopped SchedulerState = "stopped"
)

type CircuitState string

const (
	CircuitClosed   CircuitState = "closed"
	CircuitHalfOpen CircuitState = "half-open"
	CircuitOpen     CircuitState = "open"
)

type HealthStatus struct {
	Status               OverallHealth   `json:"status"`
	SchedulerStatus      SchedulerState  `json:"scheduler_status"`
	DatabaseStatus       ComponentStatus `json:"database_status"`
	RedisStatus          ComponentStatus `json:"redis_status"`
	CircuitBreakerStatus string          `json:"circuit_breaker_status,omitempty"`
	CircuitBreakerState  CircuitState    `json:"circuit_breaker_state,omitempty"`
}

type Pagination struct {
	CurrentPage  int `json:"current_page"`
	TotalPages   int `json:"total_pages"`
	TotalItems   int `json:"total_items"`
	ItemsPerPage int `json:"items_per_page"`
}

type MessageListResult struct {
	Messages   []*models.Message `json:"messages"`
	Pagination Pagination        `json:"pagination"`
}
