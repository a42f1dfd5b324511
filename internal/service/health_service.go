package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/renewalhq/renewal-gateway/internal/repository"
)

type healthService struct {
	repo             repository.Repository
	redisClient      *redis.Client
	schedulerService SchedulerService
	whatsappService  WhatsAppService
}

func NewHealthService(
	repo repository.Repository,
	redisClient *redis.Client,
	schedulerService SchedulerService,
	whatsappService WhatsAppService,
) HealthService {
	return &healthService{
		repo:             repo,
		redisClient:      redisClient,
		schedulerService: schedulerService,
		whatsappService:  whatsappService,
	}
}

func (s *healthService) GetHealth() *HealthStatus {
	status := &HealthStatus{
		Status: OverallHealthy,
	}

	if s.schedulerService.IsRunning() {
		status.SchedulerStatus = SchedulerRunning
	} else {
		status.SchedulerStatus = SchedulerStopped
	}

	status.DatabaseStatus = s.checkDatabaseHealth()
	status.RedisStatus = s.checkRedisHealth()

	state, requests, failures := s.whatsappService.CircuitBreakerStatus()
	status.CircuitBreakerState = state
	if requests > 0 {
		failureRate := float64(failures) / float64(requests) * 100
		status.CircuitBreakerStatus = fmt.Sprintf("Requests: %d, Failures: %d (%.1f%%)", requests, failures, failureRate)
	} else {
		status.CircuitBreakerStatus = "No requests yet"
	}

	if status.DatabaseStatus != ComponentConnected || status.RedisStatus != ComponentConnected {
		status.Status = OverallUnhealthy
	}

	if state == CircuitOpen {
		status.Status = OverallDegraded
	}

	return status
}

func (s *healthService) checkDatabaseHealth() ComponentStatus {
	if err := s.repo.Ping(); err != nil {
		return ComponentDisconnected
	}
	return ComponentConnected
}

func (s *healthService) checkRedisHealth() ComponentStatus {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		return ComponentDisconnected
	}

	return ComponentConnected
}
