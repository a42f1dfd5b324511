package service_test

import (
	"errors"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/renewalhq/renewal-gateway/internal/repository/mocks"
	"github.com/renewalhq/renewal-gateway/internal/service"
	servicemocks "github.com/renewalhq/renewal-gateway/internal/service/mocks"
)

func TestHealthService_GetHealth(t *testing.T) {
	tests := []struct {
		name              string
		setupMocks        func(*mocks.MockRepository, *servicemocks.MockSchedulerService, *servicemocks.MockWhatsAppService)
		expectedStatus    service.OverallHealth
		expectedScheduler service.SchedulerState
		expectedDatabase  service.ComponentStatus
		expectedCBState   service.CircuitState
	}{
		{
			name: "scheduler running, database connected",
			setupMocks: func(repo *mocks.MockRepository, scheduler *servicemocks.MockSchedulerService, whatsapp *servicemocks.MockWhatsAppService) {
				scheduler.EXPECT().IsRunning().Return(true)
				repo.EXPECT().Ping().Return(nil)
				whatsapp.EXPECT().CircuitBreakerStatus().Return(service.CircuitClosed, uint32(100), uint32(5))
			},
			// Unhealthy because the test Redis client points at nothing.
			expectedStatus:    service.OverallUnhealthy,
			expectedScheduler: service.SchedulerRunning,
			expectedDatabase:  service.ComponentConnected,
			expectedCBState:   service.CircuitClosed,
		},
		{
			name: "scheduler stopped",
			setupMocks: func(repo *mocks.MockRepository, scheduler *servicemocks.MockSchedulerService, whatsapp *servicemocks.MockWhatsAppService) {
				scheduler.EXPECT().IsRunning().Return(false)
				repo.EXPECT().Ping().Return(nil)
				whatsapp.EXPECT().CircuitBreakerStatus().Return(service.CircuitClosed, uint32(50), uint32(10))
			},
			expectedStatus:    service.OverallUnhealthy,
			expectedScheduler: service.SchedulerStopped,
			expectedDatabase:  service.ComponentConnected,
			expectedCBState:   service.CircuitClosed,
		},
		{
			name: "database disconnected",
			setupMocks: func(repo *mocks.MockRepository, scheduler *servicemocks.MockSchedulerService, whatsapp *servicemocks.MockWhatsAppService) {
				scheduler.EXPECT().IsRunning().Return(true)
				repo.EXPECT().Ping().Return(errors.New("connection failed"))
				whatsapp.EXPECT().CircuitBreakerStatus().Return(service.CircuitClosed, uint32(0), uint32(0))
			},
			expectedStatus:    service.OverallUnhealthy,
			expectedScheduler: service.SchedulerRunning,
			expectedDatabase:  service.ComponentDisconnected,
			expectedCBState:   service.CircuitClosed,
		},
		{
			name: "open circuit breaker degrades the service",
			setupMocks: func(repo *mocks.MockRepository, scheduler *servicemocks.MockSchedulerService, whatsapp *servicemocks.MockWhatsAppService) {
				scheduler.EXPECT().IsRunning().Return(true)
				repo.EXPECT().Ping().Return(nil)
				whatsapp.EXPECT().CircuitBreakerStatus().Return(service.CircuitOpen, uint32(100), uint32(60))
			},
			expectedStatus:    service.OverallDegraded,
			expectedScheduler: service.SchedulerRunning,
			expectedDatabase:  service.ComponentConnected,
			expectedCBState:   service.CircuitOpen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockRepository(ctrl)
			mockScheduler := servicemocks.NewMockSchedulerService(ctrl)
			mockWhatsApp := servicemocks.NewMockWhatsAppService(ctrl)

			redisClient := redis.NewClient(&redis.Options{
				Addr: "localhost:9999", // Non-existent server for testing
			})

			tt.setupMocks(mockRepo, mockScheduler, mockWhatsApp)

			healthService := service.NewHealthService(mockRepo, redisClient, mockScheduler, mockWhatsApp)
			status := healthService.GetHealth()

			require.NotNil(t, status)
			assert.Equal(t, tt.expectedStatus, status.Status)
			assert.Equal(t, tt.expectedScheduler, status.SchedulerStatus)
			assert.Equal(t, tt.expectedDatabase, status.DatabaseStatus)
			assert.Equal(t, service.ComponentDisconnected, status.RedisStatus)
			assert.Equal(t, tt.expectedCBState, status.CircuitBreakerState)
		})
	}
}

func TestHealthService_CircuitBreakerStatusFormatting(t *testing.T) {
	tests := []struct {
		name             string
		requests         uint32
		failures         uint32
		expectedCBStatus string
	}{
		{
			name:             "no requests",
			requests:         0,
			failures:         0,
			expectedCBStatus: "No requests yet",
		},
		{
			name:             "all successful",
			requests:         100,
			failures:         0,
			expectedCBStatus: "Requests: 100, Failures: 0 (0.0%)",
		},
		{
			name:             "some failures",
			requests:         100,
			failures:         25,
			expectedCBStatus: "Requests: 100, Failures: 25 (25.0%)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockRepository(ctrl)
			mockScheduler := servicemocks.NewMockSchedulerService(ctrl)
			mockWhatsApp := servicemocks.NewMockWhatsAppService(ctrl)

			redisClient := redis.NewClient(&redis.Options{
				Addr: "localhost:9999", // Non-existent server for testing
			})

			mockScheduler.EXPECT().IsRunning().Return(true)
			mockRepo.EXPECT().Ping().Return(nil)
			mockWhatsApp.EXPECT().CircuitBreakerStatus().Return(service.CircuitClosed, tt.requests, tt.failures)

			healthService := service.NewHealthService(mockRepo, redisClient, mockScheduler, mockWhatsApp)
			status := healthService.GetHealth()

			assert.Equal(t, tt.expectedCBStatus, status.CircuitBreakerStatus)
		})
	}
}
