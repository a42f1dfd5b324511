package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/renewalhq/renewal-gateway/internal/config"
	"github.com/renewalhq/renewal-gateway/internal/service"
)

func newBreakerConfig() *config.CircuitBreakerConfig {
	return &config.CircuitBreakerConfig{
		MaxRequests:      3,
		Interval:         10,
		Timeout:          60,
		FailureRatio:     0.5,
		ConsecutiveFails: 3,
	}
}

func TestCircuitBreaker_Execute(t *testing.T) {
	tests := []struct {
		name          string
		fn            func() error
		expectedError string
	}{
		{
			name: "successful call passes through",
			fn: func() error {
				return nil
			},
		},
		{
			name: "call error is returned unchanged",
			fn: func() error {
				return errors.New("graph api unreachable")
			},
			expectedError: "graph api unreachable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb := service.NewCircuitBreaker(newBreakerConfig(), zap.NewNop())

			err := cb.Execute(context.Background(), tt.fn)

			if tt.expectedError != "" {
				assert.EqualError(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCircuitBreaker_Execute_CanceledContext(t *testing.T) {
	cb := service.NewCircuitBreaker(newBreakerConfig(), zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := cb.Execute(ctx, func() error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called, "the call must not run once the context is canceled")
}

func TestCircuitBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	cb := service.NewCircuitBreaker(newBreakerConfig(), zap.NewNop())

	assert.Equal(t, service.CircuitClosed, cb.GetState())

	for i := 0; i < 10; i++ {
		_ = cb.Execute(context.Background(), func() error {
			return errors.New("failure")
		})
	}

	assert.Equal(t, service.CircuitOpen, cb.GetState())

	err := cb.Execute(context.Background(), func() error {
		t.Fatal("call must be blocked while the breaker is open")
		return nil
	})
	assert.EqualError(t, err, "service unavailable: circuit breaker is open")
}

func TestCircuitBreaker_GetCounts(t *testing.T) {
	cb := service.NewCircuitBreaker(newBreakerConfig(), zap.NewNop())

	_ = cb.Execute(context.Background(), func() error { return nil })
	_ = cb.Execute(context.Background(), func() error { return errors.New("boom") })

	requests, failures := cb.GetCounts()
	assert.Equal(t, uint32(2), requests)
	assert.Equal(t, uint32(1), failures)
}
