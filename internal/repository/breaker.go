package repository

import (
	"context"
	"time"

	"github.com/akgolfgroup/player-insights/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

// BreakerSettings tunes the per-reader circuit breakers.
type BreakerSettings struct {
	Threshold int
	Timeout   time.Duration
}

func newBreaker(name string, settings BreakerSettings, logger *logrus.Logger) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: uint32(settings.Threshold),
		Timeout:     settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"component": "circuit_breaker",
				"reader":    name,
				"from":      from.String(),
				"to":        to.String(),
			}).Info("Circuit breaker state changed")
		},
	})
}

// BreakerReaders wraps each reader with its own circuit breaker so a failing
// source store trips fast instead of piling up slow reads.
func BreakerReaders(readers Readers, settings BreakerSettings, logger *logrus.Logger) Readers {
	if settings.Threshold <= 0 {
		settings.Threshold = 5
	}
	if settings.Timeout <= 0 {
		settings.Timeout = 30 * time.Second
	}
	return Readers{
		TestResults: &breakerTestResultReader{
			inner:   readers.TestResults,
			breaker: newBreaker("test_results", settings, logger),
		},
		Players: &breakerPlayerReader{
			inner:   readers.Players,
			breaker: newBreaker("players", settings, logger),
		},
		BreakingPoints: &breakerBreakingPointReader{
			inner:   readers.BreakingPoints,
			breaker: newBreaker("breaking_points", settings, logger),
		},
	}
}

type breakerTestResultReader struct {
	inner   TestResultReader
	breaker *gobreaker.CircuitBreaker
}

func (r *breakerTestResultReader) ByPlayer(ctx context.Context, playerID uuid.UUID, testNumbers []int, limit int) ([]models.TestResult, error) {
	result, err := r.breaker.Execute(func() (interface{}, error) {
		return r.inner.ByPlayer(ctx, playerID, testNumbers, limit)
	})
	if err != nil {
		return nil, err
	}
	return result.([]models.TestResult), nil
}

type breakerPlayerReader struct {
	inner   PlayerReader
	breaker *gobreaker.CircuitBreaker
}

func (r *breakerPlayerReader) ByID(ctx context.Context, playerID uuid.UUID) (*models.Player, error) {
	result, err := r.breaker.Execute(func() (interface{}, error) {
		return r.inner.ByID(ctx, playerID)
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.Player), nil
}

type breakerBreakingPointReader struct {
	inner   BreakingPointReader
	breaker *gobreaker.CircuitBreaker
}

func (r *breakerBreakingPointReader) ByPlayer(ctx context.Context, playerID uuid.UUID) ([]models.BreakingPoint, error) {
	result, err := r.breaker.Execute(func() (interface{}, error) {
		return r.inner.ByPlayer(ctx, playerID)
	})
	if err != nil {
		return nil, err
	}
	return result.([]models.BreakingPoint), nil
}
