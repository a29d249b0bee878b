package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/QuangTung97/conference/pkg/otellib"
	"github.com/QuangTung97/conference/repository"
	"go.uber.org/zap"
)

// ErrConcurrencyConflict is returned when every attempt of an atomic unit conflicted with concurrent writers
var ErrConcurrencyConflict = errors.New("too much contention on the ledger, try again")

// DefaultMaxRetries ...
const DefaultMaxRetries = 3

// Manager runs read-then-write sequences as one transaction, retrying the whole sequence on conflicts
type Manager struct {
	provider   repository.Provider
	maxRetries int
	metrics    *Metrics
}

// NewManager ...
func NewManager(provider repository.Provider, maxRetries int, metrics *Metrics) *Manager {
	if maxRetries < 0 {
		maxRetries = DefaultMaxRetries
	}
	return &Manager{
		provider:   provider,
		maxRetries: maxRetries,
		metrics:    metrics,
	}
}

// RunAtomic executes fn inside a transaction.
// fn can be called more than once, so it must not have side effects outside of the store.
// Called inside another atomic unit, fn joins it and is not retried.
func RunAtomic[T any](ctx context.Context, m *Manager, fn func(ctx context.Context) (T, error)) (T, error) {
	var empty T

	if repository.InTransaction(ctx) {
		return fn(ctx)
	}

	var lastErr error
	for attempt := 0; attempt <= m.maxRetries; attempt++ {
		if attempt > 0 {
			m.metrics.incRetries()
			otellib.Extract(ctx).Debug("retry atomic unit",
				zap.Int("attempt", attempt), zap.Error(lastErr))
		}

		var result T
		err := m.provider.Transact(ctx, func(ctx context.Context) error {
			r, err := fn(ctx)
			if err != nil {
				return err
			}
			result = r
			return nil
		})
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, repository.ErrConflict) {
			return empty, err
		}
		if ctx.Err() != nil {
			return empty, ctx.Err()
		}
		lastErr = err
	}
	return empty, fmt.Errorf("%w: %w", ErrConcurrencyConflict, lastErr)
}
