package maintain

import (
	"context"
	"errors"
	"fmt"

	"github.com/fkkmemi/boardsync/internal/common"
	"github.com/fkkmemi/boardsync/internal/server/repositories/counters"
)

// CounterMaintainer applies signed deltas to aggregate counters with a
// create-if-absent fallback. Correctness under concurrent events rests on
// the store's atomic increment primitive, not on local locking.
type CounterMaintainer struct {
	counters counters.Repository
}

func NewCounterMaintainer(repo counters.Repository) *CounterMaintainer {
	return &CounterMaintainer{counters: repo}
}

// ApplyDelta increments an existing counter, or creates it with the delta
// as initial value when the record does not exist yet. The two branches are
// mutually exclusive outcomes of one invocation; the delta is never applied
// twice.
func (m *CounterMaintainer) ApplyDelta(ctx context.Context, key counters.Key, delta int64) error {

	err := m.counters.Increment(ctx, key, delta)
	if err == nil {
		return nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return fmt.Errorf("counter increment: %w", err)
	}

	if err := m.counters.Create(ctx, key, delta); err != nil {
		return fmt.Errorf("counter create fallback: %w", err)
	}

	return nil
}
