package admission

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Sweeper periodically prunes stale entries from a counter backend.
// Prune-on-apply already bounds the store in steady traffic; the
// sweeper additionally reclaims memory for keys that simply stop
// sending (identity churn from anonymous callers).
type Sweeper struct {
	counters   Counters
	interval   time.Duration
	staleAfter time.Duration
	logger     *zap.Logger
	cancel     context.CancelFunc
	done       chan struct{}
}

// NewSweeper creates a sweeper over counters.
func NewSweeper(counters Counters, interval, staleAfter time.Duration, logger *zap.Logger) *Sweeper {
	return &Sweeper{
		counters:   counters,
		interval:   interval,
		staleAfter: staleAfter,
		logger:     logger,
		done:       make(chan struct{}),
	}
}

// Start launches the sweep loop.
func (s *Sweeper) Start(ctx context.Context) error {
	ctx, s.cancel = context.WithCancel(ctx)

	go s.sweepLoop(ctx)

	return nil
}

func (s *Sweeper) sweepLoop(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			removed := s.counters.Prune(s.staleAfter, now)
			if removed > 0 {
				s.logger.Debug("pruned stale admission entries",
					zap.Int("removed", removed),
				)
			}
		}
	}
}

// Shutdown stops the sweep loop and waits for it to exit.
func (s *Sweeper) Shutdown() error {
	if s.cancel == nil {
		return nil
	}

	s.cancel()
	<-s.done

	return nil
}
