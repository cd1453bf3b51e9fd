package store

import (
	"context"

	"github.com/platemenu/platemenu/internal/audit"
	"go.uber.org/zap"
)

// Noop is a no-op implementation of audit.Store that logs denials
// instead of persisting them. Used when no database is configured.
type Noop struct {
	logger *zap.Logger
}

// NewNoop creates a new no-op audit store.
func NewNoop(logger *zap.Logger) *Noop {
	return &Noop{logger: logger}
}

func (n *Noop) SaveDenied(_ context.Context, event *audit.DeniedEvent) error {
	n.logger.Info("denial event received",
		zap.String("identity", event.Identity),
		zap.String("action", event.Action),
		zap.Int64("limit", event.Limit),
		zap.Time("deniedAt", event.DeniedAt),
	)

	return nil
}
