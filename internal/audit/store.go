package audit

import (
	"context"

	"github.com/platemenu/platemenu/internal/messaging"
)

// Store persists denial events.
type Store interface {
	SaveDenied(ctx context.Context, event *DeniedEvent) error
}

// SaveHandler adapts a Store into a messaging handler for the denial
// topic.
func SaveHandler(store Store) messaging.Handler[DeniedEvent] {
	return func(ctx context.Context, event *DeniedEvent) error {
		return store.SaveDenied(ctx, event)
	}
}
