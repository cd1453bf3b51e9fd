package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/platemenu/platemenu/internal/audit"
	"github.com/platemenu/platemenu/internal/audit/store"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNoop_SaveDenied(t *testing.T) {
	noop := store.NewNoop(zap.NewNop())

	err := noop.SaveDenied(context.Background(), &audit.DeniedEvent{
		ID:       "evt-1",
		Identity: "user1",
		Action:   "get-menu:GET",
		Limit:    5,
		DeniedAt: time.Now(),
	})

	require.NoError(t, err)
}
