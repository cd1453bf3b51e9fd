package audit_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/platemenu/platemenu/internal/admission"
	"github.com/platemenu/platemenu/internal/audit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deniedDecision() admission.Decision {
	return admission.Decision{
		Allowed:   false,
		Limit:     5,
		Remaining: 0,
		ResetTime: time.Date(2026, 8, 1, 12, 1, 0, 0, time.UTC),
	}
}

func TestNewDeniedEvent(t *testing.T) {
	event := audit.NewDeniedEvent("user1", "reactivate-subscription:POST",
		deniedDecision(), "203.0.113.7", "TestAgent/1.0", "req-123")

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "user1", event.Identity)
	assert.Equal(t, "reactivate-subscription:POST", event.Action)
	assert.Equal(t, int64(5), event.Limit)
	assert.Equal(t, int64(0), event.Remaining)
	assert.Equal(t, deniedDecision().ResetTime, event.ResetTime)
	assert.Equal(t, "203.0.113.7", event.ClientIP)
	assert.Equal(t, "req-123", event.RequestID)
	assert.WithinDuration(t, time.Now(), event.DeniedAt, time.Minute)
}

type memStore struct {
	saved   []*audit.DeniedEvent
	saveErr error
}

func (m *memStore) SaveDenied(_ context.Context, event *audit.DeniedEvent) error {
	if m.saveErr != nil {
		return m.saveErr
	}

	m.saved = append(m.saved, event)

	return nil
}

func TestSaveHandler(t *testing.T) {
	t.Run("persists events through the store", func(t *testing.T) {
		store := &memStore{}
		handler := audit.SaveHandler(store)

		event := audit.NewDeniedEvent("user1", "get-menu:GET", deniedDecision(), "", "", "")

		require.NoError(t, handler(context.Background(), event))
		require.Len(t, store.saved, 1)
		assert.Equal(t, event.ID, store.saved[0].ID)
	})

	t.Run("propagates store errors", func(t *testing.T) {
		store := &memStore{saveErr: errors.New("save error")}
		handler := audit.SaveHandler(store)

		err := handler(context.Background(), audit.NewDeniedEvent("user1", "get-menu:GET", deniedDecision(), "", "", ""))

		assert.Error(t, err)
	})
}
