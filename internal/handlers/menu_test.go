package handlers_test

import (
	"context"
	"testing"

	"github.com/platemenu/platemenu/internal/handlers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuHandler_GetMenu(t *testing.T) {
	handler := handlers.NewMenuHandler()

	t.Run("returns a seeded menu", func(t *testing.T) {
		resp, err := handler.GetMenu(context.Background(), &handlers.GetMenuRequest{MenuID: "bistro-lunch"})

		require.NoError(t, err)
		assert.Equal(t, "bistro-lunch", resp.Body.ID)
		assert.NotEmpty(t, resp.Body.Items)
	})

	t.Run("returns 404 for unknown menu", func(t *testing.T) {
		_, err := handler.GetMenu(context.Background(), &handlers.GetMenuRequest{MenuID: "missing"})

		assert.Error(t, err)
	})
}
