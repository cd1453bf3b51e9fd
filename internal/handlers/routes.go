package handlers

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/platemenu/platemenu/internal/admission"
	"github.com/platemenu/platemenu/internal/middleware"
)

// RegisterRoutes registers the API surface with per-endpoint admission
// configuration. Reads fail open; account mutations fail closed.
func RegisterRoutes(api huma.API, menus *MenuHandler, accounts *AccountHandler, health *HealthHandler) {
	huma.Register(api, huma.Operation{
		Method:      http.MethodGet,
		Path:        "/menus/{menuID}",
		Summary:     "Get menu",
		Description: "Returns a restaurant menu with its items.",
		Tags:        []string{"Menus"},
		Metadata: map[string]any{
			middleware.MetadataKey: middleware.EndpointConfig{
				Action: "get-menu:GET",
				Config: admission.Config{
					Limit:    120,
					Window:   time.Minute,
					FailMode: admission.FailOpen,
				},
			},
		},
	}, menus.GetMenu)

	huma.Register(api, huma.Operation{
		Method:      http.MethodPost,
		Path:        "/account/reactivate-subscription",
		Summary:     "Reactivate subscription",
		Description: "Schedules reactivation of a cancelled subscription.",
		Tags:        []string{"Account"},
		Metadata: map[string]any{
			middleware.MetadataKey: middleware.EndpointConfig{
				Action: "reactivate-subscription:POST",
				Config: admission.Config{
					Limit:    5,
					Window:   time.Hour,
					FailMode: admission.FailClosed,
				},
			},
		},
	}, accounts.ReactivateSubscription)

	huma.Register(api, huma.Operation{
		Method:  http.MethodGet,
		Path:    "/health",
		Summary: "Health check",
		Tags:    []string{"Health"},
		Metadata: map[string]any{
			middleware.MetadataKey: middleware.EndpointConfig{
				Disabled: true,
			},
		},
	}, health.Check)
}
