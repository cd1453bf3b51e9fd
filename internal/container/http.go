package container

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor" // CBOR format support for huma
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jaevor/go-nanoid"
	"github.com/platemenu/platemenu/internal/admission"
	"github.com/platemenu/platemenu/internal/audit"
	"github.com/platemenu/platemenu/internal/handlers"
	"github.com/platemenu/platemenu/internal/messaging"
	"github.com/platemenu/platemenu/internal/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
)

const requestIDLength = 12

// HTTPPackage provides the router and the API with middlewares and
// routes registered.
func HTTPPackage(injector *do.Injector) {
	do.Provide(injector, func(_ *do.Injector) (*chi.Mux, error) {
		return chi.NewMux(), nil
	})

	do.Provide(injector, func(i *do.Injector) (huma.API, error) {
		options := do.MustInvoke[*Options](i)
		logger := do.MustInvoke[*zap.Logger](i)
		router := do.MustInvoke[*chi.Mux](i)
		gate := do.MustInvoke[*admission.Gate](i)
		publishDenied := do.MustInvoke[messaging.Publish[audit.DeniedEvent]](i)

		api := humachi.New(router, huma.DefaultConfig("Platemenu", "1.0.0"))

		generateID, err := nanoid.Standard(requestIDLength)
		if err != nil {
			return nil, err
		}

		api.UseMiddleware(
			middleware.RequestMeta(generateID),
			middleware.Admission(api, gate, publishDenied, logger),
		)

		var postgres handlers.Pinger
		if options.PostgresDSN != "" {
			postgres = handlers.NewPostgresHealthChecker(do.MustInvoke[*pgxpool.Pool](i))
		}

		// Key counts only exist for the per-process store; with shared
		// quotas the counters live in Redis and health omits the field.
		var stats handlers.GateStats
		if !options.SharedQuota {
			stats = do.MustInvoke[*admission.Store](i)
		}

		handlers.RegisterRoutes(api,
			handlers.NewMenuHandler(),
			handlers.NewAccountHandler(logger),
			handlers.NewHealthHandler(
				handlers.NewRedisHealthChecker(do.MustInvoke[*redis.Client](i)),
				postgres,
				stats,
			),
		)

		return api, nil
	})
}
