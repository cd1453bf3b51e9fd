package container

import (
	"time"

	"github.com/platemenu/platemenu/internal/admission"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
)

const sweepInterval = time.Minute

// GatePackage provides the admission store, gate, and sweeper. With
// SharedQuota set, counting happens in Redis instead of the per-process
// store.
func GatePackage(injector *do.Injector) {
	do.Provide(injector, func(_ *do.Injector) (*admission.Store, error) {
		return admission.NewStore(), nil
	})

	do.Provide(injector, func(i *do.Injector) (admission.Counters, error) {
		options := do.MustInvoke[*Options](i)

		if options.SharedQuota {
			return admission.NewRedisCounters(do.MustInvoke[*redis.Client](i)), nil
		}

		return do.MustInvoke[*admission.Store](i), nil
	})

	do.Provide(injector, func(i *do.Injector) (*admission.Gate, error) {
		return admission.NewGate(do.MustInvoke[admission.Counters](i)), nil
	})

	do.Provide(injector, func(i *do.Injector) (*admission.Sweeper, error) {
		counters := do.MustInvoke[admission.Counters](i)
		logger := do.MustInvoke[*zap.Logger](i)

		return admission.NewSweeper(counters, sweepInterval, admission.DefaultStaleAfter, logger), nil
	})
}
