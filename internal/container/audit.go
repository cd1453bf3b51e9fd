package container

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/platemenu/platemenu/internal/audit"
	auditstore "github.com/platemenu/platemenu/internal/audit/store"
	"github.com/platemenu/platemenu/internal/messaging"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
)

const consumerGroupName = "platemenu-audit"

// PublisherGroupPackage provides the denial-event publisher over Redis
// streams and its typed publish function.
func PublisherGroupPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*messaging.PublisherGroup, error) {
		client := do.MustInvoke[*redis.Client](i)

		publisher, err := redisstream.NewPublisher(redisstream.PublisherConfig{
			Client: client,
		}, watermill.NopLogger{})
		if err != nil {
			return nil, err
		}

		return messaging.NewPublisherGroup(publisher), nil
	})

	do.Provide(injector, func(i *do.Injector) (messaging.Publish[audit.DeniedEvent], error) {
		group := do.MustInvoke[*messaging.PublisherGroup](i)

		return messaging.NewPublishFunc[audit.DeniedEvent](group.Publisher(), audit.TopicAdmissionDenied), nil
	})
}

// ConsumerGroupPackage provides the consumer group that persists denial
// events, backed by Postgres when a DSN is configured and the logging
// noop store otherwise.
func ConsumerGroupPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (audit.Store, error) {
		options := do.MustInvoke[*Options](i)
		logger := do.MustInvoke[*zap.Logger](i)

		if options.PostgresDSN == "" {
			return auditstore.NewNoop(logger), nil
		}

		return auditstore.NewPostgres(do.MustInvoke[*pgxpool.Pool](i)), nil
	})

	do.Provide(injector, func(i *do.Injector) (*messaging.ConsumerGroup, error) {
		logger := do.MustInvoke[*zap.Logger](i)
		store := do.MustInvoke[audit.Store](i)

		subscriber, err := redisstream.NewSubscriber(redisstream.SubscriberConfig{
			Client:        do.MustInvoke[*redis.Client](i),
			ConsumerGroup: consumerGroupName,
		}, watermill.NopLogger{})
		if err != nil {
			return nil, err
		}

		group := messaging.NewConsumerGroup(subscriber, logger)
		group.Add(messaging.NewConsumer(subscriber, audit.TopicAdmissionDenied, audit.SaveHandler(store), logger))

		return group, nil
	})
}
