package cmd

import (
	"log/slog"
	"strings"

	httpin "fulfillment/internal/adapters/in/http"
	kafkain "fulfillment/internal/adapters/in/kafka"
	"fulfillment/internal/adapters/in/trigger"
	kafkaout "fulfillment/internal/adapters/out/kafka"
	"fulfillment/internal/adapters/out/memory"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/jobs"
	"fulfillment/internal/pkg/keylock"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	store      *memory.Store
	uowFactory commands.UoWFactory
	locks      *keylock.KeyLock
	catalog    *carrier.Catalog
	issuer     services.TrackingNumberIssuer
	archive    *postgres.GormSnapshotArchive
	publisher  *kafkaout.OrderEventPublisher
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	store := memory.NewStore(memory.WithLifecycleValidator(services.CheckConsistency))
	root := CompositionRoot{
		config: config,
		logger: logger,
		store:  store,
		uowFactory: FuncUoWFactory(func() commands.UoW {
			return store.Create()
		}),
		locks:   keylock.New(),
		catalog: carrier.NewCatalog(config.DefaultCarrier),
		issuer:  services.NewTrackingNumberIssuer(),
		archive: postgres.NewGormSnapshotArchive(gormDB),
	}
	if config.KafkaEnabled() && config.KafkaOrderChangedTopic != "" {
		root.publisher = kafkaout.NewOrderEventPublisher(brokers(config.KafkaHost), config.KafkaOrderChangedTopic)
	}
	return root
}

func (c *CompositionRoot) handlerOptions() []commands.Option {
	opts := []commands.Option{commands.WithLogger(c.logger)}
	if c.publisher != nil {
		opts = append(opts, commands.WithPublisher(c.publisher))
	}
	return opts
}

func (c *CompositionRoot) CreateSeedOrderCommandHandler() commands.SeedOrderCommandHandler {
	seeder := services.NewSeeder(c.catalog, c.issuer, c.config.DocumentsBaseURL)
	return commands.NewSeedOrderCommandHandler(c.uowFactory, c.locks, seeder, c.handlerOptions()...)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	propagator := services.NewLifecyclePropagator(c.catalog, c.issuer, c.config.DocumentsBaseURL)
	return commands.NewAdvanceOrderCommandHandler(c.uowFactory, c.locks, propagator, c.handlerOptions()...)
}

func (c *CompositionRoot) CreateRestoreSnapshotCommandHandler() commands.RestoreSnapshotCommandHandler {
	return commands.NewRestoreSnapshotCommandHandler(c.archive, c.store)
}

func (c *CompositionRoot) CreateFlushSnapshotCommandHandler() commands.FlushSnapshotCommandHandler {
	return commands.NewFlushSnapshotCommandHandler(c.store, c.archive)
}

func (c *CompositionRoot) CreateGetOrderLifecycleQueryHandler() queries.GetOrderLifecycleQueryHandler {
	return queries.NewGetOrderLifecycleQueryHandler(c.store)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.store)
}

// CreateTriggerAdapter starts a worker pool; the caller must Close the adapter.
func (c *CompositionRoot) CreateTriggerAdapter() (*trigger.Adapter, error) {
	return trigger.NewAdapter(c.CreateAdvanceOrderCommandHandler(),
		trigger.WithPoolSize(c.config.TriggerPoolSize),
		trigger.WithTimeout(c.config.TriggerTimeout),
		trigger.WithLogger(c.logger),
	)
}

// CreatePaymentCompletedConsumer returns nil when Kafka is not configured.
func (c *CompositionRoot) CreatePaymentCompletedConsumer(triggerer kafkain.Triggerer) *kafkain.PaymentCompletedConsumer {
	if !c.config.KafkaEnabled() || c.config.KafkaPaymentCompletedTopic == "" {
		return nil
	}
	return kafkain.NewPaymentCompletedConsumer(
		brokers(c.config.KafkaHost),
		c.config.KafkaPaymentCompletedTopic,
		c.config.KafkaConsumerGroup,
		triggerer,
		kafkain.WithLogger(c.logger),
	)
}

func (c *CompositionRoot) CreateHTTPServer(triggerer httpin.Triggerer) *httpin.Server {
	return httpin.NewServer(
		c.CreateSeedOrderCommandHandler(),
		triggerer,
		c.CreateGetOrderLifecycleQueryHandler(),
		c.CreateListOrdersQueryHandler(),
		c.store,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateFlushSnapshotCommandHandler(), c.config.SnapshotFlushSchedule, c.logger)
}

// Close releases the order event publisher.
func (c *CompositionRoot) Close() error {
	if c.publisher == nil {
		return nil
	}
	return c.publisher.Close()
}

func brokers(hosts string) []string {
	var out []string
	for _, h := range strings.Split(hosts, ",") {
		if h = strings.TrimSpace(h); h != "" {
			out = append(out, h)
		}
	}
	return out
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
