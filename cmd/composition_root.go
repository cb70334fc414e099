package cmd

import (
	"errors"

	httpin "orderadmin/internal/adapters/in/http"
	"orderadmin/internal/adapters/out/cache"
	"orderadmin/internal/adapters/out/database"
	"orderadmin/internal/adapters/out/database/catalogrepo"
	"orderadmin/internal/adapters/out/kafka"
	redisadapter "orderadmin/internal/adapters/out/redis"
	"orderadmin/internal/core/application/usecases/commands"
	"orderadmin/internal/core/application/usecases/queries"
	"orderadmin/internal/core/ports"
	"orderadmin/internal/jobs"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *database.GormUnitOfWorkFactory
	users      queries.UserDirectory
	publisher  ports.OrderEventPublisher
	locker     ports.OrderLocker
	logger     *zap.Logger
	closers    []func() error
}

// NewCompositionRoot wires the outbound adapters. Kafka and Redis are optional:
// without brokers events are dropped, without Redis locks are process-local.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *zap.Logger) (CompositionRoot, error) {
	root := CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: database.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}

	users, err := cache.NewUserDirectory(catalogrepo.NewGormUserDirectory(gormDB), configs.UserCacheSize)
	if err != nil {
		return CompositionRoot{}, err
	}
	root.users = users

	if len(configs.KafkaBrokers) > 0 {
		publisher, err := kafka.NewPublisher(configs.KafkaBrokers, configs.KafkaOrderDeletedTopic, logger)
		if err != nil {
			return CompositionRoot{}, err
		}
		root.publisher = publisher
		root.closers = append(root.closers, publisher.Close)
	} else {
		logger.Info("kafka brokers not configured, order events are not published")
		root.publisher = kafka.NoopPublisher{}
	}

	if configs.RedisAddr != "" {
		client := goredis.NewClient(&goredis.Options{
			Addr:     configs.RedisAddr,
			Password: configs.RedisPassword,
			DB:       configs.RedisDB,
		})
		root.locker = redisadapter.NewLocker(client, "orderadmin:", configs.LockTTL)
		root.closers = append(root.closers, client.Close)
	} else {
		root.locker = redisadapter.NewLocalLocker()
	}

	return root, nil
}

// Close releases the connections opened by NewCompositionRoot.
func (c *CompositionRoot) Close() error {
	var errList []error
	for _, closeFn := range c.closers {
		errList = append(errList, closeFn())
	}
	return errors.Join(errList...)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateDeleteOrderPermanentlyCommandHandler() commands.DeleteOrderPermanentlyCommandHandler {
	return commands.NewDeleteOrderPermanentlyCommandHandler(
		c.orderUoWFactory(),
		c.publisher,
		c.configs.Messages(),
		c.logger.With(zap.String("component", "delete_order_permanently")),
	)
}

func (c *CompositionRoot) CreateSoftDeleteOrderCommandHandler() commands.SoftDeleteOrderCommandHandler {
	return commands.NewSoftDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreatePurgeSoftDeletedOrdersCommandHandler() commands.PurgeSoftDeletedOrdersCommandHandler {
	deleter := c.CreateDeleteOrderPermanentlyCommandHandler()
	return commands.NewPurgeSoftDeletedOrdersCommandHandler(c.orderUoWFactory(), &deleter, c.logger)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB, c.users)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.users)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateDeleteOrderPermanentlyCommandHandler(),
		c.CreateSoftDeleteOrderCommandHandler(),
		c.CreateListOrdersQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.logger,
	)
}

// CreateJobManager returns a manager whose purge job is scheduled only when
// PURGE_SCHEDULE is set.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	if c.configs.PurgeSchedule == "" {
		return jobs.NewJobManager(nil, c.logger)
	}

	handler := c.CreatePurgeSoftDeletedOrdersCommandHandler()
	purgeJob := jobs.NewPurgeJob(&handler, c.locker, c.configs.Purge(), c.logger)
	return jobs.NewJobManager(purgeJob, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
