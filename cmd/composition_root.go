package cmd

import (
	"log/slog"
	"os"

	"orders/internal/adapters/out/postgres"
	"orders/internal/adapters/out/token"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/services"
	"orders/internal/core/ports"
	"orders/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	hasher     services.PasswordHasher
	signer     *token.JWTSigner
	pool       *jobs.OrderProcessorPool
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (*CompositionRoot, error) {
	signer, err := token.NewJWTSigner(config.TokenSecret, config.TokenTTL)
	if err != nil {
		return nil, err
	}

	root := &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		hasher:     services.NewPasswordHasher(),
		signer:     signer,
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}

	processHandler := root.CreateProcessOrderCommandHandler()
	root.pool = jobs.NewOrderProcessorPool(
		processHandler,
		config.ProcessorWorkers,
		config.ProcessorQueueSize,
		root.logger,
	)

	return root, nil
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) TokenSigner() ports.TokenSigner {
	return c.signer
}

func (c *CompositionRoot) UnitOfWorkFactory() ports.UnitOfWorkFactory {
	return c.uowFactory
}

func (c *CompositionRoot) TaskDispatcher() ports.TaskDispatcher {
	return c.pool
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitOrderCommandHandler(f, c.pool, c.logger)
}

func (c *CompositionRoot) CreateProcessOrderCommandHandler() commands.ProcessOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessOrderCommandHandler(f, c.config.ProcessingDelay)
}

func (c *CompositionRoot) CreateSeedUsersCommandHandler() commands.SeedUsersCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSeedUsersCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreateLoginQueryHandler() queries.LoginQueryHandler {
	return queries.NewLoginQueryHandler(c.gormDB, c.hasher, c.signer)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

// CreateJobManager wires the worker pool and recovery sweep together.
// The sweep re-dispatches orders that have been unfinished for at least two
// processing delays, long enough that a healthy worker would have finished.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	sweep := jobs.NewStuckOrderSweepJob(
		c.uowFactory,
		c.pool,
		c.config.StuckSweepCron,
		2*c.config.ProcessingDelay,
		c.logger,
	)
	return jobs.NewJobManager(c.pool, sweep)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
