package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	httpadapter "cafe/internal/adapters/in/http"
	"cafe/internal/adapters/out/postgres"
	"cafe/internal/adapters/out/postgres/userrepo"
	"cafe/internal/adapters/out/rabbitmq"
	"cafe/internal/core/application/usecases/commands"
	"cafe/internal/core/application/usecases/queries"
	"cafe/internal/core/ports"
	"cafe/internal/jobs"

	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type eventPublisher interface {
	ports.EventPublisher
	Close() error
}

type CompositionRoot struct {
	cfg        Config
	logger     *slog.Logger
	gormDB     *gorm.DB
	publisher  eventPublisher
	uowFactory *postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, publisher eventPublisher, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		logger:     logger,
		gormDB:     gormDB,
		publisher:  publisher,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, cfg.DBStatementTimeout, publisher, logger),
	}
}

// OpenDatabase connects to PostgreSQL and brings the schema up to date.
func OpenDatabase(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(pgdriver.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := postgres.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return db, nil
}

// OpenPublisher connects to RabbitMQ, or logs events locally when no broker
// is configured.
func OpenPublisher(cfg Config, logger *slog.Logger) (eventPublisher, error) {
	if cfg.RabbitMQURL == "" {
		return rabbitmq.NewLogPublisher(logger), nil
	}
	publisher, err := rabbitmq.Dial(cfg.RabbitMQURL, cfg.RabbitMQExchange, logger)
	if err != nil {
		return nil, err
	}
	return publisher, nil
}

// Close releases the publisher and the database pool. Both are attempted
// even when one fails.
func (c *CompositionRoot) Close() error {
	return errors.Join(c.publisher.Close(), CloseDatabase(c.gormDB))
}

// CloseDatabase closes the connection pool behind db.
func CloseDatabase(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("database pool: %w", err)
	}
	return sqlDB.Close()
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderMenuUoWFactory() commands.OrderMenuUoWFactory {
	return FuncOrderMenuUoWFactory(func() commands.OrderMenuUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderMenuUoWFactory())
}

func (c *CompositionRoot) CreateReplaceItemCommandHandler() commands.ReplaceItemCommandHandler {
	return commands.NewReplaceItemCommandHandler(c.orderMenuUoWFactory())
}

func (c *CompositionRoot) CreateAdvanceItemStatusCommandHandler() commands.AdvanceItemStatusCommandHandler {
	return commands.NewAdvanceItemStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSetPaidStatusCommandHandler() commands.SetPaidStatusCommandHandler {
	return commands.NewSetPaidStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetSessionQueryHandler() queries.GetSessionQueryHandler {
	return queries.NewGetSessionQueryHandler(userrepo.NewGormUserRepository(c.gormDB), c.cfg.DBStatementTimeout)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.uowFactory.Create().OrderRepository(), c.cfg.DBStatementTimeout)
}

func (c *CompositionRoot) CreateGetRecentHistoryQueryHandler() queries.GetRecentHistoryQueryHandler {
	return queries.NewGetRecentHistoryQueryHandler(c.gormDB, c.cfg.DBStatementTimeout)
}

func (c *CompositionRoot) CreateGetWindowHistoryQueryHandler() queries.GetWindowHistoryQueryHandler {
	return queries.NewGetWindowHistoryQueryHandler(c.gormDB, c.cfg.DBStatementTimeout)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		PlaceOrder:        c.CreatePlaceOrderCommandHandler(),
		ReplaceItem:       c.CreateReplaceItemCommandHandler(),
		AdvanceItemStatus: c.CreateAdvanceItemStatusCommandHandler(),
		SetPaidStatus:     c.CreateSetPaidStatusCommandHandler(),
		GetSession:        c.CreateGetSessionQueryHandler(),
		GetOrder:          c.CreateGetOrderQueryHandler(),
		GetRecentHistory:  c.CreateGetRecentHistoryQueryHandler(),
		GetWindowHistory:  c.CreateGetWindowHistoryQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	handler := c.CreateGetWindowHistoryQueryHandler()
	return jobs.NewJobManager(handler, c.cfg.DailyReportSchedule, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderMenuUoWFactory func() commands.OrderMenuUoW

func (f FuncOrderMenuUoWFactory) Create() commands.OrderMenuUoW {
	return f()
}
