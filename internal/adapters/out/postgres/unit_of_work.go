// Package postgres provides the GORM-based Unit of Work of the café service.
//
// A unit of work wraps one database transaction. Every transaction is bounded
// by the store timeout given to the factory, and so is every statement the
// repositories run inside it, whatever context the caller passes. A hung
// database or a lock wait surfaces as errs.StoreUnavailableError instead of a
// stuck request. Aggregates written
// through the repositories are tracked; after a successful commit their domain
// events are handed to the event publisher. A publish failure is logged and
// does not undo the commit.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, 5*time.Second, publisher, logger)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	o, err := uow.OrderRepository().GetForUpdate(ctx, id)
//	if err != nil {
//	    return err
//	}
//	o.SetPaid(true, time.Now())
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"
	"log/slog"
	"time"

	"cafe/internal/adapters/out/postgres/menurepo"
	"cafe/internal/adapters/out/postgres/orderrepo"
	"cafe/internal/adapters/out/postgres/userrepo"
	"cafe/internal/core/domain/model/order"
	"cafe/internal/core/ports"
	"cafe/internal/pkg/storeerr"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection
// pool, timeout and publisher.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	timeout   time.Duration
	publisher ports.EventPublisher
	logger    *slog.Logger
}

// NewGormUnitOfWorkFactory creates a factory. A non-positive timeout leaves
// transactions bounded only by the caller's context.
func NewGormUnitOfWorkFactory(
	db *gorm.DB,
	timeout time.Duration,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:        db,
		timeout:   timeout,
		publisher: publisher,
		logger:    logger.With("component", "unit_of_work"),
	}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:        f.db,
		timeout:   f.timeout,
		publisher: f.publisher,
		logger:    f.logger,
	}
}

// GormUnitOfWork coordinates one transaction and the aggregates it touched.
// It is not safe for concurrent use; create one per operation.
type GormUnitOfWork struct {
	db        *gorm.DB
	tx        *gorm.DB
	txCtx     context.Context
	cancel    context.CancelFunc
	timeout   time.Duration
	publisher ports.EventPublisher
	logger    *slog.Logger

	trackedAggregates []*order.Order
}

// Begin starts the transaction. Calling it again while a transaction is open
// is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	txCtx, cancel := ctx, context.CancelFunc(func() {})
	if uow.timeout > 0 {
		txCtx, cancel = context.WithTimeout(ctx, uow.timeout)
	}

	tx := uow.db.WithContext(txCtx).Begin()
	if tx.Error != nil {
		cancel()
		return storeerr.Classify("begin transaction", tx.Error)
	}

	uow.tx = tx
	uow.txCtx = txCtx
	uow.cancel = cancel
	return nil
}

// Commit finalizes the transaction, then publishes the domain events of the
// tracked aggregates with ctx.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.close()
	if err != nil {
		uow.trackedAggregates = nil
		return storeerr.Classify("commit transaction", err)
	}

	uow.publishTrackedEvents(ctx)
	return nil
}

// Rollback discards the transaction and forgets tracked aggregates.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.close()
	uow.trackedAggregates = nil
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return boundOrderRepository{
		inner: orderrepo.NewGormOrderRepository(uow.conn(), uow),
		bound: uow.statementContext,
	}
}

func (uow *GormUnitOfWork) MenuCatalog() ports.MenuCatalog {
	return boundMenuCatalog{
		inner: menurepo.NewGormMenuCatalog(uow.conn()),
		bound: uow.statementContext,
	}
}

func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return boundUserRepository{
		inner: userrepo.NewGormUserRepository(uow.conn()),
		bound: uow.statementContext,
	}
}

// statementContext derives the context one repository call runs with. Inside
// a transaction it ends at the transaction deadline or when the transaction
// closes; outside one, each call gets the store timeout of its own.
func (uow *GormUnitOfWork) statementContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if uow.txCtx == nil {
		if uow.timeout > 0 {
			return context.WithTimeout(ctx, uow.timeout)
		}
		return ctx, func() {}
	}

	txCtx := uow.txCtx
	base, cancelBase := context.WithCancel(ctx)
	stop := context.AfterFunc(txCtx, cancelBase)

	stmtCtx, cancelStmt := base, context.CancelFunc(func() {})
	if deadline, ok := txCtx.Deadline(); ok {
		stmtCtx, cancelStmt = context.WithDeadline(base, deadline)
	}
	return stmtCtx, func() {
		cancelStmt()
		stop()
		cancelBase()
	}
}

// TrackAggregate registers an aggregate written in this unit of work.
// Repositories call it after a successful write.
func (uow *GormUnitOfWork) TrackAggregate(aggregate *order.Order) {
	for _, tracked := range uow.trackedAggregates {
		if tracked == aggregate {
			return
		}
	}
	uow.trackedAggregates = append(uow.trackedAggregates, aggregate)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) close() {
	uow.tx = nil
	uow.txCtx = nil
	if uow.cancel != nil {
		uow.cancel()
		uow.cancel = nil
	}
}

func (uow *GormUnitOfWork) publishTrackedEvents(ctx context.Context) {
	tracked := uow.trackedAggregates
	uow.trackedAggregates = nil
	if uow.publisher == nil {
		return
	}

	for _, aggregate := range tracked {
		events := aggregate.DomainEvents()
		if len(events) == 0 {
			continue
		}
		if err := uow.publisher.Publish(ctx, events...); err != nil {
			uow.logger.ErrorContext(ctx, "failed to publish domain events",
				"order_id", aggregate.ID(),
				"events", len(events),
				"error", err,
			)
			continue
		}
		aggregate.ClearDomainEvents()
	}
}
