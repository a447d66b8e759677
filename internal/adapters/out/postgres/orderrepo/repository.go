package orderrepo

import (
	"context"
	"errors"

	"cafe/internal/core/domain/model/order"
	"cafe/internal/pkg/errs"
	"cafe/internal/pkg/storeerr"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const addSavePoint = "order_add"

// GormOrderRepository implements ports.OrderRepository using GORM. It must
// run inside a transaction: Add relies on a savepoint.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker collects aggregates whose events are published after commit.
type aggregateTracker interface {
	TrackAggregate(aggregate *order.Order)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the header, reads back its id, then inserts the items one by
// one. When an item insert fails the savepoint taken before the header is
// restored and the error says how many items were written and whether the
// restore worked.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.IsPersisted() {
		return errs.NewConflictError("order already persisted")
	}

	db := r.db.WithContext(ctx)
	if err := db.SavePoint(addSavePoint).Error; err != nil {
		return storeerr.Classify("insert order", err)
	}

	dto := fromDomain(aggregate)
	items := dto.Items
	dto.Items = nil

	if err := db.Omit(clause.Associations).Create(&dto).Error; err != nil {
		_ = db.RollbackTo(addSavePoint).Error
		return storeerr.Classify("insert order", err)
	}

	itemIDs := make([]order.ItemID, len(items))
	for i := range items {
		items[i].OrderID = dto.ID
		if err := db.Create(&items[i]).Error; err != nil {
			rollbackErr := db.RollbackTo(addSavePoint).Error
			return errs.NewPartialFailureError(
				"insert order items", i, len(items), rollbackErr == nil,
				errors.Join(storeerr.Classify("insert order item", err), rollbackErr),
			)
		}
		itemIDs[i] = order.ItemID(items[i].ID)
	}

	if err := aggregate.AssignIdentity(order.ID(dto.ID), itemIDs); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

// Update writes the header's paid flag and total and every item row.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"paid":  dto.Paid,
		"total": dto.Total,
	})
	if result.Error != nil {
		return storeerr.Classify("update order", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderID", dto.ID)
	}

	for _, item := range dto.Items {
		result = db.Model(&ItemDTO{}).
			Where("id = ? AND order_id = ?", item.ID, dto.ID).
			Updates(map[string]any{
				"item_name":    item.ItemName,
				"price":        item.Price,
				"status":       item.Status,
				"last_updated": item.LastUpdated,
			})
		if result.Error != nil {
			return storeerr.Classify("update order item", result.Error)
		}
		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("itemID", item.ID)
		}
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id order.ID) (*order.Order, error) {
	return r.load(ctx, r.db.WithContext(ctx), id)
}

// GetForUpdate locks the order header with SELECT ... FOR UPDATE.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id order.ID) (*order.Order, error) {
	return r.load(ctx, r.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (r *GormOrderRepository) load(ctx context.Context, headerQuery *gorm.DB, id order.ID) (*order.Order, error) {
	if id <= 0 {
		return nil, errs.NewObjectNotFoundError("orderID", id)
	}

	var dto OrderDTO
	if err := headerQuery.Where("id = ?", int64(id)).Take(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", id)
		}
		return nil, storeerr.Classify("get order", err)
	}

	if err := r.db.WithContext(ctx).Where("order_id = ?", dto.ID).Order("id").Find(&dto.Items).Error; err != nil {
		return nil, storeerr.Classify("get order items", err)
	}

	o, err := toDomain(dto)
	if err != nil {
		return nil, storeerr.Corrupt("get order", err)
	}
	return o, nil
}
