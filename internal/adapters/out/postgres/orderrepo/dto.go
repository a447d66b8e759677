// Package orderrepo persists the Order aggregate: one orders row for the
// header and one item_status row per line item.
package orderrepo

import (
	"time"

	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO is the orders table. The id is generated by PostgreSQL.
type OrderDTO struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	Login     string          `gorm:"size:50;not null;index"`
	Paid      bool            `gorm:"not null;default:false"`
	Total     decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CreatedAt time.Time       `gorm:"not null"`
	Items     []ItemDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is the item_status table. The surrogate id lets one order hold the
// same menu item more than once.
type ItemDTO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	OrderID     int64           `gorm:"not null;index:idx_item_status_order_name,priority:1"`
	ItemName    string          `gorm:"size:50;not null;index:idx_item_status_order_name,priority:2"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Status      int             `gorm:"not null"`
	LastUpdated time.Time       `gorm:"not null;index"`
	Comments    string          `gorm:"size:130"`
}

func (ItemDTO) TableName() string {
	return "item_status"
}

func fromDomain(o *order.Order) OrderDTO {
	items := o.Items()
	dto := OrderDTO{
		ID:        int64(o.ID()),
		Login:     o.Login().String(),
		Paid:      o.IsPaid(),
		Total:     o.Total().Decimal(),
		CreatedAt: o.CreatedAt(),
		Items:     make([]ItemDTO, len(items)),
	}
	for i, item := range items {
		dto.Items[i] = ItemDTO{
			ID:          int64(item.ID()),
			OrderID:     int64(o.ID()),
			ItemName:    item.Name(),
			Price:       item.Price().Decimal(),
			Status:      int(item.Status()),
			LastUpdated: item.LastUpdated(),
			Comments:    item.Comments(),
		}
	}
	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	login, err := kernel.NewLogin(dto.Login)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		price, priceErr := kernel.NewMoney(itemDTO.Price)
		if priceErr != nil {
			return nil, priceErr
		}
		item, itemErr := order.RestoreItem(
			order.ItemID(itemDTO.ID),
			order.Line{Name: itemDTO.ItemName, Price: price},
			order.Status(itemDTO.Status),
			itemDTO.LastUpdated,
			itemDTO.Comments,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.ID(dto.ID), login, dto.Paid, total, dto.CreatedAt, items)
}
