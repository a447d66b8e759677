package queries

import (
	"context"
	"errors"
	"time"

	"cafe/internal/core/domain/model/order"
	"cafe/internal/core/domain/services"
	"cafe/internal/core/ports"
	"cafe/internal/pkg/errs"
)

// GetOrderQueryHandler reads one order with its items. Customers only see
// their own orders; for anyone else's the order reads as missing.
type GetOrderQueryHandler struct {
	orders ports.OrderRepository
	read   readOptions
	gate   services.AccessGate
}

func NewGetOrderQueryHandler(orders ports.OrderRepository, timeout time.Duration) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		orders: orders,
		read:   defaultReadOptions(timeout),
		gate:   services.NewAccessGate(),
	}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderDetail, error) {
	if err := query.Validate(); err != nil {
		return OrderDetail{}, err
	}

	var o *order.Order
	err := h.read.run(ctx, "get order", func(ctx context.Context) error {
		var err error
		o, err = h.orders.Get(ctx, query.OrderID())
		return err
	})
	if errors.Is(err, errs.ErrObjectNotFound) {
		return OrderDetail{}, errs.NewObjectNotFoundErrorWithCause("orderID", query.OrderID(), services.ErrOrderNotOwned)
	}
	if err != nil {
		return OrderDetail{}, err
	}

	if err = h.gate.AuthorizeView(query.Session(), o); err != nil {
		return OrderDetail{}, err
	}

	return toOrderDetail(o), nil
}

func toOrderDetail(o *order.Order) OrderDetail {
	items := o.Items()
	detail := OrderDetail{
		ID:        o.ID(),
		Login:     o.Login().String(),
		Paid:      o.IsPaid(),
		Total:     o.Total(),
		CreatedAt: o.CreatedAt(),
		Items:     make([]OrderDetailItem, len(items)),
	}
	for i, item := range items {
		detail.Items[i] = OrderDetailItem{
			ID:          item.ID(),
			Name:        item.Name(),
			Price:       item.Price(),
			Status:      item.Status(),
			LastUpdated: item.LastUpdated(),
			Comments:    item.Comments(),
		}
	}
	return detail
}
