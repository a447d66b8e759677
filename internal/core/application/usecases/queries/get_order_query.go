package queries

import (
	"errors"
	"fmt"
	"time"

	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/core/domain/model/order"
	"cafe/internal/core/domain/model/user"
	"cafe/internal/pkg/errs"
	"cafe/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

type GetOrderQuery struct {
	session user.Session
	orderID order.ID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(session user.Session, orderID order.ID) (GetOrderQuery, error) {
	if err := session.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	if orderID <= 0 {
		return GetOrderQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"orderID", fmt.Errorf("%d is not greater than 0", orderID))
	}
	return GetOrderQuery{session: session, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Session() user.Session { return q.session }
func (q GetOrderQuery) OrderID() order.ID     { return q.orderID }

// OrderDetail is an order header with its line items in insertion order.
type OrderDetail struct {
	ID        order.ID
	Login     string
	Paid      bool
	Total     kernel.Money
	CreatedAt time.Time
	Items     []OrderDetailItem
}

type OrderDetailItem struct {
	ID          order.ItemID
	Name        string
	Price       kernel.Money
	Status      order.Status
	LastUpdated time.Time
	Comments    string
}
