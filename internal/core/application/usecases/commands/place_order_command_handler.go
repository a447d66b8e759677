package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/core/domain/model/order"
	"cafe/internal/core/domain/model/user"
	"cafe/internal/core/domain/services"
	"cafe/internal/pkg/errs"
)

// PlaceOrderResult reports the stored order and the selections that were
// left out because the menu does not have them.
type PlaceOrderResult struct {
	OrderID       order.ID
	Total         kernel.Money
	RejectedItems []string
}

// PlaceOrderCommandHandler prices the selections from the menu and writes
// the order header and every line item in one transaction.
type PlaceOrderCommandHandler struct {
	uowFactory OrderMenuUoWFactory
	gate       services.AccessGate
}

func NewPlaceOrderCommandHandler(uowFactory OrderMenuUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		gate:       services.NewAccessGate(),
	}
}

// Handle places the order. Unknown names are skipped one by one and returned
// in RejectedItems; if none is left the command fails with
// errs.ValueIsInvalidError and nothing is written.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (PlaceOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return PlaceOrderResult{}, err
	}
	if err := h.gate.Authorize(cmd.Session(), user.PlaceOrder); err != nil {
		return PlaceOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PlaceOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	catalog := uow.MenuCatalog()
	lines := make([]order.Line, 0, len(cmd.ItemNames()))
	rejected := make([]string, 0)
	for _, name := range cmd.ItemNames() {
		menuItem, found, err := catalog.Lookup(ctx, name)
		if err != nil {
			return PlaceOrderResult{}, err
		}
		if !found {
			rejected = append(rejected, name)
			continue
		}
		lines = append(lines, menuItem.Line())
	}

	if len(lines) == 0 {
		return PlaceOrderResult{RejectedItems: rejected}, errs.NewValueIsInvalidErrorWithCause(
			"items",
			fmt.Errorf("none of %s is on the menu", strings.Join(rejected, ", ")),
		)
	}

	o, err := order.NewOrder(cmd.Session().Login(), lines, cmd.Paid(), time.Now().UTC())
	if err != nil {
		return PlaceOrderResult{}, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return PlaceOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PlaceOrderResult{}, err
	}

	return PlaceOrderResult{
		OrderID:       o.ID(),
		Total:         o.Total(),
		RejectedItems: rejected,
	}, nil
}
