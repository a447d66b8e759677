package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/core/domain/model/order"
	"cafe/internal/core/domain/services"
	"cafe/internal/pkg/errs"
)

// ErrReplacementNotOnMenu is the cause attached when the new item name is unknown.
var ErrReplacementNotOnMenu = errors.New("replacement item not on menu")

type ReplaceItemResult struct {
	ItemID order.ItemID
	Total  kernel.Money
}

// ReplaceItemCommandHandler swaps a line item while holding the order's row
// lock, so concurrent replacements of one order apply one after another and
// each sees the other's total.
type ReplaceItemCommandHandler struct {
	uowFactory OrderMenuUoWFactory
	gate       services.AccessGate
}

func NewReplaceItemCommandHandler(uowFactory OrderMenuUoWFactory) ReplaceItemCommandHandler {
	return ReplaceItemCommandHandler{
		uowFactory: uowFactory,
		gate:       services.NewAccessGate(),
	}
}

// Handle checks, in this order: the order exists and is the session's, the
// order is unpaid, the old item exists, the old item has not started, the new
// item is on the menu. The first failing check decides the error.
func (h *ReplaceItemCommandHandler) Handle(ctx context.Context, cmd ReplaceItemCommand) (ReplaceItemResult, error) {
	if err := cmd.Validate(); err != nil {
		return ReplaceItemResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ReplaceItemResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ReplaceItemResult{}, errs.NewObjectNotFoundErrorWithCause("orderID", cmd.OrderID(), services.ErrOrderNotOwned)
	}
	if err != nil {
		return ReplaceItemResult{}, err
	}

	if _, err = h.gate.AuthorizeReplace(cmd.Session(), o, cmd.OldName()); err != nil {
		return ReplaceItemResult{}, err
	}

	replacement, found, err := uow.MenuCatalog().Lookup(ctx, cmd.NewName())
	if err != nil {
		return ReplaceItemResult{}, err
	}
	if !found {
		return ReplaceItemResult{}, errs.NewValueIsInvalidErrorWithCause(
			"newItemName", fmt.Errorf("%w: %s", ErrReplacementNotOnMenu, cmd.NewName()))
	}

	item, err := o.ReplaceItem(cmd.OldName(), replacement.Line(), time.Now().UTC())
	if err != nil {
		return ReplaceItemResult{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return ReplaceItemResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ReplaceItemResult{}, err
	}

	return ReplaceItemResult{ItemID: item.ID(), Total: o.Total()}, nil
}
