package commands

import (
	"context"
	"time"

	"cafe/internal/core/domain/model/order"
	"cafe/internal/core/domain/services"
)

type AdvanceItemStatusResult struct {
	ItemID      order.ItemID
	Status      order.Status
	LastUpdated time.Time
}

type AdvanceItemStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	gate       services.AccessGate
}

func NewAdvanceItemStatusCommandHandler(uowFactory OrderUoWFactory) AdvanceItemStatusCommandHandler {
	return AdvanceItemStatusCommandHandler{
		uowFactory: uowFactory,
		gate:       services.NewAccessGate(),
	}
}

func (h *AdvanceItemStatusCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceItemStatusCommand,
) (AdvanceItemStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return AdvanceItemStatusResult{}, err
	}
	if err := h.gate.AuthorizeAdvance(cmd.Session(), cmd.Force()); err != nil {
		return AdvanceItemStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AdvanceItemStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return AdvanceItemStatusResult{}, err
	}

	item, err := o.AdvanceItem(cmd.ItemName(), cmd.Target(), cmd.Force(), time.Now().UTC())
	if err != nil {
		return AdvanceItemStatusResult{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return AdvanceItemStatusResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AdvanceItemStatusResult{}, err
	}

	return AdvanceItemStatusResult{
		ItemID:      item.ID(),
		Status:      item.Status(),
		LastUpdated: item.LastUpdated(),
	}, nil
}
