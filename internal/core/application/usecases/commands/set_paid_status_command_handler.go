package commands

import (
	"context"
	"time"

	"cafe/internal/core/domain/model/user"
	"cafe/internal/core/domain/services"
)

// SetPaidStatusCommandHandler flips the paid flag of an order. Setting the
// current value again is accepted and still recorded as a change.
type SetPaidStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	gate       services.AccessGate
}

func NewSetPaidStatusCommandHandler(uowFactory OrderUoWFactory) SetPaidStatusCommandHandler {
	return SetPaidStatusCommandHandler{
		uowFactory: uowFactory,
		gate:       services.NewAccessGate(),
	}
}

func (h *SetPaidStatusCommandHandler) Handle(ctx context.Context, cmd SetPaidStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.gate.Authorize(cmd.Session(), user.ChangePaidStatus); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	o.SetPaid(cmd.Paid(), time.Now().UTC())

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
