package commands

import (
	"context"

	"deliveryhub/internal/core/domain/model/courier"
	"deliveryhub/internal/core/domain/model/kernel"
)

// SaveCourierCommandHandler stores courier contact data and availability.
type SaveCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

func NewSaveCourierCommandHandler(uowFactory CourierUoWFactory) SaveCourierCommandHandler {
	return SaveCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h SaveCourierCommandHandler) Handle(ctx context.Context, cmd SaveCourierCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CourierRepository()

	var id kernel.ID
	if cmd.ID() == nil {
		status := courier.Available
		if cmd.Status() != nil {
			status = *cmd.Status()
		}

		c, err := courier.NewCourier(cmd.Name(), cmd.Phone(), cmd.Vehicle(), status)
		if err != nil {
			return 0, err
		}
		if id, err = repo.Add(ctx, c); err != nil {
			return 0, err
		}
	} else {
		c, err := repo.Get(ctx, *cmd.ID())
		if err != nil {
			return 0, err
		}

		status := c.Status()
		if cmd.Status() != nil {
			status = *cmd.Status()
		}

		if err = c.Update(cmd.Name(), cmd.Phone(), cmd.Vehicle(), status); err != nil {
			return 0, err
		}
		if err = repo.Update(ctx, c); err != nil {
			return 0, err
		}
		id = c.ID()
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
